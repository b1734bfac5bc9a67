package pathformat

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDirectoryFormat = "{site_name}/{model_username}/{api_type}/{value}/{media_type}"
	testFilenameFormat  = "{filename}.{ext}"
)

func testOptions() Options {
	return Options{
		SiteName:      "StarsAVN",
		ModelUsername: "alice",
		APIType:       "Posts",
		MediaType:     "Images",
		MediaID:       11,
		PostID:        42,
		Filename:      "photo_1",
		Ext:           "jpg",
		PostedAt:      "05-03-2024 10:20:30",
		Directory:     "/data/sites",
	}
}

func TestReformatDirectoryThenFilename(t *testing.T) {
	opts := testOptions()

	dir, err := Reformat(opts, testDirectoryFormat)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/sites", "StarsAVN", "alice", "Posts", "Free", "Images"), dir)

	opts.Directory = dir
	path, err := Reformat(opts, testFilenameFormat)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "photo_1.jpg"), path)
}

func TestReformatArchivedAndPaid(t *testing.T) {
	opts := testOptions()
	opts.APIType = filepath.Join("Archived", "Posts")
	opts.Paid = true

	dir, err := Reformat(opts, testDirectoryFormat)
	require.NoError(t, err)
	assert.Contains(t, dir, filepath.Join("Archived", "Posts", "Paid"))
}

func TestReformatDateUsesStrftime(t *testing.T) {
	opts := testOptions()
	opts.DateFormat = "%Y-%m-%d"

	out, err := Reformat(opts, "{date}_{post_id}_{media_id}")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/sites", "2024-03-05_42_11"), out)
}

func TestReformatBadDate(t *testing.T) {
	opts := testOptions()
	opts.PostedAt = "yesterday"

	_, err := Reformat(opts, "{date}")
	assert.Error(t, err)
}

func TestReformatTextIsSanitizedAndCut(t *testing.T) {
	opts := testOptions()
	opts.Text = "hello/world:  what a\nday"
	opts.TextLength = 10

	out, err := Reformat(opts, "{text}")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/sites", "helloworld"), out)
}

func TestReformatUnknownKeyIsKept(t *testing.T) {
	out, err := Reformat(Options{}, "{nope}/{first_letter}")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{nope}"))
}

func TestReformatFirstLetter(t *testing.T) {
	out, err := Reformat(testOptions(), "{first_letter}/{username}")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/sites", "A", "alice"), out)
}

func TestReformatExplicitDirectory(t *testing.T) {
	out, err := Reformat(testOptions(), "{directory}/{filename}.{ext}")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/sites", "photo_1.jpg"), out)
}

// Package pathformat resolves directory and filename templates such as
// "{site_name}/{model_username}/{api_type}/{value}/{media_type}".
package pathformat

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"
	"github.com/orgball2608/subscraper/pkg/formatter"
)

// PostedAtLayout is the layout of NormalizedPost.PostedAt.
const PostedAtLayout = "02-01-2006 15:04:05"

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Options is the flat set of values a template may reference.
type Options struct {
	SiteName        string  `json:"site_name"`
	ProfileUsername string  `json:"profile_username"`
	ModelUsername   string  `json:"model_username"`
	APIType         string  `json:"api_type"`
	MediaType       string  `json:"media_type"`
	MediaID         int64   `json:"media_id"`
	PostID          int64   `json:"post_id"`
	UserID          int64   `json:"user_id"`
	Filename        string  `json:"filename"`
	Ext             string  `json:"ext"`
	Text            string  `json:"text"`
	Title           string  `json:"title"`
	PostedAt        string  `json:"postedAt"`
	DateFormat      string  `json:"date_format"`
	TextLength      int     `json:"text_length"`
	Directory       string  `json:"directory"`
	Price           float64 `json:"price"`
	Paid            bool    `json:"paid"`
	Preview         bool    `json:"preview"`
	Archived        bool    `json:"archived"`
}

// Reformat substitutes every known {key} in tpl. Unknown keys stay as written.
// A relative result is placed under opts.Directory unless tpl references {directory}.
func Reformat(opts Options, tpl string) (string, error) {
	var firstErr error
	out := placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		v, ok, err := opts.value(m[1 : len(m)-1])
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if !ok {
			return m
		}
		return v
	})
	if firstErr != nil {
		return "", firstErr
	}

	out = filepath.Clean(out)
	if !strings.Contains(tpl, "{directory}") && opts.Directory != "" && !filepath.IsAbs(out) {
		out = filepath.Join(opts.Directory, out)
	}
	return out, nil
}

func (o Options) value(key string) (string, bool, error) {
	switch key {
	case "site_name":
		return o.SiteName, true, nil
	case "profile_username":
		return o.ProfileUsername, true, nil
	case "model_username", "username":
		return o.ModelUsername, true, nil
	case "api_type":
		return o.APIType, true, nil
	case "media_type":
		return o.MediaType, true, nil
	case "media_id":
		return strconv.FormatInt(o.MediaID, 10), true, nil
	case "post_id":
		return strconv.FormatInt(o.PostID, 10), true, nil
	case "filename":
		return o.Filename, true, nil
	case "ext":
		return o.Ext, true, nil
	case "text":
		return formatter.TruncateRunes(formatter.SanitizePathSegment(o.Text), o.TextLength), true, nil
	case "title":
		return formatter.SanitizePathSegment(o.Title), true, nil
	case "date":
		d, err := o.date()
		return d, err == nil, err
	case "value":
		if o.Paid {
			return "Paid", true, nil
		}
		return "Free", true, nil
	case "first_letter":
		r, _ := utf8.DecodeRuneInString(o.ModelUsername)
		if r == utf8.RuneError {
			return "", true, nil
		}
		return string(unicode.ToUpper(r)), true, nil
	case "directory":
		return o.Directory, true, nil
	}
	return "", false, nil
}

func (o Options) date() (string, error) {
	if o.PostedAt == "" {
		return "", nil
	}
	t, err := time.Parse(PostedAtLayout, o.PostedAt)
	if err != nil {
		return "", fmt.Errorf("invalid postedAt %q: %w", o.PostedAt, err)
	}
	if o.DateFormat == "" {
		return t.Format("02-01-2006"), nil
	}
	return strftime.Format(o.DateFormat, t), nil
}

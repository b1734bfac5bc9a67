package scraperimpl

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/orgball2608/subscraper/internal/domain"
	"github.com/orgball2608/subscraper/internal/metadata"
	"github.com/orgball2608/subscraper/internal/pathformat"
	"github.com/orgball2608/subscraper/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reconcileOpts(dir string) ReconcileOpts {
	return ReconcileOpts{
		MetadataDirectory: dir,
		RandomString:      "salt",
		Now:               func() time.Time { return fixedNow },
	}
}

func foundMessage(id int64) *domain.Message {
	return &domain.Message{
		ID:          id,
		IsFromQueue: true,
		QueueID:     100,
		FromUser:    &domain.User{ID: 7, Username: "alice"},
		WithUser:    &domain.User{ID: 7, Username: "alice"},
		Media:       []domain.MediaRecord{photo(10, "https://cdn.example.com/a/x.jpg")},
	}
}

func TestReconcileRefetchesStaleMessage(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()
	dir := t.TempDir()

	queue := []*domain.MassMessage{{
		ID:         100,
		MediaType:  "photo",
		Status:     domain.StatusFound,
		Found:      foundMessage(555),
		HashedIP:   saltHash("salt"),
		DateHashed: fixedNow.Add(-48 * time.Hour).Format(pathformat.PostedAtLayout),
	}}

	fresh := foundMessage(555)
	fresh.Text = "refreshed"
	deps.api.EXPECT().GetMessageByID(gomock.Any(), int64(7), int64(555)).Return(fresh, nil).Times(1)

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(dir), logger.NewNop(), queue)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "refreshed", found[0].Text)
	assert.Equal(t, fixedNow.Format(pathformat.PostedAtLayout), queue[0].DateHashed)

	var persisted []*domain.MassMessage
	ok, err := metadata.ImportJSONIfExists(filepath.Join(dir, metadata.MassMessagesFile), &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, persisted, 1)
	assert.Equal(t, "refreshed", persisted[0].Found.Text)
	assert.Equal(t, domain.StatusFound, persisted[0].Status)
}

func TestReconcileRefetchesOnHashChange(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()

	queue := []*domain.MassMessage{{
		ID:         100,
		MediaType:  "photo",
		Status:     domain.StatusFound,
		Found:      foundMessage(555),
		HashedIP:   saltHash("another setup"),
		DateHashed: fixedNow.Format(pathformat.PostedAtLayout),
	}}
	deps.api.EXPECT().GetMessageByID(gomock.Any(), int64(7), int64(555)).Return(foundMessage(555), nil).Times(1)

	_, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(t.TempDir()), logger.NewNop(), queue)
	require.NoError(t, err)
	assert.Equal(t, saltHash("salt"), queue[0].HashedIP)
}

func TestReconcileKeepsFreshMessage(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()

	cached := foundMessage(555)
	queue := []*domain.MassMessage{{
		ID:         100,
		MediaType:  "photo",
		Status:     domain.StatusFound,
		Found:      cached,
		HashedIP:   saltHash("salt"),
		DateHashed: fixedNow.Add(-time.Hour).Format(pathformat.PostedAtLayout),
	}}

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(t.TempDir()), logger.NewNop(), queue)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Same(t, cached, found[0])
}

func TestReconcileSearchesUncachedChats(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()
	dir := t.TempDir()

	queue := []*domain.MassMessage{{ID: 100, TextCropped: "hi &amp; welcome", MediaTypes: map[string]int{"photo": 1}}}

	match := foundMessage(555)
	match.WithUser = nil
	other := &domain.Message{ID: 554, FromUser: &domain.User{ID: 7, Username: "alice"}}

	deps.api.EXPECT().SearchMessages(gomock.Any(), "hi & welcome", searchLimit).
		Return([]*domain.ChatSearchItem{{WithUser: domain.User{ID: 7, Username: "alice"}}}, nil)
	deps.api.EXPECT().GetMessages(gomock.Any(), int64(7), gomock.Nil()).
		Return([]*domain.Message{other, match}, nil)
	// freshly found messages carry no hash yet
	deps.api.EXPECT().GetMessageByID(gomock.Any(), int64(7), int64(555)).Return(foundMessage(555), nil)

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(dir), logger.NewNop(), queue)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusFound, queue[0].Status)
	assert.Equal(t, int64(555), found[0].ID)

	var chats []*domain.Chat
	_, err = metadata.ImportJSONIfExists(filepath.Join(dir, metadata.ChatsFile), &chats)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, int64(7), chats[0].Identifier)
	assert.Len(t, chats[0].Messages.List, 2)
	assert.Equal(t, "alice", chats[0].Messages.List[0].WithUser.Username)
}

func TestReconcileUsesChatCache(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()
	dir := t.TempDir()

	cached := foundMessage(555)
	require.NoError(t, metadata.ExportJSON(filepath.Join(dir, metadata.ChatsFile), []*domain.Chat{
		{Identifier: 7, Messages: domain.MessageList{List: []*domain.Message{cached}}},
	}))

	queue := []*domain.MassMessage{{ID: 100, MediaType: "photo"}}
	deps.api.EXPECT().GetMessageByID(gomock.Any(), int64(7), int64(555)).Return(foundMessage(555), nil)

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(dir), logger.NewNop(), queue)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, domain.StatusFound, queue[0].Status)
}

func TestReconcileSearchMissLeavesUnresolved(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()

	queue := []*domain.MassMessage{
		{ID: 100, TextCropped: "nothing", MediaType: "photo"},
		{ID: 101, TextCropped: "broken", MediaType: "photo"},
		{ID: 102, TextCropped: "canceled", MediaType: "photo", IsCanceled: true},
		{ID: 103, TextCropped: "text only"},
	}
	deps.api.EXPECT().SearchMessages(gomock.Any(), "nothing", searchLimit).Return(nil, nil)
	deps.api.EXPECT().SearchMessages(gomock.Any(), "broken", searchLimit).Return(nil, errors.New("boom"))

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(t.TempDir()), logger.NewNop(), queue)
	require.NoError(t, err)
	assert.Empty(t, found)
	for _, mm := range queue {
		assert.Equal(t, domain.StatusUnresolved, mm.Status, "queue id %d", mm.ID)
		assert.NotEmpty(t, mm.DateHashed)
	}
}

func TestReconcileMarksNotFound(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.withSettings()

	queue := []*domain.MassMessage{{ID: 100, TextCropped: "hello", MediaType: "photo"}}
	deps.api.EXPECT().SearchMessages(gomock.Any(), "hello", searchLimit).
		Return([]*domain.ChatSearchItem{{WithUser: domain.User{ID: 8, Username: "bob"}}}, nil)
	deps.api.EXPECT().GetMessages(gomock.Any(), int64(8), gomock.Nil()).
		Return([]*domain.Message{{ID: 1, FromUser: &domain.User{ID: 8, Username: "bob"}}}, nil)

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(t.TempDir()), logger.NewNop(), queue)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, domain.StatusNotFound, queue[0].Status)
}

func TestReconcileNilWithoutSettings(t *testing.T) {
	_, deps := newTestScraper(t)
	deps.api.EXPECT().SiteSettings().Return(nil)

	found, err := ReconcileMassMessages(context.Background(), deps.api, reconcileOpts(t.TempDir()), logger.NewNop(), []*domain.MassMessage{{ID: 1}})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestScraperReconcileRestoresAnnotations(t *testing.T) {
	s, deps := newTestScraper(t)
	deps.withSettings()
	dir := deps.cfg.Profile.MetadataDirectory

	require.NoError(t, metadata.ExportJSON(filepath.Join(dir, metadata.MassMessagesFile), []*domain.MassMessage{{
		ID:         100,
		Status:     domain.StatusFound,
		Found:      foundMessage(555),
		HashedIP:   saltHash("salt"),
		DateHashed: fixedNow.Format(pathformat.PostedAtLayout),
	}}))

	deps.api.EXPECT().GetMassMessages(gomock.Any()).Return([]*domain.MassMessage{{ID: 100, MediaType: "photo"}}, nil)

	found, err := s.ReconcileMassMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(555), found[0].ID)
}

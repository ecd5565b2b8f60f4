package bot

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kenangan-bot/internal/domain"
	"kenangan-bot/internal/repository"
	"kenangan-bot/internal/service"
)

type mockAuth struct {
	mock.Mock
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, localPath, logicalName, ownerID, contentType string) (string, error) {
	args := m.Called(ctx, localPath, logicalName, ownerID, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) PublicURL(storagePath string) string {
	args := m.Called(storagePath)
	return args.String(0)
}

type mockKeywords struct {
	mock.Mock
}

func (m *mockKeywords) KeywordsFor(ctx context.Context, image []byte) []string {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

type mockPosts struct {
	mock.Mock
}

func (m *mockPosts) CreatePost(ctx context.Context, ownerID, storagePath, title, description string, keywords []string) error {
	args := m.Called(ctx, ownerID, storagePath, title, description, keywords)
	return args.Error(0)
}

// stubFrames returns a fixed stub image regardless of input.
type stubFrames struct {
	data []byte
}

func (s *stubFrames) StubImage(context.Context, domain.MediaType, string) []byte {
	return s.data
}

// panicKeywords simulates an unexpected failure inside a flow step.
type panicKeywords struct{}

func (panicKeywords) KeywordsFor(context.Context, []byte) []string {
	panic("keyword extractor exploded")
}

// fakeDownloader writes a fresh temp file per call and remembers the paths
// so tests can verify cleanup.
type fakeDownloader struct {
	content []byte
	err     error
	paths   []string
}

func (d *fakeDownloader) DownloadToTemp(_ context.Context, _, ext string) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	f, err := os.CreateTemp("", "bot-test-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(d.content); err != nil {
		f.Close()
		return "", err
	}
	f.Close()
	d.paths = append(d.paths, f.Name())
	return f.Name(), nil
}

type testEnv struct {
	orch       *Orchestrator
	store      *repository.MemorySessionStore
	auth       *mockAuth
	storage    *mockStorage
	keywords   *mockKeywords
	posts      *mockPosts
	frames     *stubFrames
	downloader *fakeDownloader
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:      repository.NewMemorySessionStore(),
		auth:       new(mockAuth),
		storage:    new(mockStorage),
		keywords:   new(mockKeywords),
		posts:      new(mockPosts),
		frames:     &stubFrames{data: []byte{0xFF, 0xD8, 0xFF}},
		downloader: &fakeDownloader{content: []byte("media bytes")},
	}

	env.orch = NewOrchestrator(env.store, &service.Services{
		Auth:     env.auth,
		Storage:  env.storage,
		Frames:   env.frames,
		Keywords: env.keywords,
		Posts:    env.posts,
	}, env.downloader)

	return env
}

func (e *testEnv) session(t *testing.T, userID int64) *domain.Session {
	t.Helper()
	session, err := e.store.Get(context.Background(), userID)
	require.NoError(t, err)
	return session
}

func (e *testEnv) loginAs(t *testing.T, userID int64, ownerID string) {
	t.Helper()
	require.NoError(t, e.store.Save(context.Background(), userID, &domain.Session{OwnerID: ownerID}))
}

func command(userID int64, name string) Update {
	return Update{UserID: userID, ChatID: userID, Private: true, Command: name}
}

func text(userID int64, body string) Update {
	return Update{UserID: userID, ChatID: userID, Private: true, Text: body}
}

func photo(userID int64) Update {
	return Update{
		UserID:  userID,
		ChatID:  userID,
		Private: true,
		Media:   &Media{Type: domain.MediaPhoto, FileID: "file1"},
	}
}

func video(userID int64, fileName, mimeType string) Update {
	return Update{
		UserID:  userID,
		ChatID:  userID,
		Private: true,
		Media:   &Media{Type: domain.MediaVideo, FileID: "file2", FileName: fileName, MimeType: mimeType},
	}
}

package bot

import (
	"context"

	"kenangan-bot/internal/domain"
)

// Media describes a photo or video attached to an inbound message.
type Media struct {
	Type     domain.MediaType
	FileID   string
	FileName string
	MimeType string
}

// Update is a transport-independent inbound message. Exactly one of
// Command, Media, or Text drives the dispatch.
type Update struct {
	UserID  int64
	ChatID  int64
	Private bool
	Text    string
	Command string
	Media   *Media
}

// FileDownloader fetches an attachment from the messaging transport into a
// local temporary file and returns its path. The caller owns the file.
type FileDownloader interface {
	DownloadToTemp(ctx context.Context, fileID, ext string) (string, error)
}

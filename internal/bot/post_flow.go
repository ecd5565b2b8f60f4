package bot

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
)

// handleMedia is the entry step of the post-creation flow: download the
// attachment, upload the original bytes, derive the stub image, then ask for
// a title. The temporary file is deleted exactly once before this step
// returns, whatever happened above.
func (o *Orchestrator) handleMedia(ctx context.Context, upd Update, session *domain.Session) []string {
	if !upd.Private {
		return nil
	}

	if !session.Authenticated() {
		return []string{msgLoginFirst}
	}

	if session.InLoginFlow() {
		session.EndLogin()
	}

	media := upd.Media
	ext := domain.PhotoExtension
	contentType := domain.PhotoMimeType
	if media.Type == domain.MediaVideo {
		ext, contentType = domain.VideoExtension(media.FileName, media.MimeType)
	}

	processing := fmt.Sprintf("Processing your %s...", media.Type)

	localPath, err := o.downloader.DownloadToTemp(ctx, media.FileID, ext)
	if err != nil {
		log.Error().Err(err).Int64("user_id", upd.UserID).Str("file_id", media.FileID).
			Msg("downloading media")
		return []string{processing, fmt.Sprintf("Sorry, a critical error occurred while processing your %s.", media.Type)}
	}
	defer o.removeTempFile(localPath)

	logicalName := domain.ObjectName(media.FileID, ext, time.Now())

	storagePath, err := o.storage.Upload(ctx, localPath, logicalName, session.OwnerID, contentType)
	if err != nil {
		log.Error().Err(err).Int64("user_id", upd.UserID).Msg("media upload failed")
		session.Scratch = domain.Scratch{}
		return []string{processing, fmt.Sprintf("Failed to upload %s to storage. Cannot proceed.", media.Type)}
	}

	session.Scratch = domain.Scratch{
		OwnerID:     session.OwnerID,
		StoragePath: storagePath,
		PublicURL:   o.storage.PublicURL(storagePath),
	}

	// Soft step: a nil stub image only means keywords get skipped later.
	session.Scratch.StubImage = o.frames.StubImage(ctx, media.Type, localPath)

	session.Post = domain.PostAwaitTitle
	log.Info().Int64("user_id", upd.UserID).Str("storage_path", storagePath).
		Str("media_type", string(media.Type)).Msg("post flow started")

	return []string{processing, fmt.Sprintf("%s uploaded! %s", capitalize(string(media.Type)), msgAskTitle)}
}

// handlePostText advances GET_TITLE -> GET_DESCRIPTION -> GET_DATE -> END.
func (o *Orchestrator) handlePostText(ctx context.Context, upd Update, session *domain.Session) []string {
	switch session.Post {
	case domain.PostAwaitTitle:
		session.Scratch.Title = upd.Text
		session.Post = domain.PostAwaitDescription
		return []string{msgAskDescription}

	case domain.PostAwaitDescription:
		return o.receiveDescription(ctx, upd, session)

	case domain.PostAwaitDate:
		return o.receiveDate(ctx, upd, session)
	}

	return nil
}

func (o *Orchestrator) receiveDescription(ctx context.Context, upd Update, session *domain.Session) []string {
	session.Scratch.Description = upd.Text

	replies := []string{msgAnalyzing}
	if len(session.Scratch.StubImage) > 0 {
		keywords := o.keywords.KeywordsFor(ctx, session.Scratch.StubImage)
		session.Scratch.Keywords = keywords
		if len(keywords) == 0 {
			replies = append(replies, msgNoKeywords)
		}
	} else {
		session.Scratch.Keywords = nil
		replies = append(replies, msgSkippedKeywords)
	}

	session.Post = domain.PostAwaitDate
	return append(replies, msgAskDate)
}

func (o *Orchestrator) receiveDate(ctx context.Context, upd Update, session *domain.Session) []string {
	eventDate, err := domain.ParseEventDate(strings.TrimSpace(upd.Text))
	if err != nil {
		// The only self-loop in either flow: re-prompt, state unchanged.
		return []string{msgBadDate}
	}
	session.Scratch.EventDate = eventDate

	scratch := session.Scratch
	if scratch.StoragePath == "" || scratch.Title == "" || scratch.Description == "" || scratch.OwnerID == "" {
		log.Error().Int64("user_id", upd.UserID).Msg("post flow scratch incomplete at finalize")
		session.EndPost()
		return []string{msgGenericError}
	}

	replies := []string{msgSaving}
	err = o.posts.CreatePost(ctx, scratch.OwnerID, scratch.StoragePath, scratch.Title, scratch.Description, scratch.Keywords)
	if err != nil {
		replies = append(replies, msgSaveFailed)
	} else {
		final := fmt.Sprintf("Memory post saved successfully!\nTitle: %s\nDate: %s", scratch.Title, scratch.EventDate)
		if len(scratch.Keywords) > 0 {
			final += "\nKeywords: " + domain.JoinKeywords(scratch.Keywords)
		}
		replies = append(replies, final)
	}

	session.EndPost()
	return replies
}

// removeTempFile deletes the downloaded media file. Deletion problems are
// logged and swallowed: a leaked temp file must never fail the flow.
func (o *Orchestrator) removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("removing temp media file")
		return
	}
	log.Debug().Str("path", path).Msg("temp media file removed")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

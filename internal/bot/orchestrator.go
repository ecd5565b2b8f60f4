package bot

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
	"kenangan-bot/internal/repository"
	"kenangan-bot/internal/service"
)

// Orchestrator drives the two conversation flows. One inbound update is
// handled at a time per user; all backend calls block the conversation
// until they return.
type Orchestrator struct {
	sessions   repository.SessionStore
	auth       service.AuthService
	storage    service.StorageService
	frames     service.FrameService
	keywords   service.KeywordService
	posts      service.PostService
	downloader FileDownloader
}

func NewOrchestrator(sessions repository.SessionStore, services *service.Services, downloader FileDownloader) *Orchestrator {
	return &Orchestrator{
		sessions:   sessions,
		auth:       services.Auth,
		storage:    services.Storage,
		frames:     services.Frames,
		keywords:   services.Keywords,
		posts:      services.Posts,
		downloader: downloader,
	}
}

// Dispatch routes an inbound update to the right flow step and returns the
// replies to send. A panic inside any step ends the active flow and clears
// scratch so the conversation cannot get stuck.
func (o *Orchestrator) Dispatch(ctx context.Context, upd Update) (replies []string) {
	session, err := o.sessions.Get(ctx, upd.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", upd.UserID).Msg("loading session")
		session = &domain.Session{}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int64("user_id", upd.UserID).Msg("flow step panicked")
			session.EndLogin()
			session.EndPost()
			replies = append(replies, msgGenericError)
		}
		if err := o.sessions.Save(ctx, upd.UserID, session); err != nil {
			log.Error().Err(err).Int64("user_id", upd.UserID).Msg("saving session")
		}
	}()

	switch {
	case upd.Command != "":
		return o.handleCommand(upd, session)
	case upd.Media != nil:
		return o.handleMedia(ctx, upd, session)
	case session.InLoginFlow():
		return o.handleLoginText(ctx, upd, session)
	case session.InPostFlow():
		return o.handlePostText(ctx, upd, session)
	}

	return nil
}

func (o *Orchestrator) handleCommand(upd Update, session *domain.Session) []string {
	switch strings.ToLower(upd.Command) {
	case "start":
		return []string{msgStart}

	case "login":
		// Flows are mutually exclusive per user; a fresh login supersedes
		// any half-finished post conversation.
		session.EndPost()
		session.Scratch = domain.Scratch{}
		session.Login = domain.LoginAwaitEmail
		return []string{msgAskEmail}

	case "exit":
		if session.Authenticated() {
			session.OwnerID = ""
			log.Info().Int64("user_id", upd.UserID).Msg("user logged out")
			return []string{msgLoggedOut}
		}
		return []string{msgNotLoggedIn}

	case "cancel":
		switch {
		case session.InLoginFlow():
			session.EndLogin()
			return []string{msgLoginCancel}
		case session.InPostFlow():
			// Anything already uploaded stays in storage on purpose.
			session.EndPost()
			return []string{msgPostCancel}
		}
		return []string{msgNothingToDo}
	}

	return nil
}

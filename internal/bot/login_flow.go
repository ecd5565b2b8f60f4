package bot

import (
	"context"

	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
)

// handleLoginText advances the login flow: AWAIT_EMAIL -> AWAIT_PASSWORD ->
// END. The email is taken verbatim; credential verification is entirely the
// backend's job and either outcome ends the flow.
func (o *Orchestrator) handleLoginText(ctx context.Context, upd Update, session *domain.Session) []string {
	switch session.Login {
	case domain.LoginAwaitEmail:
		session.Scratch.Email = upd.Text
		session.Login = domain.LoginAwaitPassword
		log.Info().Int64("user_id", upd.UserID).Str("email", upd.Text).Msg("login email received")
		return []string{msgAskPassword}

	case domain.LoginAwaitPassword:
		email := session.Scratch.Email
		if email == "" {
			// Password arrived without a stored email; end rather than retry.
			session.EndLogin()
			return []string{msgLoginRestart}
		}

		ownerID, err := o.auth.SignIn(ctx, email, upd.Text)
		session.EndLogin()
		if err != nil {
			log.Warn().Int64("user_id", upd.UserID).Str("email", email).Msg("login failed")
			return []string{msgLoginFailed}
		}

		session.OwnerID = ownerID
		log.Info().Int64("user_id", upd.UserID).Str("owner_id", ownerID).Msg("login successful")
		return []string{msgLoginOK}
	}

	return nil
}

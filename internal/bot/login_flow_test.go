package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kenangan-bot/internal/domain"
)

func TestLoginFlow_Success(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.auth.On("SignIn", mock.Anything, "a@b.com", "secret").Return("U1", nil)

	assert.Equal(t, []string{msgAskEmail}, env.orch.Dispatch(ctx, command(1, "login")))
	assert.Equal(t, []string{msgAskPassword}, env.orch.Dispatch(ctx, text(1, "a@b.com")))
	assert.Equal(t, []string{msgLoginOK}, env.orch.Dispatch(ctx, text(1, "secret")))

	session := env.session(t, 1)
	assert.Equal(t, "U1", session.OwnerID)
	assert.Equal(t, domain.LoginIdle, session.Login)
	assert.Equal(t, domain.Scratch{}, session.Scratch)
}

func TestLoginFlow_Failure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.auth.On("SignIn", mock.Anything, "a@b.com", "wrong").Return("", errors.New("bad credentials"))

	env.orch.Dispatch(ctx, command(1, "login"))
	env.orch.Dispatch(ctx, text(1, "a@b.com"))
	assert.Equal(t, []string{msgLoginFailed}, env.orch.Dispatch(ctx, text(1, "wrong")))

	session := env.session(t, 1)
	assert.False(t, session.Authenticated())
	assert.Equal(t, domain.LoginIdle, session.Login)
	assert.Equal(t, domain.Scratch{}, session.Scratch)
}

func TestLoginFlow_MissingEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// Password arriving with no stored email ends the flow instead of
	// calling the backend.
	require.NoError(t, env.store.Save(ctx, 1, &domain.Session{Login: domain.LoginAwaitPassword}))

	assert.Equal(t, []string{msgLoginRestart}, env.orch.Dispatch(ctx, text(1, "secret")))
	env.auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, domain.LoginIdle, env.session(t, 1).Login)
}

func TestLoginFlow_CancelClearsScratch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.orch.Dispatch(ctx, command(1, "login"))
	env.orch.Dispatch(ctx, text(1, "a@b.com"))
	assert.Equal(t, []string{msgLoginCancel}, env.orch.Dispatch(ctx, command(1, "cancel")))

	session := env.session(t, 1)
	assert.Equal(t, domain.LoginIdle, session.Login)
	assert.Equal(t, domain.Scratch{}, session.Scratch)
	env.auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)

	// A fresh login starts with empty scratch, nothing leaks over.
	env.orch.Dispatch(ctx, command(1, "login"))
	assert.Equal(t, domain.Scratch{}, env.session(t, 1).Scratch)
}

func TestLoginFlow_PlainTextOutsideFlowIgnored(t *testing.T) {
	env := newTestEnv()

	assert.Empty(t, env.orch.Dispatch(context.Background(), text(1, "hello?")))
}

func TestExitCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.loginAs(t, 1, "U1")

	assert.Equal(t, []string{msgLoggedOut}, env.orch.Dispatch(ctx, command(1, "exit")))
	assert.False(t, env.session(t, 1).Authenticated())

	assert.Equal(t, []string{msgNotLoggedIn}, env.orch.Dispatch(ctx, command(1, "exit")))
}

func TestStartCommand(t *testing.T) {
	env := newTestEnv()
	assert.Equal(t, []string{msgStart}, env.orch.Dispatch(context.Background(), command(1, "start")))
}

func TestCancelCommand_NoActiveFlow(t *testing.T) {
	env := newTestEnv()
	assert.Equal(t, []string{msgNothingToDo}, env.orch.Dispatch(context.Background(), command(1, "cancel")))
}

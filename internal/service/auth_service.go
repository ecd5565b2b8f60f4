package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/config"
)

// ErrAuthFailed is the single failure the auth client surfaces. Wrong
// credentials and an unreachable backend are deliberately indistinguishable
// to the caller.
var ErrAuthFailed = errors.New("authentication failed")

type AuthService interface {
	// SignIn verifies the credentials against the backend's password-grant
	// endpoint and returns the opaque owner id on success.
	SignIn(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.BackendBaseURL, "/"),
		apiKey:     cfg.BackendAPIKey,
	}
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordGrantResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID string `json:"id"`
	} `json:"user"`
}

func (s *authService) SignIn(ctx context.Context, email, password string) (string, error) {
	if s.baseURL == "" || s.apiKey == "" {
		log.Warn().Msg("auth backend not configured")
		return "", ErrAuthFailed
	}

	body, err := json.Marshal(passwordGrantRequest{Email: email, Password: password})
	if err != nil {
		return "", ErrAuthFailed
	}

	reqURL := fmt.Sprintf("%s/auth/v1/token?grant_type=password", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", ErrAuthFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("password grant request failed")
		return "", ErrAuthFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("email", email).Msg("password grant rejected")
		return "", ErrAuthFailed
	}

	var grant passwordGrantResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		log.Error().Err(err).Msg("decoding password grant response")
		return "", ErrAuthFailed
	}

	if grant.User.ID != "" {
		return grant.User.ID, nil
	}

	// Some backends omit the user object; the token subject carries the
	// same id. The token just came over TLS from the backend itself, so an
	// unverified parse is enough to read the claim.
	if sub := tokenSubject(grant.AccessToken); sub != "" {
		return sub, nil
	}

	log.Warn().Str("email", email).Msg("password grant response carried no user id")
	return "", ErrAuthFailed
}

func tokenSubject(accessToken string) string {
	if accessToken == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return ""
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// Package session provides the authenticated HTTP session against the intra
// API. It wraps the OAuth2 client-credentials flow: the token is exchanged
// when the session is constructed and refreshed transparently by the
// underlying oauth2 transport on later calls.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/peer-tools/intra/internal/logger"
)

// tokenURL is the intra OAuth token endpoint. Var so tests can point it at a
// local server.
var tokenURL = "https://api.intra.42.fr/oauth/token"

// callTimeout bounds a single API call including the token refresh.
const callTimeout = 30 * time.Second

// ErrAuth wraps token-exchange and transport failures from the OAuth layer.
var ErrAuth = errors.New("authentication failed")

// Session is an authenticated client scoped to one OAuth application and one
// intra login. It is not safe for concurrent use and is not meant to be: the
// CLI is single-flight.
type Session struct {
	client   *http.Client
	clientID string
	login    string
}

// New exchanges the client credentials for a token and returns a ready
// session. The exchange happens eagerly so bad credentials fail here rather
// than on the first API call.
func New(ctx context.Context, clientID, clientSecret, login string) (*Session, error) {
	cc := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	if _, err := cc.Token(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuth, err)
	}
	logger.Debug("obtained access token", zap.String("client_id", clientID))

	client := cc.Client(ctx)
	client.Timeout = callTimeout

	return &Session{
		client:   client,
		clientID: clientID,
		login:    login,
	}, nil
}

// Call performs one authenticated GET against url and returns the raw
// response body. Any non-2xx status is an error carrying the status code.
func (s *Session) Call(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	logger.Debug("calling intra API", zap.String("url", url))
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request to %s: %w", ErrAuth, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return string(body), nil
}

// ClientID returns the OAuth application id the session was built with.
func (s *Session) ClientID() string {
	return s.clientID
}

// Login returns the intra login the session is scoped to.
func (s *Session) Login() string {
	return s.login
}

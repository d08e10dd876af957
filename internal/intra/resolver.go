package intra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/peer-tools/intra/internal/logger"
)

// apiBase is the intra API root.
const apiBase = "https://api.intra.42.fr"

// ErrUserNotFound indicates the login-filtered listing came back empty.
var ErrUserNotFound = errors.New("user not found")

// Caller is the authenticated call primitive the resolver depends on.
// *session.Session satisfies it; tests substitute a fake.
type Caller interface {
	Call(ctx context.Context, url string) (string, error)
	ClientID() string
	Login() string
}

// Resolver locates the configured user via two dependent lookups: the
// login-filtered listing yields the numeric id, the id yields the profile.
type Resolver struct {
	session Caller
}

// NewResolver returns a resolver bound to an authenticated session.
func NewResolver(session Caller) *Resolver {
	return &Resolver{session: session}
}

// ResolveSummary looks the user up by login and returns the first match.
// An empty result is ErrUserNotFound, not an index fault.
func (r *Resolver) ResolveSummary(ctx context.Context) (*UserSummary, error) {
	u, err := url.Parse(apiBase + "/v2/users")
	if err != nil {
		return nil, fmt.Errorf("failed to build users URL: %w", err)
	}
	q := url.Values{}
	q.Set("client_id", r.session.ClientID())
	q.Set("filter[login]", r.session.Login())
	u.RawQuery = q.Encode()

	body, err := r.session.Call(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var users []UserSummary
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		return nil, fmt.Errorf("failed to decode user listing: %w", err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: login %q", ErrUserNotFound, r.session.Login())
	}
	if len(users) > 1 {
		logger.Warn("login filter matched multiple users, using the first",
			zap.String("login", r.session.Login()), zap.Int("matches", len(users)))
	}

	return &users[0], nil
}

// ResolveProfile fetches the full profile for a numeric user id.
func (r *Resolver) ResolveProfile(ctx context.Context, id int64) (*UserProfile, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v2/users/%d", apiBase, id))
	if err != nil {
		return nil, fmt.Errorf("failed to build user URL: %w", err)
	}
	q := url.Values{}
	q.Set("client_id", r.session.ClientID())
	u.RawQuery = q.Encode()

	body, err := r.session.Call(ctx, u.String())
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{}
	if err := json.Unmarshal([]byte(body), profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	return profile, nil
}

// Resolve runs both lookups in sequence. Every command pays for both calls
// today; keeping the pair behind this method means a per-command fetch
// optimization would not touch the dispatcher.
func (r *Resolver) Resolve(ctx context.Context) (*UserSummary, *UserProfile, error) {
	summary, err := r.ResolveSummary(ctx)
	if err != nil {
		return nil, nil, err
	}
	profile, err := r.ResolveProfile(ctx, summary.ID)
	if err != nil {
		return nil, nil, err
	}
	return summary, profile, nil
}

package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer serves a token endpoint plus a canned user endpoint, checking
// that API calls carry the issued bearer token.
func newAPIServer(t *testing.T, rejectAuth bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if rejectAuth {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": "invalid_client"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "tok-123", "token_type": "bearer", "expires_in": 7200}`)
	})
	mux.HandleFunc("/v2/users/1234", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id": 1234, "login": "jdoe"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	orig := tokenURL
	tokenURL = srv.URL + "/oauth/token"
	t.Cleanup(func() { tokenURL = orig })

	return srv
}

func TestNewExchangesTokenEagerly(t *testing.T) {
	newAPIServer(t, false)

	sess, err := New(context.Background(), "abc", "secret", "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "abc", sess.ClientID())
	assert.Equal(t, "jdoe", sess.Login())
}

func TestNewBadCredentials(t *testing.T) {
	newAPIServer(t, true)

	_, err := New(context.Background(), "abc", "wrong", "jdoe")
	require.ErrorIs(t, err, ErrAuth)
}

func TestCallReturnsBody(t *testing.T) {
	srv := newAPIServer(t, false)

	sess, err := New(context.Background(), "abc", "secret", "jdoe")
	require.NoError(t, err)

	body, err := sess.Call(context.Background(), srv.URL+"/v2/users/1234")
	require.NoError(t, err)
	assert.Equal(t, `{"id": 1234, "login": "jdoe"}`, body)
}

func TestCallNonOKStatus(t *testing.T) {
	srv := newAPIServer(t, false)

	sess, err := New(context.Background(), "abc", "secret", "jdoe")
	require.NoError(t, err)

	_, err = sess.Call(context.Background(), srv.URL+"/v2/users/9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCallBadURL(t *testing.T) {
	newAPIServer(t, false)

	sess, err := New(context.Background(), "abc", "secret", "jdoe")
	require.NoError(t, err)

	_, err = sess.Call(context.Background(), "http://\x00bad")
	require.Error(t, err)
}

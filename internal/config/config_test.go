package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	long := strings.Repeat("a", 257)
	max := strings.Repeat("a", 256)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{ClientID: "abc", ClientSecret: "secret", Login: "jdoe"}, false},
		{"valid at max length", Config{ClientID: max, ClientSecret: max, Login: "jdoe"}, false},
		{"empty client id", Config{ClientID: "", ClientSecret: "secret"}, true},
		{"empty client secret", Config{ClientID: "abc", ClientSecret: ""}, true},
		{"client id too long", Config{ClientID: long, ClientSecret: "secret"}, true},
		{"client secret too long", Config{ClientID: "abc", ClientSecret: long}, true},
		{"empty login is allowed", Config{ClientID: "abc", ClientSecret: "secret", Login: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := &Config{ClientID: "abc", ClientSecret: "secret", Login: "jdoe"}
	red := cfg.Redacted()

	assert.Equal(t, "********", red.ClientSecret)
	assert.Equal(t, "abc", red.ClientID)
	assert.Equal(t, "jdoe", red.Login)
	// original untouched
	assert.Equal(t, "secret", cfg.ClientSecret)
}

func TestRedactedEmptySecret(t *testing.T) {
	cfg := &Config{ClientID: "abc"}
	assert.Empty(t, cfg.Redacted().ClientSecret)
}

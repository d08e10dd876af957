package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Command
	}{
		{"id", ID},
		{"me", Me},
		{"email", Email},
		{"login", Login},
		{"point", CorrectionPoint},
		{"wallet", Wallet},
		{"blackhole", Blackhole},
		{"WALLET", Wallet},
		{"Blackhole", Blackhole},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, token := range []string{"correctionpoint", "walet", "", "logout"} {
		t.Run("token "+token, func(t *testing.T) {
			_, err := Parse(token)
			require.ErrorIs(t, err, ErrUnknown)
			assert.Contains(t, err.Error(), TokenList())
		})
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "point", CorrectionPoint.String())
	assert.Equal(t, "login", Login.String())
	assert.Equal(t, "Command(99)", Command(99).String())
}

// Package command maps a single CLI token onto a profile-field renderer.
package command

import (
	"errors"
	"fmt"
	"strings"
)

// Command is the closed set of profile fields the CLI can print.
type Command int

const (
	ID Command = iota
	Me
	Email
	Login
	CorrectionPoint
	Wallet
	Blackhole
)

// ErrUnknown indicates the requested token is not part of the enumeration.
var ErrUnknown = errors.New("unknown command")

// tokens maps the accepted CLI tokens to commands. Order here drives the
// help listing.
var tokens = []struct {
	token string
	cmd   Command
}{
	{"id", ID},
	{"me", Me},
	{"email", Email},
	{"login", Login},
	{"point", CorrectionPoint},
	{"wallet", Wallet},
	{"blackhole", Blackhole},
}

// Parse maps a free-text token onto a Command, case-insensitively. An
// unrecognized token is a hard error; the "login" default applies only when
// no token was given at all, which is the caller's decision.
func Parse(token string) (Command, error) {
	lower := strings.ToLower(token)
	for _, t := range tokens {
		if t.token == lower {
			return t.cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknown, token, TokenList())
}

// TokenList returns the accepted tokens as a comma-separated string for
// error messages and help text.
func TokenList() string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.token
	}
	return strings.Join(names, ", ")
}

// String returns the canonical token of the command.
func (c Command) String() string {
	for _, t := range tokens {
		if t.cmd == c {
			return t.token
		}
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

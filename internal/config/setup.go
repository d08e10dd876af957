package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// Setup runs the one-shot interactive configuration capture. It prints the
// OAuth application registration instructions, prompts for the client id,
// client secret and login on in, and writes the configuration file at path.
// The parent directory is created if missing; the file is written 0600 since
// it holds a secret.
//
// The reader and writer are injected so tests can drive setup with a
// scripted input source instead of a terminal.
func Setup(path string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Browse to: https://profile.intra.42.fr/oauth/applications/new")
	fmt.Fprintln(out, "Create a new application")
	fmt.Fprintln(out, "Set the redirect URL to \"http://localhost:8080\"")

	reader := bufio.NewReader(in)

	clientID, err := promptLine(reader, out, "Enter client id: ")
	if err != nil {
		return fmt.Errorf("failed to read client id: %w", err)
	}
	clientSecret, err := promptSecret(reader, in, out, "Enter client secret: ")
	if err != nil {
		return fmt.Errorf("failed to read client secret: %w", err)
	}
	login, err := promptLine(reader, out, "Enter intra login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Written as quoted key="value" lines so the file stays hand-editable
	// and parses as plain TOML.
	content := fmt.Sprintf("client_id=%q\nclient_secret=%q\nlogin=%q\n",
		clientID, clientSecret, login)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// promptLine prints prompt to out and reads a single trimmed line. A final
// unterminated line before EOF is still returned.
func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads the secret without echo when in is a terminal, and
// falls back to a plain line read otherwise (pipes, tests).
func promptSecret(reader *bufio.Reader, in io.Reader, out io.Writer, prompt string) (string, error) {
	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return promptLine(reader, out, prompt)
	}

	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", err
	}
	secret, err := readPassword(int(file.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

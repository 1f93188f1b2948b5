package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getSimpleText and getPassword are indirections used by commands so that
// tests can script the answers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errAborted = errors.New("aborted")

// GetSimpleText prints a prompt to w and reads one trimmed line from reader.
// A partial line before EOF is returned as-is.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
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

// GetPassword reads a secret from the terminal without echo.
// The caller should wipe the returned slice.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// clearInput entered at a prompt with a default empties the field.
const clearInput = "-"

// ask reads a line; def is shown in brackets and returned for empty input.
// "-" clears a default. "cancel" aborts the current dialog.
func (a *App) ask(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(s, "cancel") {
		return "", errAborted
	}
	if s == "" {
		return def, nil
	}
	if s == clearInput && def != "" {
		return "", nil
	}
	return s, nil
}

// askSecret reads a secret and returns it as a string. The raw bytes are
// wiped before returning.
func (a *App) askSecret(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer wipe(pw)
	return string(pw), nil
}

// Confirm implements controllers.Confirmer.
func (a *App) Confirm(prompt string) bool {
	s, err := getSimpleText(a.reader, prompt+" (y/N)", a.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}

// Package source selects where the target path entered by the user comes
// from when the interactive prompt is bypassed.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/okanri/fman/internal/dialog"
)

// Prompter returns a non-interactive dialog.Prompter when one applies:
// an explicit --path value wins, otherwise a single line is read from
// piped stdin. ok is false when the user should be prompted interactively.
func Prompter(pathFlag string) (p dialog.Prompter, ok bool) {
	if pathFlag != "" {
		return static{value: pathFlag}, true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return stdinLine{}, true
	}
	return nil, false
}

// static answers every prompt with a fixed value.
type static struct {
	value string
}

func (s static) Input(dialog.InputOptions) (string, bool, error) {
	return s.value, true, nil
}

// stdinLine reads one line from piped stdin per prompt. An empty line or
// exhausted input counts as a dismissed prompt.
type stdinLine struct{}

func (stdinLine) Input(dialog.InputOptions) (string, bool, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// AssumeYes answers every confirmation affirmatively. Used with --yes so
// piped invocations never block on a dialog.
type AssumeYes struct{}

// Confirm implements dialog.Confirmer.
func (AssumeYes) Confirm(message, action string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s %s assumed.\n", message, action)
	return true, nil
}

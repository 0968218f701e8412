package paths

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Resolve computes the absolute target path for a user-entered value.
// A leading '~' is expanded, an absolute input overrides the base directory,
// and a relative input is joined against it with '.'/'..' segments collapsed.
// Separators are normalized for the host platform. No existence check is
// performed.
func Resolve(baseDir, userInput string) (string, error) {
	expanded, err := homedir.Expand(userInput)
	if err != nil {
		return "", fmt.Errorf("failed to expand '%s': %w", userInput, err)
	}

	expanded = filepath.FromSlash(expanded)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(filepath.FromSlash(baseDir), expanded), nil
}

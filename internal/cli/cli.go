package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Command string
	Root    bool
	Path    string
	Yes     bool
	Native  bool
	Debug   bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.Root, "root", "r", false, "Resolve the entered path against the workspace root instead of the active file's directory.")
	pflag.StringVarP(&cfg.Path, "path", "p", "", "Target path. Skips the interactive prompt.")
	pflag.BoolVarP(&cfg.Yes, "yes", "y", false, "Assume 'yes' on confirmation dialogs (overwrite, delete).")
	pflag.BoolVar(&cfg.Native, "native-prompts", false, "Prompt inside Neovim with input()/confirm() instead of the terminal.")
	pflag.BoolVar(&cfg.Debug, "debug", false, "Write debug logs to the state directory.")

	pflag.Usage = func() {
		fmt.Println("Usage: fman <command> [flags]")
		fmt.Println("\nFile operations for the Neovim instance named by $NVIM.")
		fmt.Println("\nRun 'fman commands' to list the available commands.")
		fmt.Println("\nExample: fman new -r")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() == 0 {
		return nil, fmt.Errorf("error: no command given")
	}
	if pflag.NArg() > 1 {
		return nil, fmt.Errorf("error: expected exactly one command, got %d", pflag.NArg())
	}
	cfg.Command = pflag.Arg(0)

	if cfg.Root && cfg.Command != "new" {
		return nil, fmt.Errorf("error: --root only applies to 'new'")
	}

	return cfg, nil
}

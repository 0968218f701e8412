package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okanri/fman/fman"
	"github.com/okanri/fman/internal/cli"
	"github.com/okanri/fman/internal/config"
	"github.com/okanri/fman/internal/logging"
	"github.com/okanri/fman/internal/ui"
	"github.com/okanri/fman/model"
)

func main() {
	flags, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.Command == "commands" {
		printCommands()
		return
	}

	cmd, ok := fman.Resolve(flags)
	if !ok {
		ui.Error("Unknown command '%s'. Run 'fman commands' for the list.", flags.Command)
		os.Exit(1)
	}

	conf, err := config.Load()
	if err != nil {
		ui.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logFile := conf.Log.File
	if flags.Debug && logFile == "" {
		logFile = logging.DefaultFile()
		os.MkdirAll(filepath.Dir(logFile), 0755)
	}
	logger, err := logging.New(conf.Log.Level, logFile)
	if err != nil {
		ui.Warning("Logging disabled: %v", err)
	}
	defer logger.Sync()

	app, err := fman.New(flags, conf, logger)
	if err != nil {
		ui.Error("Failed to connect to Neovim: %v", err)
		os.Exit(1)
	}
	defer app.Close()

	doc, err := cmd.Run(app)
	if err != nil {
		// The app already surfaced the message through the editor; repeat
		// it on stderr for terminal invocations and fail the process.
		ui.Error("%v", err)
		if e, ok := err.(*fman.DetailedError); ok {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		os.Exit(1)
	}

	ui.PrintResult(model.Result{Command: cmd.Name, Doc: doc, Message: fman.Summary(cmd, doc)})
}

func printCommands() {
	for _, cmd := range fman.Commands() {
		fmt.Printf("%-10s %-28s %s\n", cmd.Name, cmd.Title, cmd.Category)
	}
}

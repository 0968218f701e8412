// Package fman exposes the file-management commands: each entry point runs
// one dialog flow and decides whether a failure is surfaced to the user or
// settled quietly.
package fman

import (
	"fmt"
	"path/filepath"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/okanri/fman/internal/cli"
	"github.com/okanri/fman/internal/config"
	"github.com/okanri/fman/internal/dialog"
	"github.com/okanri/fman/internal/nvim"
	"github.com/okanri/fman/internal/source"
	"github.com/okanri/fman/internal/tui"
	"github.com/okanri/fman/model"
)

// ErrorDisplay surfaces a failure message to the user.
type ErrorDisplay interface {
	ShowError(msg string)
}

// App wires the dialog controller to an editor host and prompt adapters.
type App struct {
	controller *dialog.Controller
	editor     dialog.Editor
	display    ErrorDisplay
	log        *zap.Logger
	closeFn    func()
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New connects to Neovim and assembles the app from flags and config.
func New(flags *cli.Config, conf *config.Config, log *zap.Logger) (*App, error) {
	host, err := nvim.New()
	if err != nil {
		return nil, err
	}

	native := (flags.Native || conf.NativePrompts) && host.Attached()

	var prompter dialog.Prompter = tui.Terminal{}
	var confirmer dialog.Confirmer = tui.Terminal{}
	if native {
		prompter = host
		confirmer = host
	}
	if p, ok := source.Prompter(flags.Path); ok {
		prompter = p
	}
	if flags.Yes {
		confirmer = source.AssumeYes{}
	}

	ctrl := dialog.New(prompter, confirmer, host, conf.Root, log)
	app := NewWithParts(ctrl, host, host, log)
	app.closeFn = host.Close
	return app, nil
}

// NewWithParts assembles an app from explicit collaborators. Used by
// embedders and tests.
func NewWithParts(ctrl *dialog.Controller, editor dialog.Editor, display ErrorDisplay, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		controller: ctrl,
		editor:     editor,
		display:    display,
		log:        log,
	}
}

// Close releases the editor connection.
func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

// NewFile prompts for a path relative to the active file and creates it.
func (a *App) NewFile() (*model.Document, error) {
	return a.run(func() (*model.Document, error) {
		return a.controller.ShowNewFileDialog(dialog.NewFileOptions{})
	})
}

// NewFileAtRoot prompts for a path relative to the workspace root and
// creates it.
func (a *App) NewFileAtRoot() (*model.Document, error) {
	return a.run(func() (*model.Document, error) {
		return a.controller.ShowNewFileDialog(dialog.NewFileOptions{RelativeToRoot: true})
	})
}

// RenameFile renames the active file.
func (a *App) RenameFile() (*model.Document, error) {
	return a.run(a.controller.ShowRenameDialog)
}

// MoveFile moves the active file to a root-relative location.
func (a *App) MoveFile() (*model.Document, error) {
	return a.run(a.controller.ShowMoveDialog)
}

// DuplicateFile copies the active file to a new name.
func (a *App) DuplicateFile() (*model.Document, error) {
	return a.run(a.controller.ShowDuplicateDialog)
}

// RemoveFile deletes the active file after confirmation.
func (a *App) RemoveFile() (*model.Document, error) {
	return a.run(a.controller.ShowDeleteDialog)
}

// CopyFileName puts the active file's basename on the system clipboard.
func (a *App) CopyFileName() (*model.Document, error) {
	return a.run(func() (*model.Document, error) {
		return a.copyFromActive(func(path string) string { return filepath.Base(path) })
	})
}

// CopyFilePath puts the active file's absolute path on the system clipboard.
func (a *App) CopyFilePath() (*model.Document, error) {
	return a.run(func() (*model.Document, error) {
		return a.copyFromActive(func(path string) string { return path })
	})
}

func (a *App) copyFromActive(pick func(path string) string) (*model.Document, error) {
	active, err := a.editor.ActiveFile()
	if err != nil {
		return nil, err
	}
	if active == "" {
		return nil, dialog.ErrNoActiveContext
	}
	if err := clipboard.WriteAll(pick(active)); err != nil {
		return nil, fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return &model.Document{Path: active, Existed: true}, nil
}

// run applies the failure policy: quiet conditions settle as (nil, nil),
// everything else is shown verbatim and propagated.
func (a *App) run(op func() (*model.Document, error)) (doc *model.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
			a.display.ShowError(err.Error())
		}
	}()

	doc, err = op()
	if err != nil {
		if dialog.IsSilent(err) {
			a.log.Debug("command settled quietly", zap.Error(err))
			return nil, nil
		}
		a.display.ShowError(err.Error())
		return nil, err
	}
	return doc, nil
}

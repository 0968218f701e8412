// Package dialog implements the interactive file-operation flows: determine
// a base directory, prompt for a target, resolve it, confirm conflicts, and
// mutate the filesystem before opening the result in the editor.
package dialog

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/okanri/fman/internal/fs"
	"github.com/okanri/fman/internal/paths"
	"github.com/okanri/fman/model"
)

// Failure conditions that entry points settle quietly, without a
// user-visible error.
var (
	ErrNoActiveContext = errors.New("no active file")
	ErrCancelled       = errors.New("cancelled")
)

// IsSilent reports whether err is one of the quiet failure conditions.
func IsSilent(err error) bool {
	return errors.Is(err, ErrNoActiveContext) || errors.Is(err, ErrCancelled)
}

// InputOptions are handed to the Prompter verbatim; nothing else leaks
// through to the host prompt.
type InputOptions struct {
	Prompt  string
	Default string
}

// Prompter asks the user for a single line of text. ok is false when the
// user dismissed the prompt without entering a value.
type Prompter interface {
	Input(opts InputOptions) (value string, ok bool, err error)
}

// Confirmer presents a modal choice with a single affirmative action label.
// A dismissed dialog counts as declined.
type Confirmer interface {
	Confirm(message, action string) (bool, error)
}

// Editor is the host the controller reads the active document from and
// opens results in.
type Editor interface {
	// ActiveFile returns the path of the currently focused document, or
	// an empty string when none is open.
	ActiveFile() (string, error)
	// Open loads path into the editor and makes it the active document.
	Open(path string) error
}

// Controller orchestrates the file-operation dialogs. All collaborators are
// injected so the flows can be driven by fakes.
type Controller struct {
	prompter  Prompter
	confirmer Confirmer
	editor    Editor
	root      string
	log       *zap.Logger
}

// New creates a Controller. root is the workspace root used by
// root-relative operations.
func New(prompter Prompter, confirmer Confirmer, editor Editor, root string, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		prompter:  prompter,
		confirmer: confirmer,
		editor:    editor,
		root:      root,
		log:       log,
	}
}

// NewFileOptions configures ShowNewFileDialog.
type NewFileOptions struct {
	// RelativeToRoot resolves the entered path against the workspace root
	// instead of the active document's directory.
	RelativeToRoot bool
}

// ShowNewFileDialog prompts for a path, creates an empty file there
// (creating missing parent directories), and opens it. An existing target
// requires explicit overwrite confirmation; declining leaves the file
// untouched and returns its handle without opening it.
func (c *Controller) ShowNewFileDialog(opts NewFileOptions) (*model.Document, error) {
	base, err := c.baseDir(opts.RelativeToRoot)
	if err != nil {
		return nil, err
	}

	name, ok, err := c.prompter.Input(InputOptions{Prompt: "File Name"})
	if err != nil {
		return nil, err
	}
	if !ok || name == "" {
		return nil, ErrCancelled
	}

	target, err := paths.Resolve(base, name)
	if err != nil {
		return nil, err
	}

	existed := fs.IsFile(target)
	if existed {
		overwrite, err := c.confirmOverwrite(target)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			c.log.Debug("overwrite declined", zap.String("path", target))
			return &model.Document{Path: target, Existed: true}, nil
		}
	} else if err := writableTarget(target); err != nil {
		return nil, err
	}

	if err := fs.EnsureDir(filepath.Dir(target)); err != nil {
		return nil, err
	}
	if err := fs.Create(target); err != nil {
		return nil, err
	}
	if err := c.editor.Open(target); err != nil {
		return nil, err
	}

	c.log.Debug("created file",
		zap.String("path", target),
		zap.Bool("overwrote", existed))
	return &model.Document{Path: target, Existed: existed, Opened: true}, nil
}

// baseDir picks the directory relative targets are resolved against.
func (c *Controller) baseDir(relativeToRoot bool) (string, error) {
	if relativeToRoot {
		return c.root, nil
	}
	active, err := c.editor.ActiveFile()
	if err != nil {
		return "", err
	}
	if active == "" {
		return "", ErrNoActiveContext
	}
	return filepath.Dir(active), nil
}

// activeFile returns the active document's path or ErrNoActiveContext.
func (c *Controller) activeFile() (string, error) {
	active, err := c.editor.ActiveFile()
	if err != nil {
		return "", err
	}
	if active == "" {
		return "", ErrNoActiveContext
	}
	return active, nil
}

func (c *Controller) confirmOverwrite(target string) (bool, error) {
	return c.confirmer.Confirm(fmt.Sprintf("File '%s' already exists.", target), "Overwrite")
}

// writableTarget rejects a target occupied by something other than a
// regular file, typically a directory of the same name.
func writableTarget(target string) error {
	if fs.Exists(target) {
		return fmt.Errorf("target '%s' exists and is not a file", target)
	}
	return nil
}

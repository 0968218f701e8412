package dialog

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/okanri/fman/internal/fs"
	"github.com/okanri/fman/internal/paths"
	"github.com/okanri/fman/model"
)

// ShowRenameDialog renames the active document. The entered name is
// resolved against the document's own directory, so nested segments move
// the file as a side effect.
func (c *Controller) ShowRenameDialog() (*model.Document, error) {
	active, err := c.activeFile()
	if err != nil {
		return nil, err
	}

	name, ok, err := c.prompter.Input(InputOptions{Prompt: "New Name", Default: filepath.Base(active)})
	if err != nil {
		return nil, err
	}
	if !ok || name == "" {
		return nil, ErrCancelled
	}

	target, err := paths.Resolve(filepath.Dir(active), name)
	if err != nil {
		return nil, err
	}
	return c.relocate(active, target)
}

// ShowMoveDialog moves the active document to a location entered relative
// to the workspace root.
func (c *Controller) ShowMoveDialog() (*model.Document, error) {
	active, err := c.activeFile()
	if err != nil {
		return nil, err
	}

	current := active
	if rel, err := filepath.Rel(c.root, active); err == nil {
		current = rel
	}
	location, ok, err := c.prompter.Input(InputOptions{Prompt: "New Location", Default: current})
	if err != nil {
		return nil, err
	}
	if !ok || location == "" {
		return nil, ErrCancelled
	}

	target, err := paths.Resolve(c.root, location)
	if err != nil {
		return nil, err
	}
	return c.relocate(active, target)
}

// relocate is the shared rename/move tail: conflict check, parent
// creation, rename, open.
func (c *Controller) relocate(active, target string) (*model.Document, error) {
	if target == active {
		return &model.Document{Path: active, Existed: true}, nil
	}

	if fs.IsFile(target) {
		overwrite, err := c.confirmOverwrite(target)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return &model.Document{Path: target, Existed: true}, nil
		}
	} else if err := writableTarget(target); err != nil {
		return nil, err
	}

	if err := fs.EnsureDir(filepath.Dir(target)); err != nil {
		return nil, err
	}
	if err := fs.Move(active, target); err != nil {
		return nil, err
	}
	if err := c.editor.Open(target); err != nil {
		return nil, err
	}

	c.log.Debug("moved file", zap.String("from", active), zap.String("to", target))
	return &model.Document{Path: target, Opened: true}, nil
}

// ShowDuplicateDialog copies the active document to a new path and opens
// the copy.
func (c *Controller) ShowDuplicateDialog() (*model.Document, error) {
	active, err := c.activeFile()
	if err != nil {
		return nil, err
	}

	name, ok, err := c.prompter.Input(InputOptions{Prompt: "Duplicate As", Default: filepath.Base(active)})
	if err != nil {
		return nil, err
	}
	if !ok || name == "" {
		return nil, ErrCancelled
	}

	target, err := paths.Resolve(filepath.Dir(active), name)
	if err != nil {
		return nil, err
	}
	if target == active {
		return &model.Document{Path: active, Existed: true}, nil
	}

	existed := fs.IsFile(target)
	if existed {
		overwrite, err := c.confirmOverwrite(target)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return &model.Document{Path: target, Existed: true}, nil
		}
	} else if err := writableTarget(target); err != nil {
		return nil, err
	}

	if err := fs.EnsureDir(filepath.Dir(target)); err != nil {
		return nil, err
	}
	if err := fs.Copy(active, target); err != nil {
		return nil, err
	}
	if err := c.editor.Open(target); err != nil {
		return nil, err
	}

	c.log.Debug("duplicated file", zap.String("from", active), zap.String("to", target))
	return &model.Document{Path: target, Existed: existed, Opened: true}, nil
}

// ShowDeleteDialog removes the active document after explicit confirmation.
// Declining leaves the file untouched.
func (c *Controller) ShowDeleteDialog() (*model.Document, error) {
	active, err := c.activeFile()
	if err != nil {
		return nil, err
	}

	confirmed, err := c.confirmer.Confirm(fmt.Sprintf("Delete file '%s'?", active), "Delete")
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return &model.Document{Path: active, Existed: true}, nil
	}

	if err := fs.Remove(active); err != nil {
		return nil, err
	}
	c.log.Debug("deleted file", zap.String("path", active))
	return &model.Document{Path: active, Existed: true}, nil
}

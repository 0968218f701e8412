package fman

import (
	"github.com/okanri/fman/internal/cli"
	"github.com/okanri/fman/internal/fs"
	"github.com/okanri/fman/model"
)

// Command describes one palette entry exposed to the host editor: a stable
// name for keybindings plus a human-readable title and category.
type Command struct {
	Name     string
	Title    string
	Category string
	Run      func(*App) (*model.Document, error)
}

// Commands returns the registry of file-operation commands, in display
// order.
func Commands() []Command {
	return []Command{
		{Name: "new", Title: "New File", Category: "File", Run: (*App).NewFile},
		{Name: "new-root", Title: "New File Relative to Root", Category: "File", Run: (*App).NewFileAtRoot},
		{Name: "rename", Title: "Rename File", Category: "File", Run: (*App).RenameFile},
		{Name: "move", Title: "Move File", Category: "File", Run: (*App).MoveFile},
		{Name: "duplicate", Title: "Duplicate File", Category: "File", Run: (*App).DuplicateFile},
		{Name: "remove", Title: "Delete File", Category: "File", Run: (*App).RemoveFile},
		{Name: "copy-name", Title: "Copy File Name", Category: "File", Run: (*App).CopyFileName},
		{Name: "copy-path", Title: "Copy File Path", Category: "File", Run: (*App).CopyFilePath},
	}
}

// Lookup finds a command by name.
func Lookup(name string) (Command, bool) {
	for _, cmd := range Commands() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// Resolve picks the command for the parsed flags. --root upgrades 'new'
// to its root-relative variant.
func Resolve(flags *cli.Config) (Command, bool) {
	name := flags.Command
	if name == "new" && flags.Root {
		name = "new-root"
	}
	return Lookup(name)
}

// Summary returns a one-line outcome message for a finished command, or an
// empty string when nothing was changed.
func Summary(cmd Command, doc *model.Document) string {
	if doc == nil {
		return ""
	}
	switch cmd.Name {
	case "new", "new-root":
		if !doc.Opened {
			return ""
		}
		if doc.Existed {
			return "Overwrote"
		}
		return "Created"
	case "rename":
		if doc.Opened {
			return "Renamed"
		}
	case "move":
		if doc.Opened {
			return "Moved"
		}
	case "duplicate":
		if doc.Opened {
			return "Duplicated"
		}
	case "remove":
		if !fs.IsFile(doc.Path) {
			return "Deleted"
		}
	case "copy-name", "copy-path":
		return "Copied to clipboard"
	}
	return ""
}

package fman_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanri/fman/fman"
	"github.com/okanri/fman/internal/cli"
	"github.com/okanri/fman/internal/dialog"
	"github.com/okanri/fman/model"
)

type fakePrompter struct {
	value string
	ok    bool
	err   error
	calls int
}

func (f *fakePrompter) Input(dialog.InputOptions) (string, bool, error) {
	f.calls++
	return f.value, f.ok, f.err
}

type fakeConfirmer struct {
	confirm bool
}

func (f *fakeConfirmer) Confirm(string, string) (bool, error) {
	return f.confirm, nil
}

type fakeEditor struct {
	active string
	opened []string
}

func (f *fakeEditor) ActiveFile() (string, error) { return f.active, nil }

func (f *fakeEditor) Open(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

type fakeDisplay struct {
	messages []string
}

func (f *fakeDisplay) ShowError(msg string) {
	f.messages = append(f.messages, msg)
}

func newApp(p *fakePrompter, c *fakeConfirmer, e *fakeEditor, root string) (*fman.App, *fakeDisplay) {
	display := &fakeDisplay{}
	ctrl := dialog.New(p, c, e, root, nil)
	return fman.NewWithParts(ctrl, e, display, nil), display
}

func TestNewFile(t *testing.T) {
	t.Run("creates and opens the file", func(t *testing.T) {
		dir := t.TempDir()
		editor := &fakeEditor{active: filepath.Join(dir, "one.rb")}
		app, display := newApp(&fakePrompter{value: "two.rb", ok: true}, &fakeConfirmer{}, editor, dir)

		doc, err := app.NewFile()
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, filepath.Join(dir, "two.rb"), doc.Path)
		assert.Empty(t, display.messages)
	})

	t.Run("no active file settles quietly", func(t *testing.T) {
		prompter := &fakePrompter{value: "x", ok: true}
		app, display := newApp(prompter, &fakeConfirmer{}, &fakeEditor{}, t.TempDir())

		doc, err := app.NewFile()
		assert.NoError(t, err)
		assert.Nil(t, doc)
		assert.Empty(t, display.messages, "no error dialog for a missing active file")
		assert.Zero(t, prompter.calls)
	})

	t.Run("cancellation settles quietly", func(t *testing.T) {
		dir := t.TempDir()
		editor := &fakeEditor{active: filepath.Join(dir, "one.rb")}
		app, display := newApp(&fakePrompter{ok: false}, &fakeConfirmer{}, editor, dir)

		doc, err := app.NewFile()
		assert.NoError(t, err)
		assert.Nil(t, doc)
		assert.Empty(t, display.messages)
	})

	t.Run("other failures are shown verbatim and propagated", func(t *testing.T) {
		dir := t.TempDir()
		editor := &fakeEditor{active: filepath.Join(dir, "one.rb")}
		boom := errors.New("must fail")
		app, display := newApp(&fakePrompter{err: boom}, &fakeConfirmer{}, editor, dir)

		doc, err := app.NewFile()
		require.ErrorIs(t, err, boom)
		assert.Nil(t, doc)
		require.Equal(t, []string{"must fail"}, display.messages)
	})
}

func TestNewFileAtRoot(t *testing.T) {
	root := t.TempDir()
	app, display := newApp(&fakePrompter{value: "doc/readme.md", ok: true}, &fakeConfirmer{}, &fakeEditor{}, root)

	doc, err := app.NewFileAtRoot()
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, filepath.Join(root, "doc", "readme.md"), doc.Path)
	assert.Empty(t, display.messages)
}

func TestClipboardCommandsRequireActiveFile(t *testing.T) {
	app, display := newApp(&fakePrompter{}, &fakeConfirmer{}, &fakeEditor{}, t.TempDir())

	doc, err := app.CopyFileName()
	assert.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = app.CopyFilePath()
	assert.NoError(t, err)
	assert.Nil(t, doc)
	assert.Empty(t, display.messages)
}

func TestResolve(t *testing.T) {
	t.Run("root flag upgrades new to its root-relative variant", func(t *testing.T) {
		cmd, ok := fman.Resolve(&cli.Config{Command: "new", Root: true})
		require.True(t, ok)
		assert.Equal(t, "new-root", cmd.Name)
	})

	t.Run("new without the flag stays active-file-relative", func(t *testing.T) {
		cmd, ok := fman.Resolve(&cli.Config{Command: "new"})
		require.True(t, ok)
		assert.Equal(t, "new", cmd.Name)
	})

	t.Run("other commands pass through", func(t *testing.T) {
		cmd, ok := fman.Resolve(&cli.Config{Command: "rename"})
		require.True(t, ok)
		assert.Equal(t, "rename", cmd.Name)

		_, ok = fman.Resolve(&cli.Config{Command: "explode"})
		assert.False(t, ok)
	})

	t.Run("new with root flag creates under the root without an active buffer", func(t *testing.T) {
		root := t.TempDir()
		app, display := newApp(&fakePrompter{value: "sub/file.txt", ok: true}, &fakeConfirmer{}, &fakeEditor{}, root)

		cmd, ok := fman.Resolve(&cli.Config{Command: "new", Root: true})
		require.True(t, ok)

		doc, err := cmd.Run(app)
		require.NoError(t, err)
		require.NotNil(t, doc, "must not settle quietly as no-active-context")
		assert.Equal(t, filepath.Join(root, "sub", "file.txt"), doc.Path)
		assert.FileExists(t, doc.Path)
		assert.Empty(t, display.messages)
	})
}

func TestSummary(t *testing.T) {
	lookup := func(name string) fman.Command {
		cmd, ok := fman.Lookup(name)
		require.True(t, ok)
		return cmd
	}

	t.Run("quiet outcomes have no message", func(t *testing.T) {
		assert.Empty(t, fman.Summary(lookup("new"), nil))
		declined := &model.Document{Path: "/w/x.rb", Existed: true}
		assert.Empty(t, fman.Summary(lookup("new"), declined))
		assert.Empty(t, fman.Summary(lookup("rename"), declined))
	})

	t.Run("mutations are summarized", func(t *testing.T) {
		created := &model.Document{Path: "/w/x.rb", Opened: true}
		assert.Equal(t, "Created", fman.Summary(lookup("new"), created))
		assert.Equal(t, "Created", fman.Summary(lookup("new-root"), created))

		overwrote := &model.Document{Path: "/w/x.rb", Existed: true, Opened: true}
		assert.Equal(t, "Overwrote", fman.Summary(lookup("new"), overwrote))

		assert.Equal(t, "Renamed", fman.Summary(lookup("rename"), created))
		assert.Equal(t, "Moved", fman.Summary(lookup("move"), created))
		assert.Equal(t, "Duplicated", fman.Summary(lookup("duplicate"), created))
		assert.Equal(t, "Copied to clipboard", fman.Summary(lookup("copy-path"), created))
	})

	t.Run("remove reports deletion only when the file is gone", func(t *testing.T) {
		dir := t.TempDir()
		kept := filepath.Join(dir, "kept.rb")
		require.NoError(t, os.WriteFile(kept, []byte("x"), 0644))

		assert.Empty(t, fman.Summary(lookup("remove"), &model.Document{Path: kept, Existed: true}))

		gone := filepath.Join(dir, "gone.rb")
		assert.Equal(t, "Deleted", fman.Summary(lookup("remove"), &model.Document{Path: gone, Existed: true}))
	})
}

func TestCommands(t *testing.T) {
	cmds := fman.Commands()
	require.Len(t, cmds, 8)

	seen := map[string]bool{}
	for _, cmd := range cmds {
		assert.False(t, seen[cmd.Name], "duplicate command name %q", cmd.Name)
		seen[cmd.Name] = true
		assert.NotEmpty(t, cmd.Title)
		assert.Equal(t, "File", cmd.Category)
		assert.NotNil(t, cmd.Run)
	}

	cmd, ok := fman.Lookup("new")
	require.True(t, ok)
	assert.Equal(t, "New File", cmd.Title)

	_, ok = fman.Lookup("explode")
	assert.False(t, ok)
}

// Package nvim adapts a Neovim instance to the editor and prompt
// capabilities the dialog controller consumes.
package nvim

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/neovim/go-client/nvim"

	"github.com/okanri/fman/internal/dialog"
)

// Manager handles the connection and interaction with a Neovim instance.
type Manager struct {
	nvim          *nvim.Nvim
	isSelfStarted bool
	cmd           *exec.Cmd
	socketPath    string
}

// New creates a new Neovim manager, connecting to the instance named by
// $NVIM or $NVIM_LISTEN_ADDRESS, or starting a headless one.
func New() (*Manager, error) {
	for _, env := range []string{"NVIM", "NVIM_LISTEN_ADDRESS"} {
		if addr := os.Getenv(env); addr != "" {
			v, err := nvim.Dial(addr)
			if err == nil {
				return &Manager{nvim: v}, nil
			}
		}
	}

	// No running instance reachable; start a temporary headless one.
	tmpDir, err := os.MkdirTemp("", "fman-nvim-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir for nvim: %w", err)
	}
	socketPath := filepath.Join(tmpDir, "nvim.sock")

	cmd := exec.Command("nvim", "--headless", "--clean", "--listen", socketPath)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start headless nvim: %w. Is 'nvim' in your PATH?", err)
	}

	// Wait for the socket file to appear.
	for i := 0; i < 20; i++ {
		if _, err := os.Stat(socketPath); err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	v, err := nvim.Dial(socketPath)
	if err != nil {
		cmd.Process.Kill()
		return nil, fmt.Errorf("failed to connect to headless nvim: %w", err)
	}

	return &Manager{
		nvim:          v,
		isSelfStarted: true,
		cmd:           cmd,
		socketPath:    socketPath,
	}, nil
}

// Attached reports whether the manager talks to an instance the user is
// sitting in front of, as opposed to a self-started headless one.
func (m *Manager) Attached() bool {
	return !m.isSelfStarted
}

// Close disconnects from Neovim and cleans up if it was self-started.
func (m *Manager) Close() {
	if m.nvim != nil {
		m.nvim.Close()
	}
	if m.isSelfStarted && m.cmd != nil && m.cmd.Process != nil {
		if err := m.cmd.Process.Kill(); err == nil {
			m.cmd.Wait()
			os.RemoveAll(filepath.Dir(m.socketPath))
		}
	}
}

// ActiveFile returns the absolute path of the current buffer's file, or an
// empty string for an unnamed buffer.
func (m *Manager) ActiveFile() (string, error) {
	buf, err := m.nvim.CurrentBuffer()
	if err != nil {
		return "", fmt.Errorf("failed to query current buffer: %w", err)
	}
	name, err := m.nvim.BufferName(buf)
	if err != nil {
		return "", fmt.Errorf("failed to query buffer name: %w", err)
	}
	if name == "" {
		return "", nil
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve buffer path '%s': %w", name, err)
	}
	return abs, nil
}

// Open loads path into Neovim and makes it the active buffer.
func (m *Manager) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve '%s': %w", path, err)
	}
	if err := m.nvim.Command(fmt.Sprintf("edit %s", abs)); err != nil {
		return fmt.Errorf("failed to open '%s' in nvim: %w", path, err)
	}
	return nil
}

// Input implements dialog.Prompter with Vim's input(). An empty result is
// treated as a dismissed prompt; input() reads back empty both on <Esc>
// and on an empty submit.
func (m *Manager) Input(opts dialog.InputOptions) (string, bool, error) {
	var value string
	if err := m.nvim.Call("input", &value, opts.Prompt+": ", opts.Default); err != nil {
		return "", false, fmt.Errorf("input prompt failed: %w", err)
	}
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Confirm implements dialog.Confirmer with Vim's confirm(). Cancel is the
// default choice, so dismissing the dialog declines.
func (m *Manager) Confirm(message, action string) (bool, error) {
	var choice int
	choices := fmt.Sprintf("&%s\n&Cancel", action)
	if err := m.nvim.Call("confirm", &choice, message, choices, 2); err != nil {
		return false, fmt.Errorf("confirm dialog failed: %w", err)
	}
	return choice == 1, nil
}

// ShowError echoes msg in Neovim's message area as an error.
func (m *Manager) ShowError(msg string) {
	if err := m.nvim.WritelnErr(msg); err != nil {
		fmt.Fprintln(os.Stderr, msg)
	}
}

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanri/fman/internal/paths"
)

func TestResolve(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "project", "app")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain name joins the base",
			input: "file.rb",
			want:  filepath.Join(base, "file.rb"),
		},
		{
			name:  "nested segments are kept",
			input: "models/user.rb",
			want:  filepath.Join(base, "models", "user.rb"),
		},
		{
			name:  "dot segments collapse",
			input: "./models/../user.rb",
			want:  filepath.Join(base, "user.rb"),
		},
		{
			name:  "parent traversal escapes the base",
			input: "../lib/util.rb",
			want:  filepath.Join(string(filepath.Separator), "work", "project", "lib", "util.rb"),
		},
		{
			name:  "absolute input overrides the base",
			input: filepath.Join(string(filepath.Separator), "tmp", "scratch.rb"),
			want:  filepath.Join(string(filepath.Separator), "tmp", "scratch.rb"),
		},
		{
			name:  "absolute input is cleaned",
			input: filepath.Join(string(filepath.Separator), "tmp", ".", "a", "..", "scratch.rb"),
			want:  filepath.Join(string(filepath.Separator), "tmp", "scratch.rb"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paths.Resolve(base, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveExpandsTilde(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	got, err := paths.Resolve("/anywhere", "~/notes/todo.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes", "todo.md"), got)
}

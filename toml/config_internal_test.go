package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{"expands tilde prefix", "~/apps", "/home/u", "/home/u/apps"},
		{"expands bare tilde", "~", "/home/u", "/home/u"},
		{"keeps absolute path", "/opt/apps", "/home/u", "/opt/apps"},
		{"keeps tilde user form", "~other/apps", "/home/u", "~other/apps"},
		{"keeps path without home", "~/apps", "", "~/apps"},
		{"keeps empty path", "", "/home/u", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, expandHome(tt.path, tt.home))
		})
	}
}

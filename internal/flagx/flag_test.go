package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "dsn", "-name", "Ada"},
			allowedFlags: []string{"-d", "-k"},
			want:         []string{"-d", "dsn"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-k=sqlite", "-page", "2"},
			allowedFlags: []string{"-d", "-k"},
			want:         []string{"-k=sqlite"},
		},
		{
			name:         "prefix of another flag is not matched",
			args:         []string{"-page", "3", "-p", "20"},
			allowedFlags: []string{"-p"},
			want:         []string{"-p", "20"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-c", "-notvalue"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "value with equals keeps everything after first equals",
			args:         []string{"-d=postgres://u:p@h/db?sslmode=disable"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://u:p@h/db?sslmode=disable"},
		},
		{
			name:         "repeated allowed flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"guestbook", "list", "-c", "/etc/guestbook.json"}
		assert.Equal(t, "/etc/guestbook.json", ConfigFileFlag())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"guestbook", "-config", "/tmp/g.json", "migrate"}
		assert.Equal(t, "/tmp/g.json", ConfigFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"guestbook", "sign", "-name", "Ada"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"guestbook", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", ConfigFileFlag())
	})
}

func TestRemoveArgs(t *testing.T) {
	owned := []string{"-d", "-k", "-c"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "config flags before subcommand",
			args: []string{"-d", "file:x.db", "-k=sqlite", "list", "-page", "2"},
			want: []string{"list", "-page", "2"},
		},
		{
			name: "config flags after subcommand",
			args: []string{"sign", "-name", "Ada", "-c", "cfg.json", "-text", "hi"},
			want: []string{"sign", "-name", "Ada", "-text", "hi"},
		},
		{
			name: "owned flag without value",
			args: []string{"list", "-d"},
			want: []string{"list"},
		},
		{
			name: "owned flag followed by another flag",
			args: []string{"-d", "-page", "3"},
			want: []string{"-page", "3"},
		},
		{
			name: "nothing owned",
			args: []string{"show", "-id", "4"},
			want: []string{"show", "-id", "4"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveArgs(tt.args, owned))
		})
	}
}

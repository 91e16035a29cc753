package editor

import (
	"errors"
	"testing"
)

func TestFindEditor(t *testing.T) {
	notFound := func(string) (string, error) { return "", errors.New("not found") }
	onlyNano := func(name string) (string, error) {
		if name == "nano" {
			return "/usr/bin/nano", nil
		}
		return "", errors.New("not found")
	}

	tests := []struct {
		name     string
		editor   string
		visual   string
		lookPath func(string) (string, error)
		want     string
	}{
		{"editor wins", "hx", "code", notFound, "hx"},
		{"visual when editor unset", "", "code", notFound, "code"},
		{"first fallback on path", "", "", onlyNano, "/usr/bin/nano"},
		{"nothing available", "", "", notFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)

			o := &Opener{lookPath: tt.lookPath}
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	o := &Opener{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	if _, err := o.Command("/vault/doc.md"); err == nil {
		t.Error("Command() expected error when no editor is available")
	}
}

func TestCommand_Args(t *testing.T) {
	t.Setenv("EDITOR", "hx")

	cmd, err := NewOpener().Command("/vault/doc.md")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "hx" || cmd.Args[1] != "/vault/doc.md" {
		t.Errorf("Args = %v", cmd.Args)
	}
}

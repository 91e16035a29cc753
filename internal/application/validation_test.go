package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "vaultPath",
			value:     "/vault",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "vaultPath",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "vaultPath",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateSourceDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		wantErr    bool
		wantSource bool
	}{
		{name: "existing directory", path: dir},
		{name: "missing directory", path: filepath.Join(dir, "missing"), wantErr: true, wantSource: true},
		{name: "file instead of directory", path: file, wantErr: true, wantSource: true},
		{name: "empty path", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceDir("notionDir", tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSourceDir() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrSourceNotFound) != tt.wantSource {
				t.Errorf("errors.Is(err, ErrSourceNotFound) = %v, want %v", !tt.wantSource, tt.wantSource)
			}
		})
	}
}

func TestValidateStableID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"164ede6e5730a8d5", false},
		{"164ede6e", true},
		{"XYZede6e5730a8d5", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStableID("sid", tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStableID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestCollisionError_Is(t *testing.T) {
	err := &CollisionError{ID: "164ede6e5730a8d5", Source: "/a.md", Existing: "/b.md"}

	if !errors.Is(err, ErrIDCollision) {
		t.Error("expected CollisionError to match ErrIDCollision")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("CollisionError should not match ErrNotFound")
	}
}

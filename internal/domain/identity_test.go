package domain

import "testing"

func TestNewStableID_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		path string
		want StableID
	}{
		{
			name: "notion export page",
			path: "/exports/notion/Q3 Revenue Report 8f14e45fceea167a5a36dedd4bea2543.md",
			want: "164ede6e5730a8d5",
		},
		{
			name: "empty path",
			path: "",
			want: "e3b0c44298fc1c14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStableID(tt.path); got != tt.want {
				t.Errorf("NewStableID(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewStableID_Deterministic(t *testing.T) {
	paths := []string{"/a/b.md", "/a/b c.md", "/ünïcode/päth.md", ""}

	for _, p := range paths {
		first := NewStableID(p)
		for i := 0; i < 5; i++ {
			if got := NewStableID(p); got != first {
				t.Fatalf("NewStableID(%q) changed between calls: %s != %s", p, got, first)
			}
		}
		if !first.IsValid() {
			t.Errorf("NewStableID(%q) = %q is not a valid stable ID", p, first)
		}
	}
}

func TestNewStableID_DistinctPaths(t *testing.T) {
	a := NewStableID("/box/budget.xlsx")
	b := NewStableID("/box/archive/budget.xlsx")
	if a == b {
		t.Errorf("expected distinct IDs for distinct paths, both got %s", a)
	}
}

func TestStableID_IsValid(t *testing.T) {
	tests := []struct {
		id   StableID
		want bool
	}{
		{"164ede6e5730a8d5", true},
		{"164EDE6E5730A8D5", false},
		{"164ede6e5730a8d", false},
		{"164ede6e5730a8dz", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.id.IsValid(); got != tt.want {
			t.Errorf("StableID(%q).IsValid() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

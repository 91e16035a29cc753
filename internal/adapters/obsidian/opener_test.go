package obsidian

import (
	"path/filepath"
	"testing"
)

func TestNewOpener_DerivesVaultName(t *testing.T) {
	tests := []struct {
		name          string
		vaultPath     string
		wantVaultName string
	}{
		{"simple vault path", "/Users/test/IntegrateWise", "IntegrateWise"},
		{"vault with spaces", "/Users/test/Company Wiki", "Company Wiki"},
		{"trailing slash", "/srv/vaults/work/", "work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.vaultPath)
			if opener.vaultName != tt.wantVaultName {
				t.Errorf("vaultName = %q, want %q", opener.vaultName, tt.wantVaultName)
			}
		})
	}
}

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name      string
		vaultPath string
		filePath  string
		wantURI   string
		wantErr   bool
	}{
		{
			name:      "migrated document",
			vaultPath: "/Users/test/IntegrateWise",
			filePath:  "/Users/test/IntegrateWise/Knowledge/IntegrateWise/Finance/q3-revenue-report.md",
			wantURI:   "obsidian://open?vault=IntegrateWise&file=Knowledge%2FIntegrateWise%2FFinance%2Fq3-revenue-report.md",
		},
		{
			name:      "vault name with spaces",
			vaultPath: "/Users/test/Company Wiki",
			filePath:  "/Users/test/Company Wiki/Knowledge/IntegrateWise/Misc/untitled.md",
			wantURI:   "obsidian://open?vault=Company%20Wiki&file=Knowledge%2FIntegrateWise%2FMisc%2Funtitled.md",
		},
		{
			name:      "file at vault root",
			vaultPath: "/Users/test/IntegrateWise",
			filePath:  "/Users/test/IntegrateWise/mapping.json",
			wantURI:   "obsidian://open?vault=IntegrateWise&file=mapping.json",
		},
		{
			name:      "file outside vault",
			vaultPath: "/Users/test/IntegrateWise",
			filePath:  "/Users/test/Box/budget.xlsx",
			wantErr:   true,
		},
		{
			name:      "sibling with vault name prefix",
			vaultPath: "/Users/test/IntegrateWise",
			filePath:  "/Users/test/IntegrateWise..old/file.md",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(filepath.FromSlash(tt.vaultPath))
			gotURI, err := opener.BuildURI(filepath.FromSlash(tt.filePath))

			if (err != nil) != tt.wantErr {
				t.Errorf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if gotURI != tt.wantURI {
				t.Errorf("BuildURI() = %q, want %q", gotURI, tt.wantURI)
			}
		})
	}
}

func TestOpenFile_MissingDocument(t *testing.T) {
	vault := t.TempDir()
	opener := NewOpener(vault)

	err := opener.OpenFile(filepath.Join(vault, "Knowledge", "IntegrateWise", "Misc", "gone.md"))
	if err == nil {
		t.Fatal("OpenFile() expected error for missing document")
	}
}

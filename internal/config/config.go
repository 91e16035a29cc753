package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultVaultPath   = "~/Documents/IntegrateWise"
	DefaultMappingName = "mapping.json"
	DefaultLogLevel    = "info"
)

// VaultPath returns the vault path from VAULTMIGRATE_VAULT,
// falling back to DefaultVaultPath.
func VaultPath() string {
	return getEnv("VAULTMIGRATE_VAULT", DefaultVaultPath)
}

// MappingPath returns the mapping file from VAULTMIGRATE_MAPPING,
// falling back to mapping.json inside the vault.
func MappingPath() string {
	return MappingPathIn(VaultPath())
}

// MappingPathIn returns VAULTMIGRATE_MAPPING, or mapping.json inside vaultPath
func MappingPathIn(vaultPath string) string {
	return getEnv("VAULTMIGRATE_MAPPING", filepath.Join(vaultPath, DefaultMappingName))
}

// NotionExportDir returns VAULTMIGRATE_NOTION_EXPORT or ""
func NotionExportDir() string {
	return os.Getenv("VAULTMIGRATE_NOTION_EXPORT")
}

// BoxDir returns VAULTMIGRATE_BOX_DIR or ""
func BoxDir() string {
	return os.Getenv("VAULTMIGRATE_BOX_DIR")
}

// LogLevel returns VAULTMIGRATE_LOG_LEVEL, falling back to DefaultLogLevel
func LogLevel() string {
	return getEnv("VAULTMIGRATE_LOG_LEVEL", DefaultLogLevel)
}

// ExpandHome replaces "~" or a leading "~/" with the user's home directory.
// Other users' homes ("~alice/x") are left alone.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

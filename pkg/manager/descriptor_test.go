// pkg/manager/descriptor_test.go
package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/depstash/depstash/pkg/archive"
)

func writeDescriptor(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeDescriptor(t, t.TempDir(), "npmConfig.yaml", `
cli_name: npm
config_path: package.json
install_directory: node_modules
install_command: npm install
install_options: --no-audit
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "npm", cfg.CliName)
	require.True(t, filepath.IsAbs(cfg.ConfigPath), "manifest path must be absolute")
	require.True(t, filepath.IsAbs(cfg.InstallDirectory), "install directory must be absolute")
	require.Equal(t, "npm install --no-audit", cfg.InstallInvocation())

	// Defaults
	require.Equal(t, []string{"--version"}, cfg.VersionArgs)
	require.Equal(t, archive.FormatGzip, cfg.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := writeDescriptor(t, t.TempDir(), "pipConfig.yaml", `
cli_name: pip
config_path: requirements.txt
install_directory: .venv
install_command: pip install -r requirements.txt
version_args: ["-V"]
format: xz
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"-V"}, cfg.VersionArgs)
	require.Equal(t, archive.FormatXz, cfg.Format)
	require.Equal(t, "pip install -r requirements.txt", cfg.InstallInvocation())
}

func TestLoadMissingFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"noCliConfig.yaml", "config_path: a\ninstall_directory: b\ninstall_command: c\n"},
		{"noManifestConfig.yaml", "cli_name: a\ninstall_directory: b\ninstall_command: c\n"},
		{"noDirConfig.yaml", "cli_name: a\nconfig_path: b\ninstall_command: c\n"},
		{"noCommandConfig.yaml", "cli_name: a\nconfig_path: b\ninstall_directory: c\n"},
		{"badFormatConfig.yaml", "cli_name: a\nconfig_path: b\ninstall_directory: c\ninstall_command: d\nformat: zip\n"},
	}

	for _, tt := range tests {
		path := writeDescriptor(t, dir, tt.name, tt.content)
		_, err := Load(path)
		require.Error(t, err, "descriptor %s should be rejected", tt.name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nopeConfig.yaml"))
	require.Error(t, err)
}

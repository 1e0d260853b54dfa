// pkg/manager/version.go
package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/depstash/depstash/pkg/runner"
)

// CliVersion queries the installed tool for its version string by running
// CliName with the configured version arguments. The first output line,
// trimmed, is used to namespace cache entries so that caches never cross
// incompatible tool versions.
func CliVersion(ctx context.Context, r *runner.Runner, cfg *Config) (string, error) {
	out, err := r.Output(ctx, cfg.CliName, cfg.VersionArgs...)
	if err != nil {
		return "", fmt.Errorf("querying %s version: %w", cfg.CliName, err)
	}

	line, _, _ := strings.Cut(out, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "unknown", nil
	}
	return line, nil
}

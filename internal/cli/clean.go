// internal/cli/clean.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depstash/depstash/pkg/manager"
)

var cleanAll bool

var cleanCmd = &cobra.Command{
	Use:   "clean [manager...]",
	Short: "Remove cached snapshots",
	Long: `Remove the archived snapshots for the named managers, or the whole
cache root with --all. The cache flow itself never evicts entries; this
command is the external cleanup.

Examples:
  depstash clean npm
  depstash clean --all`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "remove the entire cache root")
}

func runClean(cmd *cobra.Command, args []string) error {
	if cleanAll {
		if err := os.RemoveAll(config.CacheDir); err != nil {
			return fmt.Errorf("removing cache root: %w", err)
		}
		fmt.Printf("Removed %s\n", config.CacheDir)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("name at least one manager, or pass --all")
	}

	registry := manager.NewRegistry(config.ManagersDir)
	for _, name := range args {
		path, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		cfg, err := manager.Load(path)
		if err != nil {
			return err
		}

		dir := filepath.Join(config.CacheDir, cfg.CliName)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing cache for %s: %w", name, err)
		}
		fmt.Printf("Removed %s\n", dir)
	}

	return nil
}

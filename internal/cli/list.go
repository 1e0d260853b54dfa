// internal/cli/list.go
package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/depstash/depstash/pkg/manager"
	"github.com/depstash/depstash/pkg/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured package managers",
	Long:  `List every manager descriptor discovered in the managers directory and whether its tool is available on PATH.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	registry := manager.NewRegistry(config.ManagersDir)
	available, err := registry.Available()
	if err != nil {
		return err
	}

	if len(available) == 0 {
		fmt.Printf("No managers configured in %s\n", config.ManagersDir)
		return nil
	}

	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Configured managers:\n")
	for _, name := range names {
		cfg, err := manager.Load(available[name])
		if err != nil {
			fmt.Printf("  ✗ %s (invalid descriptor: %v)\n", name, err)
			continue
		}

		marker := "✗"
		if platform.CommandExists(cfg.CliName) {
			marker = "✓"
		}
		fmt.Printf("  %s %s (cli: %s, manifest: %s)\n", marker, name, cfg.CliName, cfg.ConfigPath)
	}

	fmt.Printf("\n✓ = tool available on PATH\n")
	fmt.Printf("Cache root: %s\n", config.CacheDir)

	return nil
}

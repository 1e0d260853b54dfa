// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/depstash/depstash/pkg/manager"
	"github.com/depstash/depstash/pkg/stash"
)

var runForce bool

var runCmd = &cobra.Command{
	Use:   "run [manager...]",
	Short: "Install or restore dependencies for the configured managers",
	Long: `Run the cache flow for the named managers, or for every configured
manager when none are named.

For each manager: if a snapshot archived under the current manifest digest
exists, the install directory is restored from it; otherwise the install
command runs and its result is archived for next time.

Examples:
  depstash run
  depstash run npm
  depstash run npm bower --force`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runForce, "force", false, "reinstall and overwrite any existing cache entry")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	registry := manager.NewRegistry(config.ManagersDir)
	names, err := selectManagers(registry, args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no managers configured in %s", config.ManagersDir)
	}

	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stderr, "[STASH] ", log.LstdFlags)
	}
	st := stash.New(stash.WithLogger(logger))

	// Each manager owns a disjoint cache subdirectory, so the flows are
	// independent and safe to run concurrently. One manager's failure is
	// reported without aborting its siblings.
	var g errgroup.Group
	for _, name := range names {
		name := name

		path, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		cfg, err := manager.Load(path)
		if err != nil {
			return err
		}
		cfg.CacheDirectory = config.CacheDir
		cfg.ForceRefresh = runForce || config.ForceRefresh

		g.Go(func() error {
			if err := st.Run(ctx, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", name, err)
				return err
			}
			fmt.Printf("✓ %s: dependencies ready\n", name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("one or more managers failed")
	}
	return nil
}

// selectManagers resolves the manager names to run: the arguments when
// given, otherwise every configured manager in stable order.
func selectManagers(registry *manager.Registry, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	available, err := registry.Available()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Init command: prepares the config directory, data layout, reference
// database, and the bootstrap admin account.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/internal/reference"
	"github.com/fireline-tools/fireline/internal/users"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize fireline storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir()
			if err != nil {
				fail(exitSysError, "init", err)
			}
			if err := ensureConfigDir(configDir); err != nil {
				fail(exitSysError, "init", err)
			}
			if err := ensureDefaultConfigFile(configDir); err != nil {
				fail(exitSysError, "init", err)
			}

			// Opening the stores creates the data directory layout.
			if _, err := openReportStore(); err != nil {
				fail(exitSysError, "init", err)
			}
			userStore, err := openUserStore()
			if err != nil {
				fail(exitSysError, "init", err)
			}
			created, err := userStore.EnsureAdmin()
			if err != nil {
				fail(exitSysError, "init", err)
			}

			refDB, err := referenceDBPath()
			if err != nil {
				fail(exitSysError, "init", err)
			}
			if err := reference.Seed(refDB); err != nil {
				fail(exitSysError, "init", err)
			}

			dataDir, err := resolveDataDir()
			if err != nil {
				fail(exitSysError, "init", err)
			}

			fmt.Println("Fireline initialized successfully")
			fmt.Println("  config:   ", configDir)
			fmt.Println("  data:     ", dataDir)
			fmt.Println("  reference:", refDB)
			if created {
				fmt.Printf("Bootstrap admin %s created; change its password with 'fireline users passwd'.\n", users.DefaultAdminOEC)
			}
			return nil
		},
	}
}

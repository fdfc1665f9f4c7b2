// Package cli implements the fireline command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/internal/logger"
	"github.com/fireline-tools/fireline/internal/paths"
	"github.com/fireline-tools/fireline/pkg/fireline"
	"github.com/fireline-tools/fireline/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// cfg holds the values loaded from config.yaml in PersistentPreRunE so
// every subcommand can use them without re-reading the file.
var cfg types.Config

// NewRootCmd creates the top-level "fireline" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "fireline",
		Short:   "Record management for fire investigators",
		Long:    "Fireline manages incident report documents, investigator accounts,\nand the built-in reference tables used during fire investigation.",
		Version: fireline.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(flags.verbose)

			configDir, err := resolveConfigDir()
			if err != nil {
				return err
			}
			v, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			cfg = types.Config{
				DataDir:     v.GetString(cfgKeyDataDir),
				ReferenceDB: v.GetString(cfgKeyReferenceDB),
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.fireline-data)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "verbose logging to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newUsersCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// resolveDataDir returns the data directory following the precedence
// chain flag > config.yaml > env > CWD-relative default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flags.dataDir, cfg.DataDir)
}

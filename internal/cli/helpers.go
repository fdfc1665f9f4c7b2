// Shared helpers for fireline CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fireline-tools/fireline/internal/paths"
	"github.com/fireline-tools/fireline/internal/report"
	"github.com/fireline-tools/fireline/internal/users"
)

// openReportStore resolves the data directory and opens the report store
// under it.
func openReportStore() (*report.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := report.NewStore(paths.ReportsDir(dataDir))
	if err != nil {
		return nil, fmt.Errorf("open report store: %w", err)
	}
	return store, nil
}

// openUserStore resolves the data directory and opens the credential
// store under it.
func openUserStore() (*users.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := users.NewStore(paths.UsersFile(dataDir))
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return store, nil
}

// referenceDBPath resolves the reference database location, honoring the
// config.yaml override.
func referenceDBPath() (string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return paths.ReferenceDB(dataDir, cfg.ReferenceDB), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// fail prints the error and exits with the given code.
func fail(code int, prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(code)
}

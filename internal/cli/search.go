package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fireline-tools/fireline/internal/reference"
)

func newSearchCmd() *cobra.Command {
	var (
		table  string
		column string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the reference tables",
		Long: `Search filters a reference table by a diacritics- and case-insensitive
substring match. With --column the query is restricted to that column;
an unknown column falls back to searching every column. Without a query
the whole table is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			dbPath, err := referenceDBPath()
			if err != nil {
				fail(exitSysError, "search", err)
			}
			tbl, err := reference.Load(dbPath, table)
			if err != nil {
				fail(exitUserError, "search", err)
			}
			got := reference.Filter(tbl, query, column)
			if flags.jsonMode {
				return printJSON(got)
			}
			fmt.Println(strings.Join(got.Columns, "\t"))
			for _, row := range got.Rows {
				cells := make([]string, len(got.Columns))
				for i, c := range got.Columns {
					cells[i] = row[c]
				}
				fmt.Println(strings.Join(cells, "\t"))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", reference.TableMaterials,
		fmt.Sprintf("reference table to search (%s)", strings.Join(reference.TableNames, ", ")))
	cmd.Flags().StringVarP(&column, "column", "c", "", "restrict the match to one column")
	return cmd
}

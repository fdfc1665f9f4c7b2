// Command fireline is the record-management tool for fire cause
// investigators: incident reports, reference tables, and accounts.
package main

import "github.com/fireline-tools/fireline/internal/cli"

func main() {
	cli.Execute()
}

// Command statistics computes descriptive statistics for every numeric text
// file in a directory and writes them as a table.
package main

import (
	"os"

	"txtcli/internal/app"
	"txtcli/internal/batch"
)

func main() {
	os.Exit(app.Main(batch.JobStatistics, os.Args[1:], os.Stdout, os.Stderr))
}

// Command wordcount reports per-file word frequencies for a directory of
// text files.
package main

import (
	"os"

	"txtcli/internal/app"
	"txtcli/internal/batch"
)

func main() {
	os.Exit(app.Main(batch.JobWordCount, os.Args[1:], os.Stdout, os.Stderr))
}

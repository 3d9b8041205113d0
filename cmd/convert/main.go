// Command convert prints the signed binary and hexadecimal form of every
// integer found in the text files of a directory.
package main

import (
	"os"

	"txtcli/internal/app"
	"txtcli/internal/batch"
)

func main() {
	os.Exit(app.Main(batch.JobConversion, os.Args[1:], os.Stdout, os.Stderr))
}

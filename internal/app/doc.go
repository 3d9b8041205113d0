// Package app provides initialization and lifecycle management for the
// batch utilities.
//
// # Initialization Flow
//
//	1. Load configuration from .env, the YAML file and the environment
//	2. Initialize logging and observability
//	3. Resolve the utility's input and output paths
//	4. Run the utility through the batch runner
//	5. Flush metrics and traces, close the log file
//
// # Usage
//
// Each command is a thin wrapper:
//
//	func main() {
//	    os.Exit(app.Main(batch.JobStatistics, os.Args[1:], os.Stdout, os.Stderr))
//	}
//
// # Error Handling
//
// Main never calls os.Exit itself. A missing input directory prints
// "Invalid folder path: <dir>" on stderr and yields exit code 1, as does
// any other fatal error. SIGINT and SIGTERM cancel the run between files.
package app

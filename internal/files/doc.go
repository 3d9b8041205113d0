// Package files provides input discovery, line reading and report file
// creation for the batch utilities.
//
// Discovery lists the input files of a directory in name order. ReadLines
// loads one file into memory as lines. Manager creates output files relative
// to the base directory of the run.
//
// Example usage:
//
//	discovery := files.NewDiscovery(paths.BaseDir)
//	inputs, err := discovery.FindFiles(paths.InputDir, paths.Extension)
//
//	for _, in := range inputs {
//	    lines, err := files.ReadLines(in.Path)
//	    ...
//	}
package files

// Package errors defines the error taxonomy shared by the batch utilities.
//
// Every failure surfaced by the utilities is an *AppError carrying one of:
//
//	INPUT_UNAVAILABLE  the input directory is missing (fatal to the run)
//	FILE_UNREADABLE    a single input file could not be read (file skipped)
//	LINE_UNPARSEABLE   a line is not a number of the expected kind (line skipped)
//	EMPTY_RESULT       a file produced no usable values (no record emitted)
//	OUTPUT             the results file could not be written (fatal)
//	CONFIG             configuration could not be loaded or validated (fatal)
//
// Use Fatal to decide whether a run has to stop, and TypeOf/IsType to
// classify wrapped errors.
package errors

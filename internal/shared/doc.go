// Package shared holds helpers used across the txtcli packages.
//
// The testutil subpackage provides:
//
//   - a buffered slog handler with assertions on captured records
//   - input directory fixtures for batch tests
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, handler := testutil.NewTestLogger(t)
//	    dir := testutil.WriteInputDir(t, t.TempDir(), "P1", map[string]string{"a.txt": "1\n2\n"})
//	    ...
//	    testutil.AssertLogContains(t, handler, slog.LevelWarn, "Skipping line")
//	}
package shared

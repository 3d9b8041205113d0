package testutil

import (
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures records and attributes", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("Batch run completed", slog.String("job", "statistics"))
		logger.Warn("Skipping line", slog.Int("line", 3))

		records := handler.GetRecords()
		require.Len(t, records, 2)
		assert.Equal(t, "Batch run completed", records[0].Message)
		assert.Equal(t, int64(3), records[1].Attrs["line"])

		assert.True(t, handler.ContainsMessage("run completed"))
		assert.True(t, handler.ContainsAttr("job", "statistics"))
		assert.False(t, handler.ContainsAttr("job", "wordcount"))
	})

	t.Run("filters and counts", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("Reading file")
		logger.Warn("Skipping line")
		logger.Warn("Skipping line")
		logger.Warn("Skipping file")
		logger.Error("Batch run failed")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelWarn), 3)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
		assert.Equal(t, 2, handler.CountMessage("Skipping line"))
		assert.Equal(t, 3, handler.CountMessage("Skipping"))
		assert.Equal(t, 0, handler.CountMessage("Results written"))
	})

	t.Run("clear", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("first")
		logger.Info("second")
		require.Equal(t, 2, handler.Count())

		handler.Clear()
		assert.Equal(t, 0, handler.Count())
		assert.False(t, handler.ContainsMessage("first"))
	})

	t.Run("assertion helpers", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("Utility starting", slog.String("utility", "convert"))
		logger.Warn("Skipping file", slog.String("file", "a.txt"))

		AssertLogContains(t, handler, slog.LevelInfo, "starting")
		AssertLogContains(t, handler, slog.LevelWarn, "Skipping file")
		AssertLogAttr(t, handler, "utility", "convert")
		AssertNoErrors(t, handler)
	})

	t.Run("concurrent logging", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				logger.Info("Processing file", slog.Int("index", n))
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 10, handler.Count())
	})

	t.Run("derived loggers share the buffer", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With(slog.String("component", "batch")).Info("derived", slog.String("job", "wordcount"))

		assert.Equal(t, 1, handler.Count())
		assert.True(t, handler.ContainsAttr("component", "batch"))
		assert.True(t, handler.ContainsAttr("job", "wordcount"))
	})
}

func TestFixtures(t *testing.T) {
	base := t.TempDir()

	dir := WriteInputDir(t, base, "P3", map[string]string{
		"a.txt": "hello world\n",
		"b.md":  "# notes\n",
	})

	assert.Equal(t, filepath.Join(base, "P3"), dir)
	assert.Equal(t, "hello world\n", ReadFile(t, filepath.Join(dir, "a.txt")))
	assert.Equal(t, "# notes\n", ReadFile(t, filepath.Join(dir, "b.md")))
}

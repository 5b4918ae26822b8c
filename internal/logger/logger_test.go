package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFallsBackWhenOutputCannotBeOpened(t *testing.T) {
	// A regular file cannot be used as a log directory.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Init(Config{
		Level:  "debug",
		Output: filepath.Join(blocker, "logs", "app.log"),
	})
	assert.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithTagsComponent(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	var buf bytes.Buffer
	logger = zerolog.New(&buf)

	l := With("stubapi")
	l.Info().Msg("listening")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "stubapi", line["component"])
	assert.Equal(t, "listening", line["message"])
}

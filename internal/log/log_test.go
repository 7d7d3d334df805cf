package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLevels(t *testing.T) {
	require.NoError(t, Init(false, ""))
	assert.False(t, GetZapLogger().Core().Enabled(zapcore.DebugLevel), "DEBUG should be off in production mode")
	assert.True(t, GetZapLogger().Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, Init(true, ""))
	assert.True(t, GetZapLogger().Core().Enabled(zapcore.DebugLevel), "DEBUG should be on in debug mode")
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irrigationdash.log")
	require.NoError(t, Init(false, path))

	LogHTTPRequest(HTTPLogEntry{
		RequestID: "abc",
		Method:    "GET",
		Path:      "/api/view",
		Query:     "season=Verão",
		Status:    200,
		Duration:  3 * time.Millisecond,
		Size:      512,
	})
	Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, `"request_id":"abc"`), out)
	assert.True(t, strings.Contains(out, `"path":"/api/view"`), out)
}

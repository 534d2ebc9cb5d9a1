package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error"}

	for _, env := range []string{"production", "development"} {
		for _, lvl := range levels {
			t.Run(env+"/"+lvl, func(t *testing.T) {
				err := Initialize(lvl, env)
				assert.NoError(t, err, "expected no error for level %s", lvl)
				assert.IsType(t, &zap.SugaredLogger{}, Log)

				assert.NotPanics(t, func() {
					Log.Debugw("test log", "level", lvl)
				})
			})
		}
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", "production")
	assert.Error(t, err)
	assert.Equal(t, originalLog, Log, "failed initialization must keep the previous logger")
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}

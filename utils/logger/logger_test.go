package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		lg, err := NewLogger(env)
		require.NoError(t, err, env)
		assert.NotNil(t, lg)
	}
	lg, _ := NewLogger("production")
	assert.False(t, lg.Core().Enabled(zap.DebugLevel))
	lg, _ = NewLogger("development")
	assert.True(t, lg.Core().Enabled(zap.DebugLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	lg := zap.NewExample()
	assert.Same(t, lg, OrNop(lg))
}

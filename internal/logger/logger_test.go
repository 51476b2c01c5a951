package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_IsNop(t *testing.T) {
	l := New()
	require.NotNil(t, l.Log)
	assert.False(t, l.Log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
		enabled zapcore.Level
	}{
		{name: "info", level: "Info", enabled: zapcore.InfoLevel},
		{name: "debug", level: "debug", enabled: zapcore.DebugLevel},
		{name: "bogus", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			err := l.Init(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Log.Core().Enabled(tt.enabled))
		})
	}
}

package telemetry

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewProfiler_Disabled(t *testing.T) {
	p, err := NewProfiler(ProfilerConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProfilerConfig
		wantErr string
	}{
		{"no server address", ProfilerConfig{Enabled: true, ApplicationName: "shopadmin-api"}, "server address"},
		{"no application name", ProfilerConfig{Enabled: true, ServerAddress: "http://localhost:4040"}, "application name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfiler(tt.cfg, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfileTypes(t *testing.T) {
	base := profileTypes(ProfilerConfig{})
	assert.Contains(t, base, pyroscope.ProfileCPU)
	assert.Contains(t, base, pyroscope.ProfileInuseSpace)
	assert.NotContains(t, base, pyroscope.ProfileMutexCount)
	assert.NotContains(t, base, pyroscope.ProfileBlockCount)

	all := profileTypes(ProfilerConfig{MutexProfileFraction: 5, BlockProfileRate: 5})
	assert.Contains(t, all, pyroscope.ProfileMutexDuration)
	assert.Contains(t, all, pyroscope.ProfileBlockDuration)
	assert.Len(t, all, len(base)+4)
}

package telemetry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// recordingExporter keeps exported records in memory
type recordingExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error   { return nil }
func (e *recordingExporter) ForceFlush(context.Context) error { return nil }

func (e *recordingExporter) bodies() map[string]otellog.Severity {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := map[string]otellog.Severity{}
	for _, r := range e.records {
		out[r.Body().AsString()] = r.Severity()
	}
	return out
}

func TestNewLoggerProvider_Disabled(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())

	base := zap.NewNop()
	assert.Same(t, base, lp.Tee(base, zapcore.InfoLevel))
	assert.False(t, lp.Core(zapcore.DebugLevel).Enabled(zapcore.ErrorLevel))
	assert.NoError(t, lp.ForceFlush(context.Background()))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestNewLoggerProvider_EnabledWithoutCollector(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           true,
		CollectorEndpoint: "localhost:19999",
		ServiceName:       "shopadmin-api",
		Insecure:          true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.True(t, lp.IsEnabled())
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_Tee(t *testing.T) {
	exporter := &recordingExporter{}
	lp, err := telemetry.NewLoggerProviderWithProcessor(sdklog.NewSimpleProcessor(exporter), "shopadmin-api", zaptest.NewLogger(t))
	require.NoError(t, err)
	defer lp.Shutdown(context.Background())

	stdoutCore, stdout := observer.New(zapcore.DebugLevel)
	log := lp.Tee(zap.New(stdoutCore), zapcore.InfoLevel)

	log.Debug("cache warmed")
	log.Info("payroll run finalized", zap.String("period", "2024-05"))
	log.Warn("expense receipt missing")
	require.NoError(t, lp.ForceFlush(context.Background()))

	assert.Equal(t, 3, stdout.Len(), "the local sink still sees every entry")

	exported := exporter.bodies()
	assert.NotContains(t, exported, "cache warmed", "entries below the export level stay local")
	assert.Equal(t, otellog.SeverityInfo, exported["payroll run finalized"])
	assert.Equal(t, otellog.SeverityWarn, exported["expense receipt missing"])
}

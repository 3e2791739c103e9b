package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   uint
	Name string
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))
	return db
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := telemetry.DefaultDBTracingConfig()
	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestDBTracingPlugin_Disabled(t *testing.T) {
	sr := setupTestTracer(t)
	db := newSQLiteDB(t)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{Enabled: false}, zaptest.NewLogger(t))
	require.NoError(t, plugin.Register(db))

	var rows []tracedRow
	require.NoError(t, db.WithContext(context.Background()).Find(&rows).Error)
	assert.Empty(t, sr.Ended())
}

func TestDBTracingPlugin_RecordsQuerySpans(t *testing.T) {
	sr := setupTestTracer(t)
	db := newSQLiteDB(t)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Nanosecond,
		DBSystem:        "sqlite",
	}, zaptest.NewLogger(t))
	require.NoError(t, plugin.Register(db))

	var rows []tracedRow
	require.NoError(t, db.WithContext(context.Background()).Find(&rows).Error)

	spans := sr.Ended()
	require.NotEmpty(t, spans)

	var slow bool
	for _, s := range spans {
		if v, ok := attrMap(s.Attributes())["db.slow_query"]; ok && v.AsBool() {
			slow = true
		}
	}
	assert.True(t, slow, "a 1ns threshold marks every query slow")
}

func TestDBTracingPlugin_DoubleRegistrationFails(t *testing.T) {
	setupTestTracer(t)
	db := newSQLiteDB(t)

	plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{Enabled: true}, zaptest.NewLogger(t))
	require.NoError(t, plugin.Register(db))
	assert.Error(t, plugin.Register(db))
}

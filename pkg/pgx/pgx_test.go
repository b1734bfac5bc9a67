package pgx

import (
	"testing"

	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Postgres.User = "scraper"
	cfg.Postgres.Pass = "secret"
	cfg.Postgres.Host = "db"
	cfg.Postgres.Port = 5432
	cfg.Postgres.Name = "ledger"
	cfg.Postgres.SslMode = "disable"
	cfg.Postgres.MaxConns = 8

	poolCfg, err := PoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(8), poolCfg.MaxConns)
	assert.Equal(t, "db", poolCfg.ConnConfig.Host)
	assert.Equal(t, "ledger", poolCfg.ConnConfig.Database)
	assert.Equal(t, healthCheckPeriod, poolCfg.HealthCheckPeriod)
}

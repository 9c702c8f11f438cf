package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"toyworks-orders/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"KAFKA_BROKERS", "KAFKA_GROUP_ID", "KAFKA_TOPIC",
		"ORDERS_OVERDUE_CHECK_INTERVAL",
		"PPROF_USER", "PPROF_PASS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "orders", cfg.DB.User)
	require.Equal(t, "orders", cfg.DB.Pass)
	require.Equal(t, "orders_db", cfg.DB.Name)

	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "toyworks-orders", cfg.Kafka.GroupID)
	require.Equal(t, time.Minute, cfg.Orders.OverdueCheckInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "service")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("KAFKA_TOPIC", "orders.events")
	t.Setenv("ORDERS_OVERDUE_CHECK_INTERVAL", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "postgres://u:p@db:15432/service?sslmode=disable", cfg.DB.DSN())
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "orders.events", cfg.Kafka.Topic)
	require.Equal(t, 30*time.Second, cfg.Orders.OverdueCheckInterval)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_InvalidInterval(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("ORDERS_OVERDUE_CHECK_INTERVAL", "soon")

	_, err := config.Load()
	require.Error(t, err)
}

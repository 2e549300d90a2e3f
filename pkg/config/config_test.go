package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "orders_topic", cfg.AMQP.Exchange)
	assert.Equal(t, "business_records", cfg.AMQP.Queue)
	assert.Equal(t, "order.finalized", cfg.AMQP.RoutingKey)
	assert.False(t, cfg.AMQP.Enabled())
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "MongoDB")
	v.Set("HTTP_PORT", "9090")
	v.Set("MONGO_TIMEOUT_SECONDS", "abc")
	v.Set("DB_AUTO_MIGRATE", "false")

	cfg := fromViper(v)

	assert.Equal(t, DriverMongoDB, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Mongo.TimeoutSeconds, "valor inválido cae al default")
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestValidate(t *testing.T) {
	cfg := fromViper(viper.New())
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWT.Secret = "s3cr3t"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Driver = "redis"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")

	cfg.Storage.Driver = DriverPostgres
	cfg.DB.MinConns, cfg.DB.MaxConns = 10, 5
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MIN_CONNS")
}

func TestDSN_EscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "barapp", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/barapp?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "mobilis", cfg.Warehouse.Dataset)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.GeminiModel)
	assert.Equal(t, 6, cfg.AI.MaxToolRounds)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_AliasBigQuery(t *testing.T) {
	v := viper.New()
	v.Set("BIGQUERY_PROJECT", "adk-demo")
	v.Set("BIGQUERY_DATASET", "furniture")
	v.Set("STORE_ID", "STORE_001")

	cfg := fromViper(v)
	assert.Equal(t, "adk-demo", cfg.Warehouse.Project)
	assert.Equal(t, "furniture", cfg.Warehouse.Dataset)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_WarehouseGanaSobreAlias(t *testing.T) {
	v := viper.New()
	v.Set("BIGQUERY_PROJECT", "viejo")
	v.Set("WAREHOUSE_PROJECT", "nuevo")

	cfg := fromViper(v)
	assert.Equal(t, "nuevo", cfg.Warehouse.Project)
}

func TestGetInt_StringInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("AGENT_MAX_TOOL_ROUNDS", "muchas")
	assert.Equal(t, 6, fromViper(v).AI.MaxToolRounds)

	v.Set("AGENT_MAX_TOOL_ROUNDS", "3")
	assert.Equal(t, 3, fromViper(v).AI.MaxToolRounds)
}

func TestValidate_FaltanObligatorios(t *testing.T) {
	cfg := fromViper(viper.New())
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAREHOUSE_PROJECT")
	assert.Contains(t, err.Error(), "STORE_ID")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "warehouse", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/warehouse?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestFromViper_DBNameUsaElProyecto(t *testing.T) {
	v := viper.New()
	v.Set("BIGQUERY_PROJECT", "adk-demo")
	assert.Equal(t, "adk-demo", fromViper(v).DB.DBName)

	v.Set("DB_NAME", "otra")
	assert.Equal(t, "otra", fromViper(v).DB.DBName)

	assert.Equal(t, "warehouse", fromViper(viper.New()).DB.DBName)
}

func TestValidate_DBNameDistintoDelProyecto(t *testing.T) {
	v := viper.New()
	v.Set("WAREHOUSE_PROJECT", "adk-demo")
	v.Set("DB_NAME", "warehouse")
	v.Set("STORE_ID", "STORE_001")

	err := fromViper(v).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no coincide")

	v.Set("DATABASE_URL", "postgres://u:p@db:5432/adk-demo")
	require.NoError(t, fromViper(v).Validate())
}

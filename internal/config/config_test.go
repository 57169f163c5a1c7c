package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func envFrom(vals map[string]string) func(string) string {
	return func(key string) string { return vals[key] }
}

func TestLoad_HappyPath(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvTableName: "movie-awards",
		EnvRegion:    "eu-west-1",
	}))
	require.NoError(t, err)
	require.Equal(t, Config{TableName: "movie-awards", Region: "eu-west-1", LogLevel: "info"}, cfg)
}

func TestLoad_FallsBackToAWSRegion(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvTableName: "movie-awards",
		EnvAWSRegion: "us-east-1",
	}))
	require.NoError(t, err)
	require.Equal(t, "us-east-1", cfg.Region)
}

func TestLoad_RegionPreferredOverAWSRegion(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvTableName: "movie-awards",
		EnvRegion:    "eu-west-1",
		EnvAWSRegion: "us-east-1",
	}))
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoad_TableParamAlone(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvTableParam: "/movie-awards/table-name",
		EnvRegion:     "eu-west-1",
	}))
	require.NoError(t, err)
	require.Empty(t, cfg.TableName)
	require.Equal(t, "/movie-awards/table-name", cfg.TableParam)
}

func TestLoad_MissingTable(t *testing.T) {
	_, err := Load(envFrom(map[string]string{EnvRegion: "eu-west-1"}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "TableName")
}

func TestLoad_MissingRegion(t *testing.T) {
	_, err := Load(envFrom(map[string]string{EnvTableName: "movie-awards"}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Region")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	_, err := Load(envFrom(map[string]string{
		EnvTableName: "movie-awards",
		EnvRegion:    "eu-west-1",
		EnvLogLevel:  "verbose",
	}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "LogLevel")
}

func TestLoad_NilGetenv(t *testing.T) {
	_, err := Load(nil)
	require.Error(t, err)
}

func TestNewLogger_DefaultsToInfo(t *testing.T) {
	logger := Config{}.NewLogger(&bytes.Buffer{})
	require.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn"}.NewLogger(&buf)
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, logger.Enabled(context.Background(), slog.LevelWarn))

	logger.Warn("low capacity", "table", "movie-awards")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "low capacity", line["msg"])
	require.Equal(t, "movie-awards", line["table"])
}

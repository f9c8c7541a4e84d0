package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RajFruit/Hospital-Managment-System/pkg/config"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "hospital",
		Password: "secret",
		Name:     "hospital",
		SSLMode:  "require",
	}

	dsn := connectionString(cfg)

	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=hospital")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "password=secret")
	assert.Contains(t, dsn, "connect_timeout=10")
}

func TestConnectionStringBlankPassword(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "hospital",
		Name:    "hospital",
		SSLMode: "disable",
	}

	assert.NotContains(t, connectionString(cfg), "password=")
}

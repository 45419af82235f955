package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConnectAttempts(t *testing.T) {
	assert.Equal(t, 5, DBConnectAttempts())

	t.Setenv("DB_CONNECT_ATTEMPTS", "12")
	assert.Equal(t, 12, DBConnectAttempts())

	t.Setenv("DB_CONNECT_ATTEMPTS", "not-a-number")
	assert.Equal(t, 5, DBConnectAttempts())
}

func TestCORSDebug(t *testing.T) {
	assert.False(t, CORSDebug())

	t.Setenv("CORS_DEBUG", "true")
	assert.True(t, CORSDebug())

	t.Setenv("CORS_DEBUG", "0")
	assert.False(t, CORSDebug())

	t.Setenv("CORS_DEBUG", "maybe")
	assert.False(t, CORSDebug())
}

func TestPortDefault(t *testing.T) {
	assert.Equal(t, "8080", Port())

	t.Setenv("PORT", "9090")
	assert.Equal(t, "9090", Port())
}

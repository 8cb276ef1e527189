package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_PATH", "JWT_SECRET", "GIN_MODE"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	require.NoError(t, Load())
	assert.Equal(t, "8080", C.Port)
	assert.Equal(t, "superapp.db", C.DatabasePath)
	assert.Equal(t, "debug", C.GinMode)
	assert.NotEmpty(t, JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test_secret")

	require.NoError(t, Load())
	assert.Equal(t, "9090", C.Port)
	assert.Equal(t, []byte("test_secret"), JWTSecret)
}

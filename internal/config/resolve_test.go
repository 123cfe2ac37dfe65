package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseAddress(t *testing.T) {
	tests := []struct {
		name     string
		override string
		mode     string
		want     string
	}{
		{"override wins in production", "https://board.example.com/api", "production", "https://board.example.com/api"},
		{"override wins in development", "http://10.0.0.5:9000/api", "development", "http://10.0.0.5:9000/api"},
		{"override trimmed", "  /custom  ", "development", "/custom"},
		{"blank override ignored", "   ", "production", "/api"},
		{"production", "", "production", "/api"},
		{"production any case", "", "Production", "/api"},
		{"development", "", "development", "http://localhost:8080/api"},
		{"unknown mode", "", "test", "http://localhost:8080/api"},
		{"no mode", "", "", "http://localhost:8080/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseAddress(tt.override, tt.mode))
		})
	}
}

func TestAbsoluteBase(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		origin  string
		want    string
		wantErr bool
	}{
		{"relative joined", "/api", "http://localhost", "http://localhost/api", false},
		{"relative with port", "/api", "http://localhost:3000", "http://localhost:3000/api", false},
		{"absolute untouched", "http://localhost:8080/api", "http://ignored", "http://localhost:8080/api", false},
		{"trailing slash trimmed", "https://x.example/api/", "", "https://x.example/api", false},
		{"relative needs origin", "/api", "", "", true},
		{"bad scheme", "ftp://x/api", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AbsoluteBase(tt.base, tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MSGBOARD_API_URL", "")
		t.Setenv("MSGBOARD_ENV", "")
		t.Setenv("MSGBOARD_ORIGIN", "")
		t.Setenv("MSGBOARD_LOG_LEVEL", "")
		os.Unsetenv("MSGBOARD_ORIGIN")
		os.Unsetenv("MSGBOARD_LOG_LEVEL")

		e, err := LoadEnvironment("")
		require.NoError(t, err)
		assert.Equal(t, "", e.APIURL)
		assert.Equal(t, "http://localhost", e.Origin)
		assert.Equal(t, "info", e.LogLevel)
		assert.Equal(t, "development", e.EffectiveMode(""))
		assert.Equal(t, "production", e.EffectiveMode("production"))
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("MSGBOARD_API_URL", "http://api.internal/api")
		t.Setenv("MSGBOARD_ENV", "PRODUCTION")
		t.Setenv("MSGBOARD_LOG_LEVEL", "debug")

		e, err := LoadEnvironment("")
		require.NoError(t, err)
		assert.Equal(t, "http://api.internal/api", e.APIURL)
		assert.Equal(t, "production", e.EffectiveMode("development"))
		assert.Equal(t, "debug", e.LogLevel)
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		t.Setenv("MSGBOARD_ENV", "staging")
		_, err := LoadEnvironment("")
		assert.Error(t, err)
	})

	t.Run("dotenv file does not override process env", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MSGBOARD_API_URL=http://from-file/api\nMSGBOARD_ENV=production\n"), 0o600))

		t.Setenv("MSGBOARD_API_URL", "http://from-process/api")
		t.Setenv("MSGBOARD_ENV", "")
		os.Unsetenv("MSGBOARD_ENV")

		e, err := LoadEnvironment(path)
		require.NoError(t, err)
		assert.Equal(t, "http://from-process/api", e.APIURL)
		assert.Equal(t, "production", e.Mode)
		os.Unsetenv("MSGBOARD_ENV")
	})

	t.Run("missing dotenv is fine", func(t *testing.T) {
		t.Setenv("MSGBOARD_ENV", "")
		_, err := LoadEnvironment(filepath.Join(t.TempDir(), "nope.env"))
		assert.NoError(t, err)
	})
}

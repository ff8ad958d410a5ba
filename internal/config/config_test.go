package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("BCRYPT_COST", "")

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "", c.DatabaseURL)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "debug", c.GinMode)
	assert.Equal(t, []string{"http://localhost:3000"}, c.CORSAllowedOrigins)
	assert.Equal(t, bcrypt.DefaultCost, c.BcryptCost)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/recipes?sslmode=disable")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("BCRYPT_COST", "12")

	c := Load()

	assert.Equal(t, "postgres://u:p@localhost:5432/recipes?sslmode=disable", c.DatabaseURL)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSAllowedOrigins)
	assert.Equal(t, 12, c.BcryptCost)
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("BCRYPT_COST", "lots")

	assert.Equal(t, bcrypt.DefaultCost, Load().BcryptCost)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DatabaseURL:        "postgres://localhost/recipes",
			Port:               "8080",
			GinMode:            "debug",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
			BcryptCost:         bcrypt.DefaultCost,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "no database", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "DATABASE_URL"},
		{name: "no port", mutate: func(c *Config) { c.Port = "" }, wantErr: "PORT"},
		{name: "cost too low", mutate: func(c *Config) { c.BcryptCost = bcrypt.MinCost - 1 }, wantErr: "BCRYPT_COST"},
		{name: "cost too high", mutate: func(c *Config) { c.BcryptCost = bcrypt.MaxCost + 1 }, wantErr: "BCRYPT_COST"},
		{name: "no origins", mutate: func(c *Config) { c.CORSAllowedOrigins = nil }, wantErr: "CORS_ALLOWED_ORIGINS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

package app

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/fnvhash/src/pkg/assert"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type envVars struct {
	Environment string `envconfig:"FNVSUM_ENVIRONMENT" default:"prod"`
	Algorithm   string `envconfig:"FNVSUM_ALGORITHM"   default:"fnv1a-64"`
	Workers     int    `envconfig:"FNVSUM_WORKERS"     default:"0"`
}

// mustLoadEnv reads configPath (when given) into the process environment
// and parses the FNVSUM_* variables. A broken environment is a deployment
// bug, so it panics rather than returning.
func mustLoadEnv(configPath string) envVars {
	if configPath != "" {
		assert.NoError(godotenv.Load(configPath))
	} else {
		// Optional .env next to the binary; absence is fine.
		_ = godotenv.Load()
	}

	env := envVars{}
	assert.NoError(envconfig.Process("", &env))

	return env
}

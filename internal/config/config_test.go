package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init(nil)

	assert.Equal(t, "http://localhost:8080/api/v1", APIURL())
	assert.Equal(t, 10*time.Second, APITimeout())
	assert.Equal(t, TransportStdio, Transport())
	assert.Equal(t, 8000, Port())
	assert.Equal(t, "info", LogLevel())
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ILP_MAINTENANCE_API_URL", "example.com:9000/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("TRANSPORT", " HTTP ")
	Init(nil)

	assert.Equal(t, "example.com:9000/", APIURL())
	assert.Equal(t, 3*time.Second, APITimeout())
	assert.Equal(t, TransportHTTP, Transport())
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("API_TIMEOUT", "soon")
	Init(nil)

	assert.Equal(t, 10*time.Second, APITimeout())
}

func TestFlagsBindToKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("ilp-maintenance-api-url", "", "")
	root.PersistentFlags().String("log-level", "", "")
	Init(root)

	assert.NoError(t, root.PersistentFlags().Set("ilp-maintenance-api-url", "https://api.example.com/v1"))
	assert.NoError(t, root.PersistentFlags().Set("log-level", "debug"))
	assert.Equal(t, "https://api.example.com/v1", APIURL())
	assert.Equal(t, "debug", LogLevel())
}

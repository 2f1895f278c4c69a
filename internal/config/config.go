package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(envFile())
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, "http://localhost:8080/api/v1")
	viper.SetDefault(KeyAPITimeout, "10s")
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyLogLevel, "info")
}

// envFile names the dotenv file; it can only come from the process
// environment since the file itself is not loaded yet.
func envFile() string {
	if v := strings.TrimSpace(viper.GetString(KeyEnvFile)); v != "" {
		return v
	}
	return ".env"
}

func APIURL() string    { return viper.GetString(KeyAPIURL) }
func Transport() string { return strings.ToLower(strings.TrimSpace(viper.GetString(KeyTransport))) }
func Host() string      { return viper.GetString(KeyHost) }
func Port() int         { return viper.GetInt(KeyPort) }
func LogLevel() string  { return viper.GetString(KeyLogLevel) }

// APITimeout returns the per-call backend timeout, falling back to 10s when
// the configured value is blank, unparsable or not positive.
func APITimeout() time.Duration {
	d, err := parseDuration(viper.GetString(KeyAPITimeout), 10*time.Second)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return time.ParseDuration(trimmed)
}

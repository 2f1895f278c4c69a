package config

const (
	KeyAPIURL     = "ilp_maintenance_api_url"
	KeyAPITimeout = "api_timeout"
	KeyTransport  = "transport"
	KeyHost       = "host"
	KeyPort       = "port"
	KeyLogLevel   = "log_level"
	KeyEnvFile    = "env_file"
)

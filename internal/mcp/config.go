package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/ilp-maintenance-mcp/internal/config"
	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
	"github.com/roivaz/ilp-maintenance-mcp/internal/mcp/tools"
)

const DefaultEndpointPath = "/mcp/jsonrpc"

type Config struct {
	Tools        Catalogue
	Options      []server.StreamableHTTPOption
	EndpointPath string
	BackendURL   string
	Logger       logging.Logger
}

// DefaultConfig wires the maintenance API client and tool registry from the
// loaded configuration.
func DefaultConfig(log logging.Logger) Config {
	client := maintenance.NewClient(maintenance.Config{
		BaseURL: config.APIURL(),
		Timeout: config.APITimeout(),
		Logger:  log,
	})
	log.Info("maintenance API configured", "baseURL", client.BaseURL(), "timeout", config.APITimeout())

	return Config{
		Tools:        tools.NewRegistry(client, log),
		EndpointPath: DefaultEndpointPath,
		BackendURL:   client.BaseURL(),
		Logger:       log,
	}
}

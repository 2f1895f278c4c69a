package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
)

const (
	ServerName    = "ilp-maintenance"
	ServerVersion = "1.0.0"
)

// Catalogue lists the tools to register and handles their invocations.
type Catalogue interface {
	Tools() []mcp.Tool
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	log     logging.Logger
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, tool := range cfg.Tools.Tools() {
		mcpServer.AddTool(tool, cfg.Tools.ToolAdapter)
		log.Debug("registered tool", "name", tool.Name)
	}

	endpoint := cfg.EndpointPath
	if endpoint == "" {
		endpoint = DefaultEndpointPath
	}
	opts := append([]server.StreamableHTTPOption{
		server.WithEndpointPath(endpoint),
		server.WithStateLess(true),
	}, cfg.Options...)
	httpServer := server.NewStreamableHTTPServer(mcpServer, opts...)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"server":  ServerName,
			"backend": cfg.BackendURL,
		})
	})
	router.Handle(endpoint, httpServer)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: router,
		log:     log,
	}
}

// ServeStdio speaks MCP over stdin/stdout until ctx is done or stdin closes.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return server.NewStdioServer(s.MCP).Listen(ctx, os.Stdin, os.Stdout)
}

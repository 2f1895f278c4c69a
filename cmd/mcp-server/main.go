package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/ilp-maintenance-mcp/internal/config"
	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
	"github.com/roivaz/ilp-maintenance-mcp/internal/mcp"
	"github.com/roivaz/ilp-maintenance-mcp/internal/mcp/tools"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "ILP maintenance intelligence MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("ilp-maintenance-api-url", "", "Maintenance API base URL (default http://localhost:8080/api/v1)")
	root.PersistentFlags().String("api-timeout", "10s", "Timeout for each maintenance API call")
	root.PersistentFlags().String("transport", config.TransportStdio, "MCP transport: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(toolsCmd())

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("mcp-server: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.LevelLogger(config.LogLevel()))
	srv := mcp.New(mcp.DefaultConfig(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch transport := config.Transport(); transport {
	case config.TransportStdio:
		return srv.ServeStdio(ctx)
	case config.TransportHTTP:
		return serveHTTP(ctx, srv, logger)
	default:
		return fmt.Errorf("unsupported transport %q (want %s or %s)", transport, config.TransportStdio, config.TransportHTTP)
	}
}

func serveHTTP(ctx context.Context, srv *mcp.Server, logger logging.Logger) error {
	addr := net.JoinHostPort(config.Host(), strconv.Itoa(config.Port()))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("MCP server listening", "addr", addr, "endpoint", mcp.DefaultEndpointPath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func toolsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalogue(cmd.OutOrStdout(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

func printCatalogue(w io.Writer, format string) error {
	defs := tools.Definitions()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	case "yaml":
		out, err := yaml.Marshal(defs)
		if err != nil {
			return fmt.Errorf("marshal catalogue: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported output %q (want yaml or json)", format)
	}
}

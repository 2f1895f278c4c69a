package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

// Backend performs one call against the maintenance API.
type Backend interface {
	Do(ctx context.Context, req maintenance.Request) (gjson.Result, error)
}

// Handler describes one tool: its schema, how an invocation becomes a backend
// request and how the response is rendered.
type Handler interface {
	Definition() mcp.Tool
	BuildRequest(args map[string]any) (maintenance.Request, error)
	Render(args map[string]any, resp gjson.Result) string
}

// notFoundRenderer is implemented by handlers that treat a 404 as data.
type notFoundRenderer interface {
	RenderNotFound(args map[string]any) string
}

// Catalogue returns the tool handlers in listing order.
func Catalogue() []Handler {
	return []Handler{
		FleetSummaryHandler{},
		DroneMaintenanceHandler{},
		HighRiskDronesHandler{},
		LogMaintenanceEventHandler{},
		PlanMaintenanceBatchHandler{},
	}
}

// Definitions returns the schema of every catalogue tool.
func Definitions() []mcp.Tool {
	handlers := Catalogue()
	defs := make([]mcp.Tool, 0, len(handlers))
	for _, h := range handlers {
		defs = append(defs, h.Definition())
	}
	return defs
}

// BuildRequest maps an invocation to its backend request without performing it.
func BuildRequest(name string, args map[string]any) (maintenance.Request, error) {
	for _, h := range Catalogue() {
		if h.Definition().Name == name {
			return h.BuildRequest(args)
		}
	}
	return maintenance.Request{}, &UnknownToolError{Name: name}
}

// Registry dispatches tool invocations to the backend. It keeps no state
// between calls.
type Registry struct {
	backend  Backend
	handlers map[string]Handler
	tools    []mcp.Tool
	log      logging.Logger
}

func NewRegistry(backend Backend, log logging.Logger) *Registry {
	r := &Registry{
		backend:  backend,
		handlers: map[string]Handler{},
		log:      log.WithName("tools"),
	}
	for _, h := range Catalogue() {
		def := h.Definition()
		r.handlers[def.Name] = h
		r.tools = append(r.tools, def)
	}
	return r
}

func (r *Registry) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Call runs one invocation and always yields a single text segment. Failures,
// including panics, come back as error results rather than Go errors.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	id := uuid.NewString()
	log := r.log.WithValues("tool", name, "invocation", id)

	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("tool %s panicked: %v", name, p)
			log.Error(err, "tool invocation panicked")
			result = mcp.NewToolResultError(ErrorText(err))
		}
	}()

	log.Debug("tool invoked", "arguments", args)
	out, err := r.invoke(maintenance.WithRequestID(ctx, id), name, args)
	if err != nil {
		log.Error(err, "tool invocation failed")
		return mcp.NewToolResultError(ErrorText(err))
	}
	log.Debug("tool completed", "bytes", len(out))
	return mcp.NewToolResultText(out)
}

func (r *Registry) invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	h, ok := r.handlers[name]
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	req, err := h.BuildRequest(args)
	if err != nil {
		return "", err
	}
	resp, err := r.backend.Do(ctx, req)
	if err != nil {
		if nf, ok := h.(notFoundRenderer); ok && maintenance.IsNotFound(err) {
			return nf.RenderNotFound(args), nil
		}
		return "", err
	}
	return h.Render(args, resp), nil
}

// ToolAdapter bridges mcp-go tool calls to Call.
func (r *Registry) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return r.Call(ctx, req.Params.Name, req.GetArguments()), nil
}

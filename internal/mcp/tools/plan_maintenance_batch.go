package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

const ToolPlanMaintenanceBatch = "plan_maintenance_batch"

type PlanMaintenanceBatchHandler struct{}

type planBatchArgs struct {
	DroneIDs            *[]string `mapstructure:"droneIds"`
	IncludeFleetInsight *bool     `mapstructure:"includeFleetInsight"`
}

func (PlanMaintenanceBatchHandler) Definition() mcp.Tool {
	return mcp.NewTool(ToolPlanMaintenanceBatch,
		mcp.WithDescription("Get maintenance plans for multiple drones at once. Can optionally include new log entries."),
		mcp.WithArray("droneIds",
			mcp.Description("List of drone IDs to query (optional, queries all if omitted)"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("includeFleetInsight",
			mcp.Description("Whether to include fleet-level insight (default: true)"),
		),
	)
}

// BuildRequest sends a body only when at least one argument was supplied.
// Keys passed as null are forwarded as null.
func (PlanMaintenanceBatchHandler) BuildRequest(args map[string]any) (maintenance.Request, error) {
	var decoded planBatchArgs
	if err := decodeArgs(args, &decoded); err != nil {
		return maintenance.Request{}, err
	}
	body := maintenance.PlanRequest{
		DroneIDs:            passedThrough(args, "droneIds", decoded.DroneIDs),
		IncludeFleetInsight: passedThrough(args, "includeFleetInsight", decoded.IncludeFleetInsight),
	}
	if body.IsZero() {
		return maintenance.Post("/maintenance/plan", nil), nil
	}
	return maintenance.Post("/maintenance/plan", body), nil
}

func (PlanMaintenanceBatchHandler) Render(_ map[string]any, resp gjson.Result) string {
	plans := list(resp.Get("plans"))

	var b strings.Builder
	fmt.Fprintf(&b, "Maintenance Plans for %d drone(s):\n\n", len(plans))
	for _, plan := range plans {
		b.WriteString(planLine(plan))
		b.WriteString("\n")
	}

	insight := resp.Get("insight")
	if insight.Exists() && insight.Type != gjson.Null {
		b.WriteString("\nFleet Insight:\n")
		bullet(&b, "", "Average Risk: %s/100", number(insight.Get("averageRisk")))
		bullet(&b, "", "High Risk Count: %s", number(insight.Get("highRisk")))
		bullet(&b, "", "Readiness: %s%%", number(insight.Get("readinessPercent")))
	}
	return b.String()
}

package tools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

const (
	ToolFleetSummary = "get_fleet_summary"

	summaryPath = "/maintenance/summary"

	// fleetSummaryPlanLimit caps the per-drone lines shown in the summary.
	fleetSummaryPlanLimit = 5
)

type FleetSummaryHandler struct{}

func (FleetSummaryHandler) Definition() mcp.Tool {
	return mcp.NewTool(ToolFleetSummary,
		mcp.WithDescription("Get a summary of the entire drone fleet maintenance status, including average risk, high-risk count, and readiness percentage."),
	)
}

func (FleetSummaryHandler) BuildRequest(map[string]any) (maintenance.Request, error) {
	return maintenance.Get(summaryPath), nil
}

func (FleetSummaryHandler) Render(_ map[string]any, resp gjson.Result) string {
	insight := resp.Get("insight")
	plans := list(resp.Get("plans"))

	var b strings.Builder
	b.WriteString("Fleet Maintenance Summary:\n")
	bullet(&b, "", "Fleet Size: %s", number(insight.Get("fleetSize")))
	bullet(&b, "", "Average Risk Score: %s/100", number(insight.Get("averageRisk")))
	bullet(&b, "", "High Risk Drones: %s", number(insight.Get("highRisk")))
	bullet(&b, "", "Readiness: %s%%", number(insight.Get("readinessPercent")))
	b.WriteString("\nNarrative:\n")
	for _, line := range strs(insight.Get("narrative"), 0) {
		bullet(&b, "  ", "%s", line)
	}

	if len(plans) > 0 {
		b.WriteString("\nIndividual Drone Status:\n")
		if len(plans) > fleetSummaryPlanLimit {
			plans = plans[:fleetSummaryPlanLimit]
		}
		for _, plan := range plans {
			bullet(&b, "  ", "%s", planLine(plan))
		}
	}
	return b.String()
}

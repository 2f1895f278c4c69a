package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

const (
	ToolHighRiskDrones = "get_high_risk_drones"

	highRiskLevel       = "HIGH"
	fleetHealthyText    = "No high-risk drones found. Fleet is healthy."
	highRiskFactorLimit = 3
)

// HighRiskDronesHandler reads the fleet summary and keeps the HIGH plans.
type HighRiskDronesHandler struct{}

func (HighRiskDronesHandler) Definition() mcp.Tool {
	return mcp.NewTool(ToolHighRiskDrones,
		mcp.WithDescription("Get list of all drones with HIGH risk level that need immediate attention."),
	)
}

func (HighRiskDronesHandler) BuildRequest(map[string]any) (maintenance.Request, error) {
	return maintenance.Get(summaryPath), nil
}

func (HighRiskDronesHandler) Render(_ map[string]any, resp gjson.Result) string {
	var highRisk []gjson.Result
	for _, plan := range list(resp.Get("plans")) {
		if plan.Get("riskLevel").String() == highRiskLevel {
			highRisk = append(highRisk, plan)
		}
	}
	if len(highRisk) == 0 {
		return fleetHealthyText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d high-risk drone(s):\n\n", len(highRisk))
	for _, plan := range highRisk {
		fmt.Fprintf(&b, "Drone: %s\n", text(plan.Get("droneId"), notAvailable))
		fmt.Fprintf(&b, "  Risk Score: %s/100\n", number(plan.Get("riskScore")))
		fmt.Fprintf(&b, "  Hours Until Service: %s\n", number(plan.Get("hoursUntilService")))
		fmt.Fprintf(&b, "  Recommendation: %s\n", text(plan.Get("recommendation"), notAvailable))
		fmt.Fprintf(&b, "  Factors: %s\n\n", strings.Join(strs(plan.Get("contributingFactors"), highRiskFactorLimit), ", "))
	}
	return b.String()
}

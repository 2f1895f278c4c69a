package tools

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

const (
	ToolDroneMaintenance = "get_drone_maintenance"

	droneNotFoundFormat = "No maintenance record found for drone %s."
)

type DroneMaintenanceHandler struct{}

func (DroneMaintenanceHandler) Definition() mcp.Tool {
	return mcp.NewTool(ToolDroneMaintenance,
		mcp.WithDescription("Get detailed maintenance plan for a specific drone by ID. Returns risk score, risk level, hours until service, and recommendations."),
		mcp.WithString("droneId",
			mcp.Required(),
			mcp.Description("The drone ID (e.g., 'drn-101')"),
		),
	)
}

// BuildRequest inserts the drone ID into the path as given; it is not escaped.
func (DroneMaintenanceHandler) BuildRequest(args map[string]any) (maintenance.Request, error) {
	droneID, err := requireString(args, "droneId")
	if err != nil {
		return maintenance.Request{}, err
	}
	return maintenance.Get("/maintenance/" + droneID), nil
}

func (DroneMaintenanceHandler) Render(args map[string]any, resp gjson.Result) string {
	droneID, _ := args["droneId"].(string)

	var b strings.Builder
	fmt.Fprintf(&b, "Maintenance Plan for %s:\n", droneID)
	bullet(&b, "", "Risk Score: %s/100", number(resp.Get("riskScore")))
	bullet(&b, "", "Risk Level: %s", text(resp.Get("riskLevel"), unknownLevel))
	bullet(&b, "", "Hours Until Service: %s", number(resp.Get("hoursUntilService")))
	bullet(&b, "", "Mission Buffer: %s", number(resp.Get("missionBuffer")))
	bullet(&b, "", "Recommendation: %s", text(resp.Get("recommendation"), notAvailable))
	b.WriteString("\nContributing Factors:\n")
	for _, factor := range strs(resp.Get("contributingFactors"), 0) {
		bullet(&b, "  ", "%s", factor)
	}
	return b.String()
}

// RenderNotFound is used when the API answers 404 for the drone.
func (DroneMaintenanceHandler) RenderNotFound(args map[string]any) string {
	droneID, _ := args["droneId"].(string)
	return fmt.Sprintf(droneNotFoundFormat, droneID)
}

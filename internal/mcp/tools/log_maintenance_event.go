package tools

import (
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

const ToolLogMaintenanceEvent = "log_maintenance_event"

type LogMaintenanceEventHandler struct{}

type logEventArgs struct {
	FlightHours         *float64 `mapstructure:"flightHours"`
	Missions            *float64 `mapstructure:"missions"`
	EmergencyDiversions *float64 `mapstructure:"emergencyDiversions"`
	AvgPayloadKg        *float64 `mapstructure:"avgPayloadKg"`
	BatteryHealth       *float64 `mapstructure:"batteryHealth"`
	TemperatureAlerts   *bool    `mapstructure:"temperatureAlerts"`
	CommunicationIssues *bool    `mapstructure:"communicationIssues"`
	Note                *string  `mapstructure:"note"`
}

func (a logEventArgs) validate() error {
	if err := nonNegative("flightHours", a.FlightHours); err != nil {
		return err
	}
	if err := nonNegativeInteger("missions", a.Missions); err != nil {
		return err
	}
	if err := nonNegativeInteger("emergencyDiversions", a.EmergencyDiversions); err != nil {
		return err
	}
	if err := nonNegative("avgPayloadKg", a.AvgPayloadKg); err != nil {
		return err
	}
	if a.BatteryHealth != nil && (*a.BatteryHealth < 0 || *a.BatteryHealth > 1) {
		return invalidArgument("batteryHealth must be between 0 and 1")
	}
	return nil
}

func nonNegative(name string, v *float64) error {
	if v != nil && *v < 0 {
		return invalidArgument("%s must be non-negative", name)
	}
	return nil
}

// nonNegativeInteger rejects fractional counts instead of truncating them.
func nonNegativeInteger(name string, v *float64) error {
	if v != nil && *v != math.Trunc(*v) {
		return invalidArgument("%s must be an integer", name)
	}
	return nonNegative(name, v)
}

// toInt converts a count already checked by nonNegativeInteger.
func toInt(v *float64) maintenance.Optional[int] {
	if v == nil {
		return maintenance.Optional[int]{}
	}
	return maintenance.Some(int(*v))
}

// integer marks a property as a JSON Schema integer; the builder only
// offers number.
func integer() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

func (LogMaintenanceEventHandler) Definition() mcp.Tool {
	return mcp.NewTool(ToolLogMaintenanceEvent,
		mcp.WithDescription("Record a maintenance/telemetry event for a drone. Automatically updates the maintenance plan."),
		mcp.WithString("droneId",
			mcp.Required(),
			mcp.Description("The drone ID"),
		),
		mcp.WithNumber("flightHours",
			mcp.Description("Flight hours logged (optional)"),
			mcp.Min(0),
		),
		mcp.WithNumber("missions",
			mcp.Description("Number of missions completed (optional)"),
			integer(),
			mcp.Min(0),
		),
		mcp.WithNumber("emergencyDiversions",
			mcp.Description("Number of emergency diversions (optional)"),
			integer(),
			mcp.Min(0),
		),
		mcp.WithNumber("avgPayloadKg",
			mcp.Description("Average payload in kg (optional)"),
			mcp.Min(0),
		),
		mcp.WithNumber("batteryHealth",
			mcp.Description("Battery health (0.0-1.0, optional)"),
			mcp.Min(0),
			mcp.Max(1),
		),
		mcp.WithBoolean("temperatureAlerts",
			mcp.Description("Whether temperature alerts occurred (optional)"),
		),
		mcp.WithBoolean("communicationIssues",
			mcp.Description("Whether communication issues occurred (optional)"),
		),
		mcp.WithString("note",
			mcp.Description("Optional note about the event"),
		),
	)
}

// BuildRequest posts only the fields the caller supplied.
func (LogMaintenanceEventHandler) BuildRequest(args map[string]any) (maintenance.Request, error) {
	droneID, err := requireString(args, "droneId")
	if err != nil {
		return maintenance.Request{}, err
	}
	var decoded logEventArgs
	if err := decodeArgs(args, &decoded); err != nil {
		return maintenance.Request{}, err
	}
	if err := decoded.validate(); err != nil {
		return maintenance.Request{}, err
	}

	entry := maintenance.LogEntry{
		DroneID:             droneID,
		FlightHours:         maintenance.FromPtr(decoded.FlightHours),
		Missions:            toInt(decoded.Missions),
		EmergencyDiversions: toInt(decoded.EmergencyDiversions),
		AvgPayloadKg:        maintenance.FromPtr(decoded.AvgPayloadKg),
		BatteryHealth:       maintenance.FromPtr(decoded.BatteryHealth),
		TemperatureAlerts:   maintenance.FromPtr(decoded.TemperatureAlerts),
		CommunicationIssues: maintenance.FromPtr(decoded.CommunicationIssues),
		Note:                maintenance.FromPtr(decoded.Note),
	}
	return maintenance.Post("/maintenance/log", entry), nil
}

func (LogMaintenanceEventHandler) Render(args map[string]any, resp gjson.Result) string {
	fallback, _ := args["droneId"].(string)
	droneID := text(resp.Get("droneId"), fallback)

	var b strings.Builder
	fmt.Fprintf(&b, "Maintenance log recorded for %s.\n\n", droneID)
	b.WriteString("Updated Plan:\n")
	bullet(&b, "", "Risk Score: %s/100", number(resp.Get("riskScore")))
	bullet(&b, "", "Risk Level: %s", text(resp.Get("riskLevel"), unknownLevel))
	bullet(&b, "", "Hours Until Service: %s", number(resp.Get("hoursUntilService")))
	bullet(&b, "", "Recommendation: %s", text(resp.Get("recommendation"), notAvailable))
	return b.String()
}

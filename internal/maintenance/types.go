package maintenance

import "net/http"

// Request is a single call against the maintenance API. Body is nil when the
// call carries no payload.
type Request struct {
	Method string
	Path   string
	Body   any
}

func Get(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

func Post(path string, body any) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

// LogEntry is the payload of POST /maintenance/log.
type LogEntry struct {
	DroneID             string            `json:"droneId"`
	FlightHours         Optional[float64] `json:"flightHours,omitzero"`
	Missions            Optional[int]     `json:"missions,omitzero"`
	EmergencyDiversions Optional[int]     `json:"emergencyDiversions,omitzero"`
	AvgPayloadKg        Optional[float64] `json:"avgPayloadKg,omitzero"`
	BatteryHealth       Optional[float64] `json:"batteryHealth,omitzero"`
	TemperatureAlerts   Optional[bool]    `json:"temperatureAlerts,omitzero"`
	CommunicationIssues Optional[bool]    `json:"communicationIssues,omitzero"`
	Note                Optional[string]  `json:"note,omitzero"`
}

// PlanRequest is the payload of POST /maintenance/plan. A set field holding
// a nil pointer is sent as an explicit JSON null.
type PlanRequest struct {
	DroneIDs            Optional[*[]string] `json:"droneIds,omitzero"`
	IncludeFleetInsight Optional[*bool]     `json:"includeFleetInsight,omitzero"`
}

// IsZero reports whether neither field was supplied, in which case the
// request is sent without a body.
func (r PlanRequest) IsZero() bool {
	return !r.DroneIDs.Set && !r.IncludeFleetInsight.Set
}

package tools

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	notAvailable = "N/A"
	unknownLevel = "UNKNOWN"
)

// number renders a numeric field with the backend's own formatting, or 0 when
// it is missing.
func number(r gjson.Result) string {
	switch {
	case r.Type == gjson.Number:
		return r.Raw
	case !r.Exists(), r.Type == gjson.Null:
		return "0"
	default:
		return r.String()
	}
}

func text(r gjson.Result, fallback string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return fallback
	}
	return r.String()
}

func list(r gjson.Result) []gjson.Result {
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

func strs(r gjson.Result, limit int) []string {
	items := list(r)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

// planLine is the one-line summary shared by the fleet and batch views.
func planLine(plan gjson.Result) string {
	return fmt.Sprintf("%s: %s risk (%s/100)",
		text(plan.Get("droneId"), notAvailable),
		text(plan.Get("riskLevel"), unknownLevel),
		number(plan.Get("riskScore")),
	)
}

func bullet(b *strings.Builder, indent string, format string, args ...any) {
	b.WriteString(indent)
	b.WriteString("- ")
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

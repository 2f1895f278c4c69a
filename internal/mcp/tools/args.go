package tools

import (
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/roivaz/ilp-maintenance-mcp/internal/maintenance"
)

// requireString returns a required string argument. Absent, null and blank
// values all count as missing.
func requireString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", missingArgument(key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", invalidArgument("%s must be a string", key)
	}
	if strings.TrimSpace(value) == "" {
		return "", missingArgument(key)
	}
	return value, nil
}

// decodeArgs decodes the invocation arguments into a struct of pointer
// fields; keys that are absent or null leave their field nil.
func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return invalidArgument("%v", err)
	}
	return nil
}

// passedThrough is set whenever key is present in args, so an explicit null
// stays distinguishable from an omitted key.
func passedThrough[T any](args map[string]any, key string, decoded *T) maintenance.Optional[*T] {
	if _, ok := args[key]; !ok {
		return maintenance.Optional[*T]{}
	}
	return maintenance.Some(decoded)
}

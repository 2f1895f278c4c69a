package maintenance

import "strings"

const DefaultBaseURL = "http://localhost:8080/api/v1"

// ResolveBaseURL normalizes the configured API base URL: blank values fall
// back to DefaultBaseURL, trailing slashes are dropped and a missing scheme
// becomes http://.
func ResolveBaseURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		url = DefaultBaseURL
	}
	url = strings.TrimRight(url, "/")
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return url
}

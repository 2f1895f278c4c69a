package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/api/v1/", Logger: logging.Discard()})
}

func TestResolveBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                             DefaultBaseURL,
		"   ":                          DefaultBaseURL,
		"example.com:9000/":            "http://example.com:9000",
		"https://api.example.com/v1//": "https://api.example.com/v1",
		"http://localhost:8080/api/v1": "http://localhost:8080/api/v1",
		"localhost:8080/api/v1":        "http://localhost:8080/api/v1",
	}
	for in, want := range cases {
		assert.Equal(t, want, ResolveBaseURL(in), "input %q", in)
	}
}

func TestDoGet(t *testing.T) {
	var gotPath, gotMethod, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"riskScore":42.5,"riskLevel":"MEDIUM"}`))
	})

	ctx := WithRequestID(context.Background(), "inv-1")
	res, err := client.Do(ctx, Get("maintenance/drn-101"))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/maintenance/drn-101", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "inv-1", gotRequestID)
	assert.Equal(t, "MEDIUM", res.Get("riskLevel").String())
	assert.Equal(t, "42.5", res.Get("riskScore").Raw)
}

func TestDoPathIsEscapedOnTheWire(t *testing.T) {
	var requestURI, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestURI, path = r.RequestURI, r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Do(context.Background(), Get("/maintenance/drn 101"))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/maintenance/drn%20101", requestURI)
	assert.Equal(t, "/api/v1/maintenance/drn 101", path)
}

func TestDoRejectsMalformedPathEscape(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	_, err := client.Do(context.Background(), Get("/maintenance/x%zz"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnreachable)
	assert.Contains(t, err.Error(), "build GET /maintenance/x%zz")
	assert.Contains(t, err.Error(), "invalid URL escape")
	assert.Zero(t, hits)
}

func TestDoPostOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	var contentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{}`))
	})

	entry := LogEntry{DroneID: "drn-7", Missions: Some(3), TemperatureAlerts: Some(false)}
	_, err := client.Do(context.Background(), Post("/maintenance/log", entry))
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, map[string]any{"droneId": "drn-7", "missions": float64(3), "temperatureAlerts": false}, body)
}

func TestDoPostWithoutBody(t *testing.T) {
	var raw []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"plans":[]}`))
	})

	_, err := client.Do(context.Background(), Post("/maintenance/plan", nil))
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestDoHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Do(context.Background(), Get("/maintenance/summary"))
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "API Error (500): boom\n", err.Error())
	assert.False(t, IsNotFound(err))
}

func TestDoNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Do(context.Background(), Get("/maintenance/ghost"))
	assert.True(t, IsNotFound(err))
}

func TestDoInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.Do(context.Background(), Get("/maintenance/summary"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
	assert.False(t, errors.Is(err, ErrUnreachable))
}

func TestDoEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	res, err := client.Do(context.Background(), Get("/maintenance/summary"))
	require.NoError(t, err)
	assert.False(t, res.Get("plans").Exists())
}

func TestDoUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url, Logger: logging.Discard()})
	_, err := client.Do(context.Background(), Get("/maintenance/summary"))
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestDoTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond, Logger: logging.Discard()})
	_, err := client.Do(context.Background(), Get("/maintenance/summary"))
	require.ErrorIs(t, err, ErrUnreachable)
	assert.True(t, strings.Contains(err.Error(), "timed out after 50ms"), err.Error())
}

func TestLogEntryMarshalsOnlySuppliedFields(t *testing.T) {
	payload, err := json.Marshal(LogEntry{DroneID: "drn-101"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"droneId":"drn-101"}`, string(payload))

	ids := []string{"a", "b"}
	payload, err = json.Marshal(PlanRequest{DroneIDs: Some(&ids)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"droneIds":["a","b"]}`, string(payload))

	payload, err = json.Marshal(PlanRequest{DroneIDs: Some[*[]string](nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"droneIds":null}`, string(payload))
	assert.True(t, PlanRequest{}.IsZero())
}

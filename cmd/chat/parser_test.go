package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	robot "github.com/iwtcode/robotAdapter"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func newStubServer(t *testing.T) (*robot.Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		requests = append(requests, rec)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(server.Close)

	client := robot.New(&robot.Config{
		ServerURL: server.URL,
		TimeoutMs: 2000,
		LogLevel:  "off",
	})
	return client, &requests
}

func TestNaiveParseShowcfg(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, ":showcfg")
	require.True(t, res.OK)
	require.Len(t, *requests, 1)
	require.Equal(t, http.MethodGet, (*requests)[0].Method)
	require.Equal(t, "/api/v1/config", (*requests)[0].Path)
}

func TestNaiveParseSetObj(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, ":setobj red_cube 0.1 0.2 0.3")
	require.True(t, res.OK)
	require.Len(t, *requests, 1)

	req := (*requests)[0]
	require.Equal(t, "/api/v1/config/object", req.Path)
	require.Equal(t, "red_cube", req.Body["id"])
	pose := req.Body["pose"].(map[string]any)
	require.InDelta(t, 0.1, pose["x"], 1e-9)
	require.InDelta(t, 0.2, pose["y"], 1e-9)
	require.InDelta(t, 0.3, pose["z"], 1e-9)
}

func TestNaiveParseSetZone(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, ":setzone drop_off 0.5 0.85 0 0.05")
	require.True(t, res.OK)

	req := (*requests)[0]
	require.Equal(t, "/api/v1/config/zone", req.Path)
	require.Equal(t, "drop_off", req.Body["id"])
	require.InDelta(t, 0.05, req.Body["tolerance_m"], 1e-9)
}

func TestNaiveParseSetZoneDefaultTolerance(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, ":setzone drop_off 0.5 0.85 0")
	require.True(t, res.OK)

	// Без явного допуска используется значение по умолчанию
	require.InDelta(t, 0.03, (*requests)[0].Body["tolerance_m"], 1e-9)
}

func TestNaiveParseMoveObject(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, "Move red cube to zone_b")
	require.True(t, res.OK)

	req := (*requests)[0]
	require.Equal(t, "/api/v1/tool-call", req.Path)
	require.Equal(t, "move_object", req.Body["name"])

	args := req.Body["arguments"].(map[string]any)
	require.Equal(t, "red_cube", args["object_id"], "Пробелы в имени объекта заменяются подчеркиваниями")
	require.Equal(t, "zone_b", args["target"])
}

func TestNaiveParseStatus(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, "status")
	require.True(t, res.OK)
	require.Equal(t, "query_status", (*requests)[0].Body["name"])
}

func TestNaiveParseUnrecognized(t *testing.T) {
	client, requests := newStubServer(t)

	res := naiveParseAndCall(context.Background(), client, "please do something")
	require.False(t, res.OK)
	require.Equal(t, "unrecognized_command", res.Error)
	require.Empty(t, *requests, "Нераспознанная команда не должна обращаться к серверу")
}

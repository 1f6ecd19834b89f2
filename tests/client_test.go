package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	robot "github.com/iwtcode/robotAdapter"
	"github.com/iwtcode/robotAdapter/models"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T, handler http.Handler) *robot.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &robot.Config{
		ServerURL: server.URL,
		TimeoutMs: 2000,
		LogLevel:  "off",
	}
	c := robot.New(cfg)
	require.NotNil(t, c, "Клиент не должен быть nil")
	return c
}

func jsonHandler(t *testing.T, wantPath string, response any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	})
}

func TestCallTool(t *testing.T) {
	var gotRequest models.ToolCallRequest

	c := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tool-call", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "result": {"ok": true, "placed_object": "red_cube"}}`))
	}))

	resp, err := c.CallTool(context.Background(), "place", map[string]any{"target": "zone_a"})
	require.NoError(t, err, "Не удалось выполнить tool-call")
	require.True(t, resp.OK)
	require.Equal(t, "place", gotRequest.Name)

	var args map[string]any
	require.NoError(t, json.Unmarshal(gotRequest.Arguments, &args))
	require.Equal(t, "zone_a", args["target"])
}

func TestCallToolActionFailure(t *testing.T) {
	// Отказ действия приходит как штатный ответ с ok=false, не как HTTP-ошибка
	c := setupTest(t, jsonHandler(t, "/api/v1/tool-call", models.ToolCallResponse{
		OK:    false,
		Error: "unknown_zone",
	}))

	resp, err := c.CallTool(context.Background(), "place", map[string]any{"target": "warehouse"})
	require.NoError(t, err)
	require.False(t, resp.OK)
	require.Equal(t, "unknown_zone", resp.Error)
}

func TestGetStatus(t *testing.T) {
	c := setupTest(t, jsonHandler(t, "/api/v1/status", map[string]any{
		"ok": true,
		"bridge": map[string]any{
			"ok":          true,
			"held_object": "red_cube",
			"speed_scale": 0.3,
			"stopped":     false,
			"last_action": "pick:red_cube",
		},
	}))

	status, err := c.GetStatus(context.Background())
	require.NoError(t, err, "Не удалось получить статус")
	require.True(t, status.OK)
	require.Equal(t, "red_cube", status.Bridge.HeldObject)
	require.InDelta(t, 0.3, status.Bridge.SpeedScale, 1e-9)
}

func TestGetMap(t *testing.T) {
	c := setupTest(t, jsonHandler(t, "/api/v1/map", models.MapResponse{Map: "+---+\n|   |\n+---+"}))

	asciiMap, err := c.GetMap(context.Background())
	require.NoError(t, err, "Не удалось получить карту")
	require.Contains(t, asciiMap, "+---+")
}

func TestUpsertZone(t *testing.T) {
	var got models.ZoneUpsertRequest

	c := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/config/zone", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "id": "drop_off"}`))
	}))

	err := c.UpsertZone(context.Background(), "drop_off", models.Pose{X: 0.5, Y: 0.85}, 0.05)
	require.NoError(t, err)
	require.Equal(t, "drop_off", got.ID)
	require.InDelta(t, 0.05, got.ToleranceM, 1e-9)
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	c := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "Некорректный запрос"}`))
	}))

	_, err := c.GetStatus(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Некорректный запрос")
}

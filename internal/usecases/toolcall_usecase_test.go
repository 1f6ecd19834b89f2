package usecases

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
	"github.com/iwtcode/robotAdapter/internal/services/robot_service"
	apperrors "github.com/iwtcode/robotAdapter/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeSettings — хранилище настроек в памяти без файла.
type fakeSettings struct {
	mu       sync.Mutex
	settings entities.Settings
}

func newFakeSettings() *fakeSettings {
	zones := entities.NewZoneTable()
	zones.Upsert("zone_a", entities.Zone{CenterPose: entities.Pose{X: 0.2, Y: 0.2}, ToleranceM: 0.03})
	zones.Upsert("zone_b", entities.Zone{CenterPose: entities.Pose{X: 0.8, Y: 0.2}, ToleranceM: 0.03})

	s := entities.Settings{
		Zones: zones,
		Objects: map[string]entities.ObjectEntry{
			"red_cube": {Pose: entities.Pose{X: 0.35, Y: 0.6}},
		},
		// Максимальная скорость, чтобы имитация движения была минимальной
		Safety: entities.Safety{SpeedScale: 1.0},
	}
	s.Normalize()
	return &fakeSettings{settings: s}
}

func (f *fakeSettings) Snapshot() entities.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Clone()
}

func (f *fakeSettings) Zones() *entities.ZoneTable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Zones.Clone()
}

func (f *fakeSettings) SafetySpeedScale() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Safety.SpeedScale
}

func (f *fakeSettings) UpsertObject(id string, pose entities.Pose) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings.Objects[id] = entities.ObjectEntry{Pose: pose}
	return nil
}

func (f *fakeSettings) UpsertZone(id string, zone entities.Zone) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings.Zones.Upsert(id, zone)
	return nil
}

func (f *fakeSettings) SetObjectPose(id string, pose entities.Pose) error {
	return f.UpsertObject(id, pose)
}

// fakeHistory накапливает записи журнала в памяти.
type fakeHistory struct {
	mu      sync.Mutex
	records []entities.ActionRecord
}

func (f *fakeHistory) Create(record *entities.ActionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHistory) GetRecent(limit int) ([]entities.ActionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit > len(f.records) {
		limit = len(f.records)
	}
	out := make([]entities.ActionRecord, limit)
	copy(out, f.records[len(f.records)-limit:])
	return out, nil
}

// fakeProducer собирает опубликованные события.
type fakeProducer struct {
	mu       sync.Mutex
	messages [][]byte
}

func (f *fakeProducer) Produce(ctx context.Context, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, value)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

type testEnv struct {
	usecase  *Usecase
	settings *fakeSettings
	history  *fakeHistory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	settings := newFakeSettings()
	history := &fakeHistory{}
	producer := &fakeProducer{}
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "TEST")

	robotSvc := robot_service.NewRobotService(settings, producer, logger)
	u := NewUsecase(robotSvc, settings, history, producer, logger).(*Usecase)

	return &testEnv{usecase: u, settings: settings, history: history}
}

func call(t *testing.T, u *Usecase, name, args string) models.ToolCallResponse {
	t.Helper()
	req := models.ToolCallRequest{Name: name}
	if args != "" {
		req.Arguments = json.RawMessage(args)
	}
	return u.ToolCall(req)
}

func TestToolCallUnknownTool(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "fly", "")
	require.False(t, resp.OK)
	require.Equal(t, apperrors.UnknownTool, resp.Error)
}

func TestToolCallInvalidArguments(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "set_speed", `{}`)
	require.False(t, resp.OK)
	require.Equal(t, apperrors.InvalidArguments, resp.Error, "set_speed без scale должен отклоняться")

	resp = call(t, env.usecase, "pick", `{}`)
	require.Equal(t, apperrors.InvalidArguments, resp.Error, "pick без object_id должен отклоняться")

	resp = call(t, env.usecase, "move_object", `{"target":"zone_a"}`)
	require.Equal(t, apperrors.InvalidArguments, resp.Error, "move_object без object_id должен отклоняться")

	resp = call(t, env.usecase, "place", `not json`)
	require.Equal(t, apperrors.InvalidArguments, resp.Error)
}

func TestToolCallSetSpeedOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "set_speed", `{"scale": 1.5}`)
	require.False(t, resp.OK)
	require.Equal(t, apperrors.ScaleOutOfRange, resp.Error)
}

func TestToolCallGetConfig(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "get_config", "")
	require.True(t, resp.OK)

	result, ok := resp.Result.(models.ConfigResult)
	require.True(t, ok)
	require.Equal(t, []string{"zone_a", "zone_b"}, result.Zones.Keys())
	require.Contains(t, result.Objects, "red_cube")
}

func TestToolCallPlacePersistsZoneCenter(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "pick", `{"object_id": "red_cube"}`)
	require.True(t, resp.OK)

	// Цель задана порядковым номером; центр зоны фиксируется в настройках
	resp = call(t, env.usecase, "place", `{"target": "2"}`)
	require.True(t, resp.OK)

	obj, ok := env.settings.Snapshot().Objects["red_cube"]
	require.True(t, ok)
	require.Equal(t, entities.Pose{X: 0.8, Y: 0.2}, obj.Pose,
		"После place позицией объекта должен стать центр зоны")
}

func TestToolCallPlaceAtLiteralPose(t *testing.T) {
	env := newTestEnv(t)

	require.True(t, call(t, env.usecase, "pick", `{"object_id": "red_cube"}`).OK)

	resp := call(t, env.usecase, "place", `{"pose": {"x": 0.4, "y": 0.7, "z": 0.0}}`)
	require.True(t, resp.OK)

	obj := env.settings.Snapshot().Objects["red_cube"]
	require.Equal(t, entities.Pose{X: 0.4, Y: 0.7}, obj.Pose,
		"После place по позе фиксируется буквальная поза")
}

func TestToolCallMoveObject(t *testing.T) {
	env := newTestEnv(t)

	resp := call(t, env.usecase, "move_object", `{"object_id": "red_cube", "target": "zone_a"}`)
	require.True(t, resp.OK)

	result, ok := resp.Result.(models.ActionResult)
	require.True(t, ok)
	require.Equal(t, "red_cube", result.PlacedObject)
	require.NotNil(t, result.NewPose)
	require.Equal(t, entities.Pose{X: 0.2, Y: 0.2}, *result.NewPose)

	// Захват снова свободен, объект переехал в центр зоны
	status := env.usecase.GetStatus()
	require.Empty(t, status.Bridge.HeldObject)
	require.Equal(t, entities.Pose{X: 0.2, Y: 0.2}, env.settings.Snapshot().Objects["red_cube"].Pose)
}

func TestToolCallMoveObjectUnknownZoneDoesNotPick(t *testing.T) {
	env := newTestEnv(t)

	before := env.usecase.GetStatus().Bridge.LastAction

	resp := call(t, env.usecase, "move_object", `{"object_id": "red_cube", "target": "warehouse"}`)
	require.False(t, resp.OK)
	require.Equal(t, apperrors.UnknownZone, resp.Error)

	// Неразрешимая цель отклоняется до захвата: мост не тронут
	after := env.usecase.GetStatus().Bridge
	require.Empty(t, after.HeldObject)
	require.Equal(t, before, after.LastAction)
}

func TestToolCallMoveObjectWhileStopped(t *testing.T) {
	env := newTestEnv(t)

	require.True(t, call(t, env.usecase, "stop", "").OK)

	resp := call(t, env.usecase, "move_object", `{"object_id": "red_cube", "target": "zone_a"}`)
	require.False(t, resp.OK)
	require.Equal(t, apperrors.Stopped, resp.Error)
}

func TestToolCallRecordsHistory(t *testing.T) {
	env := newTestEnv(t)

	call(t, env.usecase, "query_status", "")
	call(t, env.usecase, "fly", "")

	records, err := env.usecase.RecentActions(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "query_status", records[0].Tool)
	require.True(t, records[0].OK)
	require.Equal(t, "fly", records[1].Tool)
	require.Equal(t, apperrors.UnknownTool, records[1].Error)
	require.Equal(t, "{}", records[0].Arguments, "Пустые аргументы журналируются как {}")
}

func TestUpsertZoneVisibleToOrdinalResolution(t *testing.T) {
	env := newTestEnv(t)

	pose := entities.Pose{X: 0.5, Y: 0.85}
	_, err := env.usecase.UpsertZone(models.ZoneUpsertRequest{ID: "drop_off", CenterPose: &pose})
	require.NoError(t, err)

	// Новая зона сразу видна как третья по порядку
	resp := call(t, env.usecase, "move_object", `{"object_id": "red_cube", "target": "3"}`)
	require.True(t, resp.OK)
	require.Equal(t, pose, env.settings.Snapshot().Objects["red_cube"].Pose)
}

func TestUpsertZoneDefaultTolerance(t *testing.T) {
	env := newTestEnv(t)

	pose := entities.Pose{X: 0.5, Y: 0.85}
	zone, err := env.usecase.UpsertZone(models.ZoneUpsertRequest{ID: "drop_off", CenterPose: &pose})
	require.NoError(t, err)
	require.InDelta(t, entities.DefaultZoneTolerance, zone.ToleranceM, 1e-9)
}

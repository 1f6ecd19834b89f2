package usecases

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/iwtcode/robotAdapter/internal/domain/models"
	"github.com/iwtcode/robotAdapter/internal/interfaces"
	"github.com/iwtcode/robotAdapter/internal/middleware/logging"
	"github.com/iwtcode/robotAdapter/internal/services/mapview"
	"github.com/iwtcode/robotAdapter/internal/services/robot_service"
	apperrors "github.com/iwtcode/robotAdapter/pkg/errors"
)

// Usecase диспетчеризует действия фиксированного словаря между мостом,
// резолвером зон и хранилищем настроек. Мьютекс сериализует действия
// целиком, поэтому pick и place внутри move_object не перемежаются
// с другими запросами.
type Usecase struct {
	mu       sync.Mutex
	robotSvc interfaces.RobotService
	settings interfaces.SettingsRepository
	history  interfaces.ActionHistoryRepository
	producer interfaces.KafkaService
	logger   *logging.Logger
}

func NewUsecase(
	robotSvc interfaces.RobotService,
	settings interfaces.SettingsRepository,
	history interfaces.ActionHistoryRepository,
	producer interfaces.KafkaService,
	logger *logging.Logger,
) interfaces.Usecases {
	return &Usecase{
		robotSvc: robotSvc,
		settings: settings,
		history:  history,
		producer: producer,
		logger:   logger.WithPrefix("DISPATCHER"),
	}
}

// ToolCall выполняет одно действие и фиксирует результат в журнале
// и в Kafka. Неизвестное имя действия отклоняется как unknown_tool.
func (u *Usecase) ToolCall(req models.ToolCallRequest) models.ToolCallResponse {
	u.mu.Lock()
	resp := u.dispatch(req)
	u.mu.Unlock()

	u.record(req, resp)
	return resp
}

func (u *Usecase) dispatch(req models.ToolCallRequest) models.ToolCallResponse {
	switch req.Name {
	case "get_config":
		snap := u.settings.Snapshot()
		return models.ToolCallResponse{OK: true, Result: models.ConfigResult{
			Zones:     snap.Zones,
			Objects:   snap.Objects,
			Workspace: snap.Workspace,
		}}

	case "set_speed":
		var args models.SetSpeedArgs
		if err := parseArgs(req.Arguments, &args); err != nil || args.Scale == nil {
			return u.invalidArguments(req.Name, "scale is required")
		}
		return fromActionResult(u.robotSvc.SetSpeed(*args.Scale))

	case "stop":
		return fromActionResult(u.robotSvc.Stop())

	case "pick":
		var args models.PickArgs
		if err := parseArgs(req.Arguments, &args); err != nil || args.ObjectID == "" {
			return u.invalidArguments(req.Name, "object_id is required")
		}
		grip := models.DefaultGripStrength
		if args.GripStrength != nil {
			grip = *args.GripStrength
		}
		return fromActionResult(u.robotSvc.Pick(args.ObjectID, grip))

	case "place":
		var args models.PlaceArgs
		if err := parseArgs(req.Arguments, &args); err != nil {
			return u.invalidArguments(req.Name, "malformed arguments")
		}
		return u.place(args.Target, args.Pose)

	case "move_object":
		var args models.MoveObjectArgs
		if err := parseArgs(req.Arguments, &args); err != nil || args.ObjectID == "" {
			return u.invalidArguments(req.Name, "object_id is required")
		}
		return u.moveObject(args)

	case "query_status":
		return models.ToolCallResponse{OK: true, Result: u.robotSvc.QueryStatus()}

	default:
		return models.ToolCallResponse{Error: apperrors.UnknownTool}
	}
}

// place разрешает ссылку на зону до обращения к мосту и после успешной
// укладки фиксирует новую позицию объекта в настройках.
func (u *Usecase) place(target string, pose *entities.Pose) models.ToolCallResponse {
	zoneKey, resp := u.resolveTarget(target)
	if resp != nil {
		return *resp
	}

	res := u.robotSvc.Place(zoneKey, pose)
	if res.OK && res.PlacedObject != "" {
		if err := u.persistPose(res.PlacedObject, zoneKey, pose); err != nil {
			return models.ToolCallResponse{Error: apperrors.PersistFailed}
		}
	}
	return fromActionResult(res)
}

// moveObject — составное действие pick+place. Неразрешимая цель
// отклоняется до захвата, чтобы не остаться с объектом в захвате
// и без места для укладки.
func (u *Usecase) moveObject(args models.MoveObjectArgs) models.ToolCallResponse {
	zoneKey, resp := u.resolveTarget(args.Target)
	if resp != nil {
		return *resp
	}

	pick := u.robotSvc.Pick(args.ObjectID, models.DefaultGripStrength)
	if !pick.OK {
		return models.ToolCallResponse{Error: pick.Error}
	}

	res := u.robotSvc.Place(zoneKey, args.Pose)
	if res.OK {
		newPose := u.placementPose(zoneKey, args.Pose)
		if err := u.settings.SetObjectPose(args.ObjectID, newPose); err != nil {
			u.logger.Error("Failed to persist object pose", "object", args.ObjectID, "error", err)
			return models.ToolCallResponse{Error: apperrors.PersistFailed}
		}
		res.NewPose = &newPose
	}
	return fromActionResult(res)
}

// resolveTarget разрешает непустую ссылку на зону. Второе возвращаемое
// значение не nil, если диспетчеризацию нужно прервать.
func (u *Usecase) resolveTarget(target string) (string, *models.ToolCallResponse) {
	if target == "" {
		return "", nil
	}

	zones := u.settings.Zones()
	key, ok := robot_service.ResolveZone(target, zones)
	if !ok {
		u.logger.Warn("Unknown zone reference", "reference", target,
			"closest", robot_service.SuggestZone(target, zones))
		return "", &models.ToolCallResponse{Error: apperrors.UnknownZone}
	}
	return key, nil
}

func (u *Usecase) persistPose(objectID, zoneKey string, pose *entities.Pose) error {
	newPose := u.placementPose(zoneKey, pose)
	if err := u.settings.SetObjectPose(objectID, newPose); err != nil {
		u.logger.Error("Failed to persist object pose", "object", objectID, "error", err)
		return err
	}
	return nil
}

// placementPose — позиция, в которой объект оказался после укладки:
// центр зоны при укладке по зоне, иначе буквальная поза.
func (u *Usecase) placementPose(zoneKey string, pose *entities.Pose) entities.Pose {
	if zoneKey != "" {
		if zone, ok := u.settings.Zones().Get(zoneKey); ok {
			return zone.CenterPose
		}
	}
	if pose != nil {
		return *pose
	}
	return entities.Pose{}
}

func (u *Usecase) invalidArguments(tool, detail string) models.ToolCallResponse {
	u.logger.Warn("Invalid tool arguments", "tool", tool, "detail", detail)
	return models.ToolCallResponse{Error: apperrors.InvalidArguments}
}

// record фиксирует выполненное действие в журнале и публикует событие.
// Обе записи негарантированные: отказ логируется, результат действия
// клиенту не меняет.
func (u *Usecase) record(req models.ToolCallRequest, resp models.ToolCallResponse) {
	args := string(req.Arguments)
	if args == "" {
		args = "{}"
	}

	rec := &entities.ActionRecord{
		ID:        uuid.New().String(),
		Tool:      req.Name,
		Arguments: args,
		OK:        resp.OK,
		Error:     resp.Error,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.history.Create(rec); err != nil {
		u.logger.Error("Failed to save action record", "tool", req.Name, "error", err)
	}

	event := models.ActionEvent{
		ID:        rec.ID,
		Tool:      rec.Tool,
		OK:        rec.OK,
		Error:     rec.Error,
		Timestamp: rec.CreatedAt,
	}
	go u.publishEvent(event)
}

func (u *Usecase) publishEvent(event models.ActionEvent) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		u.logger.Error("Failed to serialize action event", "tool", event.Tool, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := u.producer.Produce(ctx, []byte(event.Tool), jsonData); err != nil {
		u.logger.Warn("Failed to publish action event", "tool", event.Tool, "error", err)
	}
}

func fromActionResult(res models.ActionResult) models.ToolCallResponse {
	return models.ToolCallResponse{OK: res.OK, Result: res, Error: res.Error}
}

// parseArgs разбирает сырые JSON-аргументы в типизированную структуру.
func parseArgs(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// --- Остальные use cases ---

func (u *Usecase) GetStatus() models.StatusResponse {
	return models.StatusResponse{
		OK:     true,
		Bridge: u.robotSvc.QueryStatus(),
		LLM:    u.settings.Snapshot().LLM,
	}
}

func (u *Usecase) GetConfig() models.ConfigResponse {
	snap := u.settings.Snapshot()
	return models.ConfigResponse{
		OK:        true,
		Zones:     snap.Zones,
		Objects:   snap.Objects,
		Workspace: snap.Workspace,
	}
}

func (u *Usecase) RenderMap() string {
	return mapview.Render(u.settings.Snapshot(), mapview.DefaultWidth, mapview.DefaultHeight)
}

func (u *Usecase) UpsertObject(req models.ObjectUpsertRequest) (entities.ObjectEntry, error) {
	if err := u.settings.UpsertObject(req.ID, *req.Pose); err != nil {
		return entities.ObjectEntry{}, err
	}
	return entities.ObjectEntry{Pose: *req.Pose}, nil
}

// UpsertZone сохраняет зону и перечитывает таблицу зон моста:
// порядковые ссылки должны видеть новую зону сразу.
func (u *Usecase) UpsertZone(req models.ZoneUpsertRequest) (entities.Zone, error) {
	zone := entities.Zone{
		CenterPose: *req.CenterPose,
		ToleranceM: req.ToleranceM,
	}
	if zone.ToleranceM == 0 {
		zone.ToleranceM = entities.DefaultZoneTolerance
	}

	if err := u.settings.UpsertZone(req.ID, zone); err != nil {
		return entities.Zone{}, err
	}
	u.robotSvc.ReloadZones(u.settings.Zones())
	return zone, nil
}

func (u *Usecase) RecentActions(limit int) ([]entities.ActionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return u.history.GetRecent(limit)
}

func (u *Usecase) StartPolling(interval time.Duration) error {
	return u.robotSvc.StartPolling(interval)
}

func (u *Usecase) StopPolling() error {
	return u.robotSvc.StopPolling()
}

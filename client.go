package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/iwtcode/robotAdapter/models"
	"github.com/sirupsen/logrus"
)

// Client является основной точкой входа для взаимодействия с сервером инструментов.
type Client struct {
	baseURL string
	http    *http.Client
	config  *Config
	logger  *logrus.Logger
}

// New создает и возвращает новый экземпляр клиента.
func New(cfg *Config) *Client {
	logger := logrus.New()

	if cfg.LogLevel == "off" || cfg.LogLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Client{
		baseURL: cfg.ServerURL + "/api/v1",
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		config: cfg,
		logger: logger,
	}
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// CallTool выполняет именованное действие манипулятора с JSON-аргументами.
func (c *Client) CallTool(ctx context.Context, name string, arguments any) (*models.ToolCallResponse, error) {
	var rawArgs json.RawMessage
	if arguments != nil {
		data, err := json.Marshal(arguments)
		if err != nil {
			return nil, fmt.Errorf("не удалось сериализовать аргументы: %w", err)
		}
		rawArgs = data
	}

	c.logger.WithFields(logrus.Fields{"tool": name}).Debug("calling tool")

	var resp models.ToolCallResponse
	if err := c.post(ctx, "/tool-call", models.ToolCallRequest{Name: name, Arguments: rawArgs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatus возвращает текущий статус сервера и моста манипулятора.
func (c *Client) GetStatus(ctx context.Context) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := c.get(ctx, "/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetConfig возвращает конфигурацию сцены: зоны, объекты и границы.
func (c *Client) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	var resp models.ConfigResponse
	if err := c.get(ctx, "/config", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetMap возвращает ASCII-карту рабочего пространства.
func (c *Client) GetMap(ctx context.Context) (string, error) {
	var resp models.MapResponse
	if err := c.get(ctx, "/map", &resp); err != nil {
		return "", err
	}
	return resp.Map, nil
}

// UpsertObject добавляет или обновляет объект в конфигурации сцены.
func (c *Client) UpsertObject(ctx context.Context, id string, pose models.Pose) error {
	var resp models.UpsertResponse
	return c.post(ctx, "/config/object", models.ObjectUpsertRequest{ID: id, Pose: pose}, &resp)
}

// UpsertZone добавляет или обновляет зону в конфигурации сцены.
func (c *Client) UpsertZone(ctx context.Context, id string, center models.Pose, toleranceM float64) error {
	var resp models.UpsertResponse
	return c.post(ctx, "/config/zone", models.ZoneUpsertRequest{ID: id, CenterPose: center, ToleranceM: toleranceM}, &resp)
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, dst)
}

func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать тело запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("запрос к серверу не удался: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("не удалось прочитать ответ: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if msg := extractErrorMessage(data); msg != "" {
			return fmt.Errorf("сервер вернул ошибку (%d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("сервер вернул статус %d", resp.StatusCode)
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("не удалось разобрать ответ: %w", err)
	}
	return nil
}

// extractErrorMessage достает сообщение из тела ошибки сервера:
// {"status":"error","error":{"message":"..."}} или плоское {"error":"..."}.
func extractErrorMessage(data []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(data, &nested) == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}

	var flat struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &flat) == nil && flat.Error != "" {
		return flat.Error
	}
	return ""
}

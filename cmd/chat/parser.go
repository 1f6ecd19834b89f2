package main

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	robot "github.com/iwtcode/robotAdapter"
	"github.com/iwtcode/robotAdapter/models"
)

var (
	setobjPattern  = regexp.MustCompile(`^:setobj\s+(\w+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)`)
	setzonePattern = regexp.MustCompile(`^:setzone\s+(\w+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)\s+(-?[0-9.]+)(?:\s+(-?[0-9.]+))?`)
	movePattern    = regexp.MustCompile(`^move\s+([a-z0-9_\- ]+)\s+to\s+([a-z0-9_\-]+)`)
)

// parseResult - результат локального разбора команды без участия LLM.
type parseResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// naiveParseAndCall разбирает команду простыми регулярными выражениями
// и выполняет соответствующий запрос к серверу.
func naiveParseAndCall(ctx context.Context, client *robot.Client, text string) parseResult {
	text = strings.ToLower(strings.TrimSpace(text))

	if strings.HasPrefix(text, ":showcfg") {
		cfg, err := client.GetConfig(ctx)
		if err != nil {
			return parseResult{OK: false, Error: err.Error()}
		}
		return parseResult{OK: true, Data: cfg}
	}

	if m := setobjPattern.FindStringSubmatch(text); m != nil {
		pose := models.Pose{X: parseFloat(m[2]), Y: parseFloat(m[3]), Z: parseFloat(m[4])}
		if err := client.UpsertObject(ctx, m[1], pose); err != nil {
			return parseResult{OK: false, Error: err.Error()}
		}
		return parseResult{OK: true, Data: map[string]string{"id": m[1]}}
	}

	if m := setzonePattern.FindStringSubmatch(text); m != nil {
		center := models.Pose{X: parseFloat(m[2]), Y: parseFloat(m[3]), Z: parseFloat(m[4])}
		tol := 0.03
		if m[5] != "" {
			tol = parseFloat(m[5])
		}
		if err := client.UpsertZone(ctx, m[1], center, tol); err != nil {
			return parseResult{OK: false, Error: err.Error()}
		}
		return parseResult{OK: true, Data: map[string]string{"id": m[1]}}
	}

	if m := movePattern.FindStringSubmatch(text); m != nil {
		// Пробелы в имени объекта превращаются в подчеркивания: "red cube" -> "red_cube".
		objectID := strings.ReplaceAll(strings.TrimSpace(m[1]), " ", "_")
		resp, err := client.CallTool(ctx, "move_object", map[string]any{
			"object_id": objectID,
			"target":    m[2],
		})
		if err != nil {
			return parseResult{OK: false, Error: err.Error()}
		}
		return parseResult{OK: resp.OK, Error: resp.Error, Data: resp.Result}
	}

	if strings.HasPrefix(text, "status") {
		resp, err := client.CallTool(ctx, "query_status", nil)
		if err != nil {
			return parseResult{OK: false, Error: err.Error()}
		}
		return parseResult{OK: resp.OK, Error: resp.Error, Data: resp.Result}
	}

	return parseResult{OK: false, Error: "unrecognized_command"}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

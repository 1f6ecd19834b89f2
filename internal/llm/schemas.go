package llm

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// ToolSchemas возвращает описания всех действий манипулятора
// в формате function calling OpenAI.
func ToolSchemas() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "pick",
				Description: openai.String("Захватить объект по его идентификатору."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"object_id": map[string]any{
							"type":        "string",
							"description": "Идентификатор объекта, например red_cube.",
						},
						"grip_strength": map[string]any{
							"type":        "number",
							"description": "Сила захвата от 0 до 1. По умолчанию 0.6.",
						},
					},
					"required": []string{"object_id"},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "place",
				Description: openai.String("Положить удерживаемый объект в зону или в явную позицию."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"target": map[string]any{
							"type":        "string",
							"description": "Имя зоны, например zone_a, zone 2 или просто 2.",
						},
						"pose": map[string]any{
							"type":        "object",
							"description": "Явная позиция размещения в метрах.",
							"properties": map[string]any{
								"x": map[string]any{"type": "number"},
								"y": map[string]any{"type": "number"},
								"z": map[string]any{"type": "number"},
							},
							"required": []string{"x", "y", "z"},
						},
					},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "move_object",
				Description: openai.String("Перенести объект в зону или позицию: захват и размещение одним действием."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"object_id": map[string]any{
							"type":        "string",
							"description": "Идентификатор переносимого объекта.",
						},
						"target": map[string]any{
							"type":        "string",
							"description": "Имя целевой зоны.",
						},
						"pose": map[string]any{
							"type":        "object",
							"description": "Явная целевая позиция в метрах.",
							"properties": map[string]any{
								"x": map[string]any{"type": "number"},
								"y": map[string]any{"type": "number"},
								"z": map[string]any{"type": "number"},
							},
							"required": []string{"x", "y", "z"},
						},
					},
					"required": []string{"object_id"},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "stop",
				Description: openai.String("Аварийная остановка манипулятора. Сбрасывает удерживаемый объект."),
				Parameters: openai.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "set_speed",
				Description: openai.String("Установить масштаб скорости движения манипулятора."),
				Parameters: openai.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"scale": map[string]any{
							"type":        "number",
							"description": "Масштаб скорости от 0.1 до 1.0.",
						},
					},
					"required": []string{"scale"},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "query_status",
				Description: openai.String("Получить текущее состояние манипулятора."),
				Parameters: openai.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
		{
			Function: shared.FunctionDefinitionParam{
				Name:        "get_config",
				Description: openai.String("Получить конфигурацию сцены: зоны, объекты и границы рабочего пространства."),
				Parameters: openai.FunctionParameters{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
		},
	}
}

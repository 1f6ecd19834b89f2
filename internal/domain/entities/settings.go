package entities

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultZoneTolerance — допуск зоны по умолчанию в метрах.
const DefaultZoneTolerance = 0.03

// DefaultSpeedScale — безопасная скорость по умолчанию.
const DefaultSpeedScale = 0.3

// Pose — неизменяемая точка в рабочем пространстве.
type Pose struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Zone описывает именованную целевую область.
type Zone struct {
	CenterPose Pose    `json:"center_pose" yaml:"center_pose"`
	ToleranceM float64 `json:"tolerance_m" yaml:"tolerance_m"`
}

// ZoneTable хранит зоны строго в порядке объявления в settings.yaml.
// Порядок значим: ссылка на зону "2" разрешается во второй объявленный ключ.
type ZoneTable struct {
	keys  []string
	zones map[string]Zone
}

// NewZoneTable создает пустую таблицу зон.
func NewZoneTable() *ZoneTable {
	return &ZoneTable{zones: make(map[string]Zone)}
}

func (t *ZoneTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys возвращает копию ключей в порядке объявления.
func (t *ZoneTable) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

func (t *ZoneTable) Get(key string) (Zone, bool) {
	if t == nil {
		return Zone{}, false
	}
	z, ok := t.zones[key]
	return z, ok
}

func (t *ZoneTable) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Upsert добавляет или обновляет зону. Новый ключ встает в конец порядка,
// существующий сохраняет свою позицию.
func (t *ZoneTable) Upsert(key string, zone Zone) {
	if t.zones == nil {
		t.zones = make(map[string]Zone)
	}
	if _, ok := t.zones[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.zones[key] = zone
}

// Clone возвращает независимую копию таблицы.
func (t *ZoneTable) Clone() *ZoneTable {
	clone := NewZoneTable()
	if t == nil {
		return clone
	}
	for _, key := range t.keys {
		clone.Upsert(key, t.zones[key])
	}
	return clone
}

// UnmarshalYAML читает зоны из mapping-узла, сохраняя порядок ключей.
func (t *ZoneTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("zones: ожидается YAML mapping, получен kind=%d", node.Kind)
	}
	t.keys = nil
	t.zones = make(map[string]Zone)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("zones: некорректный ключ зоны: %w", err)
		}
		zone := Zone{ToleranceM: DefaultZoneTolerance}
		if err := node.Content[i+1].Decode(&zone); err != nil {
			return fmt.Errorf("zones: некорректное описание зоны '%s': %w", key, err)
		}
		t.Upsert(key, zone)
	}
	return nil
}

// MarshalYAML записывает зоны mapping-узлом в порядке объявления.
func (t *ZoneTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if t == nil {
		return node, nil
	}
	for _, key := range t.keys {
		var keyNode, valNode yaml.Node
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		if err := valNode.Encode(t.zones[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &keyNode, &valNode)
	}
	return node, nil
}

// MarshalJSON сериализует таблицу как JSON-объект в порядке объявления.
func (t *ZoneTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if t != nil {
		for i, key := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(t.zones[key])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ObjectEntry описывает известный объект и его последнюю позицию.
type ObjectEntry struct {
	Pose Pose `json:"pose" yaml:"pose"`
}

// Bounds — границы рабочего пространства по осям в метрах.
type Bounds struct {
	X [2]float64 `json:"x" yaml:"x"`
	Y [2]float64 `json:"y" yaml:"y"`
}

// Workspace описывает рабочее пространство манипулятора.
type Workspace struct {
	BoundsM Bounds `json:"bounds_m" yaml:"bounds_m"`
}

// Safety содержит настройки безопасности моста.
type Safety struct {
	SpeedScale float64 `json:"speed_scale" yaml:"speed_scale"`
}

// LLMSettings описывает провайдера LLM для клиентов tool-call API.
type LLMSettings struct {
	Provider string `json:"provider" yaml:"provider"`
	Model    string `json:"model" yaml:"model"`
}

// Settings — полная модель settings.yaml.
type Settings struct {
	Zones     *ZoneTable             `json:"zones" yaml:"zones"`
	Objects   map[string]ObjectEntry `json:"objects" yaml:"objects"`
	Workspace Workspace              `json:"workspace" yaml:"workspace"`
	Safety    Safety                 `json:"safety" yaml:"safety"`
	LLM       LLMSettings            `json:"llm" yaml:"llm"`
}

// Normalize подставляет значения по умолчанию для отсутствующих секций.
func (s *Settings) Normalize() {
	if s.Zones == nil {
		s.Zones = NewZoneTable()
	}
	if s.Objects == nil {
		s.Objects = make(map[string]ObjectEntry)
	}
	if s.Workspace.BoundsM.X == [2]float64{} {
		s.Workspace.BoundsM.X = [2]float64{0.0, 1.0}
	}
	if s.Workspace.BoundsM.Y == [2]float64{} {
		s.Workspace.BoundsM.Y = [2]float64{0.0, 1.0}
	}
	if s.Safety.SpeedScale == 0 {
		s.Safety.SpeedScale = DefaultSpeedScale
	}
	if s.LLM.Provider == "" {
		s.LLM.Provider = "openai"
	}
	if s.LLM.Model == "" {
		s.LLM.Model = "gpt-4o-mini"
	}
}

// Clone возвращает независимую копию настроек.
func (s *Settings) Clone() Settings {
	clone := *s
	clone.Zones = s.Zones.Clone()
	clone.Objects = make(map[string]ObjectEntry, len(s.Objects))
	for id, obj := range s.Objects {
		clone.Objects[id] = obj
	}
	return clone
}

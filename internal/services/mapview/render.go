package mapview

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
)

// Размер ASCII-карты по умолчанию.
const (
	DefaultWidth  = 41
	DefaultHeight = 21
)

// colorKeys задает однобуквенные метки объектов по цвету в идентификаторе.
// K вместо B для черного (занято синим), A вместо G для серого (занято зеленым).
var colorKeys = []struct {
	name   string
	letter byte
}{
	{"red", 'R'},
	{"blue", 'B'},
	{"green", 'G'},
	{"yellow", 'Y'},
	{"orange", 'O'},
	{"purple", 'P'},
	{"pink", 'P'},
	{"black", 'K'},
	{"white", 'W'},
	{"gray", 'A'},
}

// projectToGrid проецирует точку рабочего пространства на ячейку сетки.
// Строки инвертированы: +y направлен вверх.
func projectToGrid(x, y float64, bounds entities.Bounds, width, height int) (int, int) {
	nx := normalize(x, bounds.X[0], bounds.X[1])
	ny := normalize(y, bounds.Y[0], bounds.Y[1])

	col := clamp(int(math.Round(nx*float64(width-1))), 0, width-1)
	row := clamp(int(math.Round((1.0-ny)*float64(height-1))), 0, height-1)
	return row, col
}

func normalize(v, min, max float64) float64 {
	span := max - min
	if span <= 0 {
		return 0
	}
	return (v - min) / span
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// labelForObject выбирает однобуквенную метку объекта: по цвету в
// идентификаторе, иначе первая буква, иначе 'O'.
func labelForObject(objectID string) byte {
	low := strings.ToLower(objectID)
	for _, ck := range colorKeys {
		if strings.Contains(low, ck.name) {
			return ck.letter
		}
	}
	for _, r := range objectID {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return byte(strings.ToUpper(string(r))[0])
		}
	}
	return 'O'
}

func isBorder(ch byte) bool {
	return ch == '|' || ch == '-' || ch == '+'
}

// Render строит ASCII-карту рабочего пространства: рамка, зоны как
// номера 1..N (последняя цифра при N>9), объекты как буквы, пересечения
// помечаются '*', снизу легенда.
func Render(settings entities.Settings, width, height int) string {
	bounds := settings.Workspace.BoundsM

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", width))
	}

	// Рамка
	for c := 0; c < width; c++ {
		grid[0][c] = '-'
		grid[height-1][c] = '-'
	}
	for r := 0; r < height; r++ {
		grid[r][0] = '|'
		grid[r][width-1] = '|'
	}
	grid[0][0], grid[0][width-1] = '+', '+'
	grid[height-1][0], grid[height-1][width-1] = '+', '+'

	// Зоны в порядке объявления
	zoneKeys := settings.Zones.Keys()
	zoneLabels := make(map[string]byte, len(zoneKeys))
	for i, key := range zoneKeys {
		digits := strconv.Itoa(i + 1)
		zoneLabels[key] = digits[len(digits)-1]
	}
	for _, key := range zoneKeys {
		zone, _ := settings.Zones.Get(key)
		row, col := projectToGrid(zone.CenterPose.X, zone.CenterPose.Y, bounds, width, height)
		if isBorder(grid[row][col]) {
			continue
		}
		grid[row][col] = zoneLabels[key]
	}

	// Объекты; занятая ячейка помечается '*'
	objectIDs := make([]string, 0, len(settings.Objects))
	for id := range settings.Objects {
		objectIDs = append(objectIDs, id)
	}
	sort.Strings(objectIDs)

	objectLabels := make(map[string]byte, len(objectIDs))
	for _, id := range objectIDs {
		objectLabels[id] = labelForObject(id)
	}
	for _, id := range objectIDs {
		obj := settings.Objects[id]
		row, col := projectToGrid(obj.Pose.X, obj.Pose.Y, bounds, width, height)
		if grid[row][col] != ' ' && !isBorder(grid[row][col]) {
			grid[row][col] = '*'
		} else {
			grid[row][col] = objectLabels[id]
		}
	}

	lines := make([]string, 0, height+5)
	for _, row := range grid {
		lines = append(lines, string(row))
	}

	// Легенда
	objItems := make([]string, 0, len(objectIDs))
	for _, id := range objectIDs {
		objItems = append(objItems, fmt.Sprintf("%c=%s", objectLabels[id], id))
	}
	zoneItems := make([]string, 0, len(zoneKeys))
	for _, key := range zoneKeys {
		zoneItems = append(zoneItems, fmt.Sprintf("%c=%s", zoneLabels[key], key))
	}

	lines = append(lines, "", "Legend: Objects[letter=id] | Zones[number=id]")
	if len(objItems) > 0 {
		lines = append(lines, "Objects: "+strings.Join(objItems, ", "))
	} else {
		lines = append(lines, "Objects: (none)")
	}
	if len(zoneItems) > 0 {
		lines = append(lines, "Zones: "+strings.Join(zoneItems, ", "))
	} else {
		lines = append(lines, "Zones: (none)")
	}
	lines = append(lines, fmt.Sprintf("Bounds x=[%g, %g] y=[%g, %g]",
		bounds.X[0], bounds.X[1], bounds.Y[0], bounds.Y[1]))

	return strings.Join(lines, "\n")
}

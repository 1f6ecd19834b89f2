package mapview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/stretchr/testify/require"
)

func testSettings() entities.Settings {
	s := entities.Settings{
		Zones:   entities.NewZoneTable(),
		Objects: map[string]entities.ObjectEntry{},
	}
	s.Normalize()
	return s
}

func renderLines(t *testing.T, s entities.Settings, width, height int) []string {
	t.Helper()
	lines := strings.Split(Render(s, width, height), "\n")
	require.GreaterOrEqual(t, len(lines), height+4, "Карта должна содержать сетку и легенду")
	return lines
}

func TestRenderFrame(t *testing.T) {
	lines := renderLines(t, testSettings(), 11, 7)

	require.Equal(t, "+---------+", lines[0])
	require.Equal(t, "+---------+", lines[6])
	for r := 1; r < 6; r++ {
		require.Equal(t, byte('|'), lines[r][0])
		require.Equal(t, byte('|'), lines[r][10])
	}
}

func TestRenderZoneDigit(t *testing.T) {
	s := testSettings()
	s.Zones.Upsert("zone_a", entities.Zone{CenterPose: entities.Pose{X: 0.5, Y: 0.5}})

	lines := renderLines(t, s, 11, 11)

	// Центр [0,1]x[0,1] проецируется в середину сетки
	require.Equal(t, byte('1'), lines[5][5])
	require.Contains(t, lines[len(lines)-2], "Zones: 1=zone_a")
}

func TestRenderZoneLabelLastDigit(t *testing.T) {
	s := testSettings()
	for i := 0; i < 12; i++ {
		s.Zones.Upsert(fmt.Sprintf("zone_%02d", i+1), entities.Zone{
			CenterPose: entities.Pose{X: float64(i) / 11.0, Y: 0.5},
		})
	}

	out := Render(s, DefaultWidth, DefaultHeight)

	// Для номеров больше 9 используется последняя цифра
	require.Contains(t, out, "0=zone_10")
	require.Contains(t, out, "2=zone_12")
}

func TestRenderObjectColorLabels(t *testing.T) {
	require.Equal(t, byte('R'), labelForObject("red_cube"))
	require.Equal(t, byte('B'), labelForObject("blue_cylinder"))
	require.Equal(t, byte('K'), labelForObject("black_box"))
	require.Equal(t, byte('A'), labelForObject("gray_tray"))
	require.Equal(t, byte('P'), labelForObject("pink_marker"))
	require.Equal(t, byte('C'), labelForObject("cube"))
	require.Equal(t, byte('O'), labelForObject("123"))
}

func TestRenderCollisionMarker(t *testing.T) {
	s := testSettings()
	s.Zones.Upsert("zone_a", entities.Zone{CenterPose: entities.Pose{X: 0.5, Y: 0.5}})
	s.Objects["red_cube"] = entities.ObjectEntry{Pose: entities.Pose{X: 0.5, Y: 0.5}}

	lines := renderLines(t, s, 11, 11)

	// Объект поверх зоны помечается звездочкой
	require.Equal(t, byte('*'), lines[5][5])
}

func TestRenderObjectOverwritesBorder(t *testing.T) {
	s := testSettings()
	s.Objects["red_cube"] = entities.ObjectEntry{Pose: entities.Pose{X: 0.0, Y: 0.0}}

	lines := renderLines(t, s, 11, 11)

	// Объект на границе рабочего пространства рисуется поверх рамки
	require.Equal(t, byte('R'), lines[10][0])
}

func TestRenderLegend(t *testing.T) {
	s := testSettings()
	s.Zones.Upsert("zone_a", entities.Zone{CenterPose: entities.Pose{X: 0.2, Y: 0.2}})
	s.Objects["red_cube"] = entities.ObjectEntry{Pose: entities.Pose{X: 0.35, Y: 0.6}}

	out := Render(s, DefaultWidth, DefaultHeight)

	require.Contains(t, out, "Legend: Objects[letter=id] | Zones[number=id]")
	require.Contains(t, out, "Objects: R=red_cube")
	require.Contains(t, out, "Zones: 1=zone_a")
	require.Contains(t, out, "Bounds x=[0, 1] y=[0, 1]")
}

func TestRenderEmptyScene(t *testing.T) {
	out := Render(testSettings(), DefaultWidth, DefaultHeight)

	require.Contains(t, out, "Objects: (none)")
	require.Contains(t, out, "Zones: (none)")
}

func TestProjectToGridDegenerateBounds(t *testing.T) {
	bounds := entities.Bounds{X: [2]float64{0.5, 0.5}, Y: [2]float64{0, 1}}

	// Нулевой диапазон не должен приводить к делению на ноль
	row, col := projectToGrid(0.5, 0.5, bounds, 11, 11)
	require.Equal(t, 5, row)
	require.Equal(t, 0, col)
}

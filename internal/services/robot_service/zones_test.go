package robot_service

import (
	"testing"

	"github.com/iwtcode/robotAdapter/internal/domain/entities"
	"github.com/stretchr/testify/require"
)

func orderedZones() *entities.ZoneTable {
	zones := entities.NewZoneTable()
	zones.Upsert("zone_a", entities.Zone{ToleranceM: 0.03})
	zones.Upsert("zone_b", entities.Zone{ToleranceM: 0.03})
	zones.Upsert("drop_off", entities.Zone{ToleranceM: 0.05})
	return zones
}

func TestResolveZoneOrdinal(t *testing.T) {
	zones := orderedZones()

	cases := map[string]string{
		"1":      "zone_a",
		"2":      "zone_b",
		"3":      "drop_off",
		" 2 ":    "zone_b",
		"zone 1": "zone_a",
		"Zone3":  "drop_off",
		"ZONE 2": "zone_b",
	}
	for ref, want := range cases {
		got, ok := ResolveZone(ref, zones)
		require.True(t, ok, "Ссылка %q должна разрешаться", ref)
		require.Equal(t, want, got, "Ссылка %q", ref)
	}
}

func TestResolveZoneCanonical(t *testing.T) {
	zones := orderedZones()

	for _, ref := range []string{"zone_a", "Zone-A", "ZONE A", "zonea"} {
		got, ok := ResolveZone(ref, zones)
		require.True(t, ok, "Ссылка %q должна разрешаться", ref)
		require.Equal(t, "zone_a", got)
	}

	got, ok := ResolveZone("Drop Off", zones)
	require.True(t, ok)
	require.Equal(t, "drop_off", got)
}

func TestResolveZoneOrdinalOutOfRange(t *testing.T) {
	zones := orderedZones()

	// Порядковый номер вне диапазона проваливается в каноническое
	// сравнение и не находит совпадения
	_, ok := ResolveZone("7", zones)
	require.False(t, ok)

	_, ok = ResolveZone("zone 0", zones)
	require.False(t, ok)
}

func TestResolveZoneNotFound(t *testing.T) {
	zones := orderedZones()

	_, ok := ResolveZone("warehouse", zones)
	require.False(t, ok)

	_, ok = ResolveZone("", zones)
	require.False(t, ok)
}

func TestCanonicalKey(t *testing.T) {
	require.Equal(t, "zonea", CanonicalKey("Zone-A"))
	require.Equal(t, "zone1", CanonicalKey(" zone_1 "))
	require.Equal(t, "dropoff", CanonicalKey("Drop Off"))
	require.Equal(t, "", CanonicalKey("---"))
}

func TestSuggestZone(t *testing.T) {
	zones := orderedZones()

	require.Equal(t, "zone_a", SuggestZone("zonna", zones))
	require.Equal(t, "drop_off", SuggestZone("dropp off", zones))
	require.Equal(t, "", SuggestZone("---", zones))
}

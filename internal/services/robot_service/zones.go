package robot_service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/iwtcode/robotAdapter/internal/domain/entities"
)

// ordinalPattern распознает порядковую ссылку на зону: "1", "zone 2", "Zone3".
var ordinalPattern = regexp.MustCompile(`^(?i)\s*(?:zone\s*)?(\d+)\s*$`)

// CanonicalKey приводит идентификатор к канонической форме: нижний
// регистр, только латинские буквы и цифры.
func CanonicalKey(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveZone разрешает произвольную ссылку на зону в канонический ключ.
// Сначала порядковый номер (1-based, в порядке объявления), затем
// совпадение канонических форм. Порядковый номер вне диапазона не
// считается ошибкой и проваливается в каноническое сравнение.
func ResolveZone(reference string, zones *entities.ZoneTable) (string, bool) {
	keys := zones.Keys()

	if m := ordinalPattern.FindStringSubmatch(reference); m != nil {
		if idx, err := strconv.Atoi(m[1]); err == nil && idx >= 1 && idx <= len(keys) {
			return keys[idx-1], true
		}
	}

	want := CanonicalKey(reference)
	for _, key := range keys {
		if CanonicalKey(key) == want {
			return key, true
		}
	}

	return "", false
}

// SuggestZone возвращает объявленный ключ, ближайший к ссылке по
// расстоянию Левенштейна между каноническими формами. Используется
// только для диагностики в логах, на разрешение не влияет.
func SuggestZone(reference string, zones *entities.ZoneTable) string {
	want := CanonicalKey(reference)
	if want == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, key := range zones.Keys() {
		d := levenshtein.ComputeDistance(want, CanonicalKey(key))
		if bestDist < 0 || d < bestDist {
			best = key
			bestDist = d
		}
	}
	return best
}

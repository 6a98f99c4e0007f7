package services

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
)

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// compareNumbers orders comprobante numbers (and rack ids) the way a person
// reading the archive would: numerically when both sides are numbers,
// numbers before free text, and plain string order otherwise.
func compareNumbers(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	switch {
	case okA && okB:
		if c := cmp.Compare(fa, fb); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}

// sortByNumber returns a sorted copy; the caller's slice is never touched.
func sortByNumber(records []models.RecordModel) []models.RecordModel {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.RecordModel) int {
		if c := compareNumbers(a.Number, b.Number); c != 0 {
			return c
		}
		return strings.Compare(string(a.Type), string(b.Type))
	})
	return sorted
}

func sortByTypeAndNumber(records []models.RecordModel) []models.RecordModel {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.RecordModel) int {
		if c := strings.Compare(string(a.Type), string(b.Type)); c != 0 {
			return c
		}
		return compareNumbers(a.Number, b.Number)
	})
	return sorted
}

func sideRank(s *models.Side) int {
	if s == nil {
		return 0
	}
	if *s == models.SideFront {
		return 1
	}
	return 2
}

// slotOf is the position within the level when the policy has one, the box
// sequence otherwise.
func slotOf(p models.PlacementModel) int {
	if p.Position != nil {
		return *p.Position
	}
	return p.BoxSequence
}

// comparePlacements yields the recorrido óptimo: rack, then level, then the
// slot inside the level.
func comparePlacements(a, b models.PlacementModel) int {
	if c := compareNumbers(a.Rack, b.Rack); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Level, b.Level); c != 0 {
		return c
	}
	if c := cmp.Compare(slotOf(a), slotOf(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(sideRank(a.Side), sideRank(b.Side)); c != 0 {
		return c
	}
	if c := compareNumbers(a.Box, b.Box); c != 0 {
		return c
	}
	return compareNumbers(a.Number, b.Number)
}

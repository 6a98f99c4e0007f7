package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"go.uber.org/zap"
)

type LookupService struct {
	logger *zap.Logger
}

// NewLookupService creates a new instance of LookupService
func NewLookupService(logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{logger: logger}
}

// FindOne returns the first placement whose number equals number. A miss is
// reported through the boolean, never as an error.
func (s *LookupService) FindOne(placements []models.PlacementModel, number string) (models.PlacementModel, bool) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.PlacementModel{}, false
	}
	for _, p := range placements {
		if p.Number == number {
			return p, true
		}
	}
	return models.PlacementModel{}, false
}

// NormalizeNumbers splits raw input on newlines and commas, trims each entry
// and drops the empty ones. Order is kept, duplicates included.
func NormalizeNumbers(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})
	numbers := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			numbers = append(numbers, f)
		}
	}
	return numbers
}

// FindMany looks up every number in raw and returns the matches sorted for
// the shortest walk through the archive, plus a per-box count.
// Numbers with no match are left out.
func (s *LookupService) FindMany(placements []models.PlacementModel, raw string) dtos.BatchLookupDTO {
	numbers := NormalizeNumbers(raw)
	wanted := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		wanted[n] = struct{}{}
	}

	matched := []models.PlacementModel{}
	for _, p := range placements {
		if _, ok := wanted[p.Number]; ok {
			matched = append(matched, p)
		}
	}
	slices.SortStableFunc(matched, comparePlacements)

	s.logger.Debug("búsqueda múltiple",
		zap.Int("requested", len(numbers)),
		zap.Int("matched", len(matched)))

	return dtos.BatchLookupDTO{
		Requested:  len(numbers),
		Found:      len(matched) > 0,
		Placements: matched,
		Groups:     groupByBox(matched),
	}
}

// groupByBox expects placements already in walk order.
func groupByBox(placements []models.PlacementModel) []dtos.LookupGroupDTO {
	type key struct {
		rack  string
		level int
		box   string
	}
	groups := []dtos.LookupGroupDTO{}
	index := make(map[key]int)
	for _, p := range placements {
		k := key{p.Rack, p.Level, p.Box}
		i, ok := index[k]
		if !ok {
			groups = append(groups, dtos.LookupGroupDTO{Rack: p.Rack, Level: p.Level, Box: p.Box, Side: p.Side})
			i = len(groups) - 1
			index[k] = i
		}
		groups[i].Count++
	}
	slices.SortStableFunc(groups, func(a, b dtos.LookupGroupDTO) int {
		if c := compareNumbers(a.Rack, b.Rack); c != 0 {
			return c
		}
		return cmp.Compare(a.Level, b.Level)
	})
	return groups
}

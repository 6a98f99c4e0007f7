package services

import (
	"cmp"
	"math"
	"slices"

	"github.com/ARQAP/AppArchivo-Backend/src/dtos"
	"github.com/ARQAP/AppArchivo-Backend/src/models"
)

func ceilDiv(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Occupancy counts the records assigned to box.
func Occupancy(placements []models.PlacementModel, box string) int {
	n := 0
	for _, p := range placements {
		if p.Box == box {
			n++
		}
	}
	return n
}

// OccupancyPct is the fill percentage of a box (0-100).
func OccupancyPct(occupancy int, layout models.LayoutModel) float64 {
	if layout.BoxCapacity <= 0 {
		return 0
	}
	pct := float64(occupancy) / float64(layout.BoxCapacity) * 100
	return math.Round(pct*100) / 100
}

// SummarizeBoxes derives one BoxSummary per box in first-seen order.
func SummarizeBoxes(placements []models.PlacementModel, layout models.LayoutModel) []models.BoxSummary {
	summaries := []models.BoxSummary{}
	index := make(map[string]int)
	for _, p := range placements {
		i, ok := index[p.Box]
		if !ok {
			summaries = append(summaries, models.BoxSummary{
				Box:      p.Box,
				Type:     p.Type,
				Rack:     p.Rack,
				Level:    p.Level,
				Position: p.Position,
				Side:     p.Side,
			})
			i = len(summaries) - 1
			index[p.Box] = i
		} else if summaries[i].Type != p.Type {
			// cross-type box (sequential policy)
			summaries[i].Type = ""
		}
		summaries[i].Occupancy++
	}
	for i := range summaries {
		summaries[i].OccupancyPct = OccupancyPct(summaries[i].Occupancy, layout)
	}
	return summaries
}

// RacksForBoxes is ceil(boxes / boxes per rack side).
func RacksForBoxes(boxes int, layout models.LayoutModel) int {
	return ceilDiv(boxes, layout.BoxesPerRackSide())
}

// RacksUsed counts racks per side and keeps the largest, since front and back
// share the same physical racks.
func RacksUsed(boxes []models.BoxSummary, layout models.LayoutModel) int {
	perSide := make(map[int]int)
	for _, b := range boxes {
		perSide[sideRank(b.Side)]++
	}
	used := 0
	for _, n := range perSide {
		used = max(used, RacksForBoxes(n, layout))
	}
	return used
}

// AnnualProjection extrapolates a monthly intake to a full year.
func AnnualProjection(monthly int) int {
	return monthly * 12
}

// RacksNeeded is how many rack sides a total number of records fills.
func RacksNeeded(total int, layout models.LayoutModel) int {
	return ceilDiv(total, layout.CapacityPerRackSide())
}

// Project builds the capacity projection for a monthly intake.
func Project(monthly int, layout models.LayoutModel) dtos.ProjectionDTO {
	annual := AnnualProjection(monthly)
	return dtos.ProjectionDTO{
		Monthly:             monthly,
		Annual:              annual,
		BoxesNeeded:         ceilDiv(annual, layout.BoxCapacity),
		RacksNeeded:         RacksNeeded(annual, layout),
		CapacityPerRackSide: layout.CapacityPerRackSide(),
	}
}

// BuildRackView groups boxes by side, rack and level, the way the archive
// shows them as tiles.
func BuildRackView(placements []models.PlacementModel, layout models.LayoutModel) []dtos.RackLevelDTO {
	boxes := SummarizeBoxes(placements, layout)

	type key struct {
		side  int
		rack  string
		level int
	}
	var levels []dtos.RackLevelDTO
	index := make(map[key]int)
	for _, b := range boxes {
		k := key{sideRank(b.Side), b.Rack, b.Level}
		i, ok := index[k]
		if !ok {
			levels = append(levels, dtos.RackLevelDTO{Side: b.Side, Rack: b.Rack, Level: b.Level})
			i = len(levels) - 1
			index[k] = i
		}
		levels[i].Boxes = append(levels[i].Boxes, b)
		levels[i].Occupancy += b.Occupancy
	}

	slices.SortStableFunc(levels, func(a, b dtos.RackLevelDTO) int {
		if c := cmp.Compare(sideRank(a.Side), sideRank(b.Side)); c != 0 {
			return c
		}
		if c := compareNumbers(a.Rack, b.Rack); c != 0 {
			return c
		}
		return cmp.Compare(a.Level, b.Level)
	})
	for i := range levels {
		slices.SortStableFunc(levels[i].Boxes, func(a, b models.BoxSummary) int {
			if a.Position != nil && b.Position != nil {
				if c := cmp.Compare(*a.Position, *b.Position); c != 0 {
					return c
				}
			}
			return compareNumbers(a.Box, b.Box)
		})
	}
	if levels == nil {
		levels = []dtos.RackLevelDTO{}
	}
	return levels
}

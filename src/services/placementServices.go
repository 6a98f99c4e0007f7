package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"go.uber.org/zap"
)

type PlacementService struct {
	logger *zap.Logger
}

// NewPlacementService creates a new instance of PlacementService
func NewPlacementService(logger *zap.Logger) *PlacementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlacementService{logger: logger}
}

// Place assigns a physical location to every record under the given policy.
// The records must already be filtered; the result is recomputed from scratch
// on every call and is identical for identical input.
func (s *PlacementService) Place(records []models.RecordModel, policy models.PolicyName, layout models.LayoutModel) ([]models.PlacementModel, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if !policy.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	var placements []models.PlacementModel
	switch policy {
	case models.PolicyAgeAscending:
		placements = placeAgeAscending(records, layout)
	case models.PolicyOccupancyRanked:
		placements = placeOccupancyRanked(records, layout)
	case models.PolicySequential:
		placements = placeSequential(records, layout)
	case models.PolicyFrontBack:
		placements = placeFrontBack(records, layout)
	}

	s.logger.Debug("comprobantes ubicados",
		zap.String("policy", string(policy)),
		zap.Int("records", len(records)),
		zap.Int("placements", len(placements)))

	return placements, nil
}

func validateRecords(records []models.RecordModel) error {
	for i, r := range records {
		if !r.Type.IsKnown() {
			return fmt.Errorf("%w: registro %d tiene tipo %q, se esperaba PX, PU o PH", ErrInvalidRecord, i+1, r.Type)
		}
		if strings.TrimSpace(r.Number) == "" {
			return fmt.Errorf("%w: registro %d no tiene número", ErrInvalidRecord, i+1)
		}
	}
	return nil
}

// ======================= EMPAQUE POR TIPO =======================

type boxCursor struct {
	box   int // index into packState.boxes of the open box
	count int
}

// packState is the accumulator threaded through the packing fold. It lives
// only for one packByType call.
type packState struct {
	cursors map[models.RecordType]boxCursor
	seq     map[models.RecordType]int
	boxes   []models.BoxModel
}

func (st packState) step(r models.RecordModel, capacity int) packState {
	cur, open := st.cursors[r.Type]
	if !open || cur.count == capacity {
		st.seq[r.Type]++
		seq := st.seq[r.Type]
		st.boxes = append(st.boxes, models.BoxModel{
			ID:       fmt.Sprintf("%s-%02d", r.Type, seq),
			Type:     r.Type,
			Sequence: seq,
		})
		cur = boxCursor{box: len(st.boxes) - 1}
	}
	st.boxes[cur.box].Records = append(st.boxes[cur.box].Records, r)
	cur.count++
	st.cursors[r.Type] = cur
	return st
}

// packByType sorts by (type, number) and fills boxes of capacity records.
// A type never shares a box with another type. Boxes come back in fill order.
func packByType(records []models.RecordModel, capacity int) []models.BoxModel {
	st := packState{
		cursors: make(map[models.RecordType]boxCursor),
		seq:     make(map[models.RecordType]int),
	}
	for _, r := range sortByTypeAndNumber(records) {
		st = st.step(r, capacity)
	}
	return st.boxes
}

// rankLevels gives every box a level by final occupancy, heaviest first.
// Equal occupancy keeps fill order, so the earlier box gets the lower level.
func rankLevels(boxes []models.BoxModel) []int {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return boxes[b].Occupancy() - boxes[a].Occupancy()
	})

	levels := make([]int, len(boxes))
	for rank, i := range order {
		levels[i] = rank + 1
	}
	return levels
}

func placementsFromBoxes(boxes []models.BoxModel, levels []int, rack string) []models.PlacementModel {
	placements := []models.PlacementModel{}
	for i, box := range boxes {
		for _, r := range box.Records {
			placements = append(placements, models.PlacementModel{
				Number:      r.Number,
				Type:        r.Type,
				Rack:        rack,
				Level:       levels[i],
				Box:         box.ID,
				BoxSequence: box.Sequence,
			})
		}
	}
	return placements
}

// Nivel = caja: los más viejos quedan abajo.
func placeAgeAscending(records []models.RecordModel, layout models.LayoutModel) []models.PlacementModel {
	boxes := packByType(records, layout.BoxCapacity)
	levels := make([]int, len(boxes))
	for i, box := range boxes {
		levels[i] = box.Sequence
	}
	return placementsFromBoxes(boxes, levels, layout.RackID)
}

func placeOccupancyRanked(records []models.RecordModel, layout models.LayoutModel) []models.PlacementModel {
	boxes := packByType(records, layout.BoxCapacity)
	return placementsFromBoxes(boxes, rankLevels(boxes), layout.RackID)
}

// ======================= GEOMETRÍA DEL RACK =======================

// locate maps a 0-based box index onto 1-based rack, level and position.
// Positions fill a level before the level advances, levels fill a rack
// before the rack advances.
func locate(boxIndex int, layout models.LayoutModel) (rack, level, position int) {
	perRack := layout.BoxesPerRackSide()
	rack = boxIndex/perRack + 1
	within := boxIndex % perRack
	level = within/layout.PositionsPerLevel + 1
	position = within%layout.PositionsPerLevel + 1
	return rack, level, position
}

func geometricPlacement(r models.RecordModel, i int, layout models.LayoutModel, side *models.Side) models.PlacementModel {
	boxIndex := i / layout.BoxCapacity
	rack, level, position := locate(boxIndex, layout)

	box := fmt.Sprintf("C-%03d", boxIndex+1)
	if side != nil {
		box = fmt.Sprintf("%s-%02d", *side, boxIndex+1)
	}

	return models.PlacementModel{
		Number:      r.Number,
		Type:        r.Type,
		Rack:        strconv.Itoa(rack),
		Level:       level,
		Position:    &position,
		Side:        side,
		Box:         box,
		BoxSequence: boxIndex + 1,
	}
}

// placeSequential walks every record in (type, number) order; boxes may
// hold more than one type.
func placeSequential(records []models.RecordModel, layout models.LayoutModel) []models.PlacementModel {
	sorted := sortByTypeAndNumber(records)
	placements := make([]models.PlacementModel, 0, len(sorted))
	for i, r := range sorted {
		placements = append(placements, geometricPlacement(r, i, layout, nil))
	}
	return placements
}

// placeFrontBack puts PX on the front and PU/PH on the back. Each side has
// its own coordinate space, so rack 1 exists on both.
func placeFrontBack(records []models.RecordModel, layout models.LayoutModel) []models.PlacementModel {
	var front, back []models.RecordModel
	for _, r := range records {
		if r.Type == models.RecordTypePX {
			front = append(front, r)
		} else {
			back = append(back, r)
		}
	}

	placements := make([]models.PlacementModel, 0, len(records))
	for _, group := range []struct {
		side    models.Side
		records []models.RecordModel
	}{
		{models.SideFront, front},
		{models.SideBack, back},
	} {
		side := group.side
		for i, r := range sortByNumber(group.records) {
			placements = append(placements, geometricPlacement(r, i, layout, &side))
		}
	}
	return placements
}

// BuildLayout runs the type filter and the placement engine and derives the
// box summaries shown to the user.
func (s *PlacementService) BuildLayout(records []models.RecordModel, policy models.PolicyName, layout models.LayoutModel) (*models.LayoutResult, error) {
	filtered := FilterRecords(records)
	if filtered.Dropped > 0 {
		s.logger.Warn("comprobantes descartados por tipo desconocido",
			zap.Int("dropped", filtered.Dropped),
			zap.Any("byType", filtered.DroppedByType))
	}

	placements, err := s.Place(filtered.Records, policy, layout)
	if err != nil {
		return nil, err
	}

	boxes := SummarizeBoxes(placements, layout)
	return &models.LayoutResult{
		Policy:     policy,
		Layout:     layout,
		Placements: placements,
		Boxes:      boxes,
		Records:    len(placements),
		Dropped:    filtered.Dropped,
		RacksUsed:  RacksUsed(boxes, layout),
	}, nil
}

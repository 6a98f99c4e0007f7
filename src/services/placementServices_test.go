package services

import (
	"strconv"
	"testing"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(recordType models.RecordType, from, to int) []models.RecordModel {
	records := make([]models.RecordModel, 0, to-from+1)
	for n := from; n <= to; n++ {
		records = append(records, models.RecordModel{Number: strconv.Itoa(n), Type: recordType})
	}
	return records
}

// mixedRecords has unique numbers across types so lookups are unambiguous.
func mixedRecords() []models.RecordModel {
	var records []models.RecordModel
	records = append(records, makeRecords(models.RecordTypePX, 1, 420)...)
	records = append(records, makeRecords(models.RecordTypePU, 1001, 1310)...)
	records = append(records, makeRecords(models.RecordTypePH, 2001, 2035)...)
	// scramble the import order a bit
	for i := 0; i < len(records); i += 7 {
		j := len(records) - 1 - i
		records[i], records[j] = records[j], records[i]
	}
	return records
}

func TestPlace_AgeAscending_OldestFirst(t *testing.T) {
	svc := NewPlacementService(nil)

	placements, err := svc.Place(makeRecords(models.RecordTypePX, 1, 301), models.PolicyAgeAscending, models.DefaultLayout())
	require.NoError(t, err)
	require.Len(t, placements, 301)

	first, last := placements[0], placements[300]
	assert.Equal(t, "1", first.Number)
	assert.Equal(t, "PX-01", first.Box)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, "A", first.Rack)
	assert.Nil(t, first.Position)
	assert.Nil(t, first.Side)

	assert.Equal(t, "301", last.Number)
	assert.Equal(t, "PX-02", last.Box)
	assert.Equal(t, 2, last.Level)
}

func TestPlace_ExactCapacityHasNoTrailingBox(t *testing.T) {
	svc := NewPlacementService(nil)

	for _, policy := range models.Policies {
		t.Run(string(policy), func(t *testing.T) {
			placements, err := svc.Place(makeRecords(models.RecordTypePU, 1, 300), policy, models.DefaultLayout())
			require.NoError(t, err)

			boxes := SummarizeBoxes(placements, models.DefaultLayout())
			require.Len(t, boxes, 1)
			assert.Equal(t, 300, boxes[0].Occupancy)
			assert.Equal(t, 100.0, boxes[0].OccupancyPct)
		})
	}
}

func TestPlace_TypeStartsNewBox(t *testing.T) {
	svc := NewPlacementService(nil)
	records := append(makeRecords(models.RecordTypePH, 1, 10), makeRecords(models.RecordTypePX, 11, 20)...)

	for _, policy := range []models.PolicyName{models.PolicyAgeAscending, models.PolicyOccupancyRanked} {
		t.Run(string(policy), func(t *testing.T) {
			placements, err := svc.Place(records, policy, models.DefaultLayout())
			require.NoError(t, err)

			boxType := make(map[string]models.RecordType)
			for _, p := range placements {
				if seen, ok := boxType[p.Box]; ok {
					assert.Equal(t, seen, p.Type, "box %s mixes types", p.Box)
				}
				boxType[p.Box] = p.Type
			}
			assert.Equal(t, map[string]models.RecordType{"PH-01": "PH", "PX-01": "PX"}, boxType)
		})
	}
}

func TestPlace_Coverage(t *testing.T) {
	svc := NewPlacementService(nil)
	records := mixedRecords()
	layout := models.LayoutModel{BoxCapacity: 40, PositionsPerLevel: 3, LevelsPerRack: 2, RackID: "B"}

	for _, policy := range models.Policies {
		t.Run(string(policy), func(t *testing.T) {
			placements, err := svc.Place(records, policy, layout)
			require.NoError(t, err)
			require.Len(t, placements, len(records))

			seen := make(map[models.RecordModel]int)
			for _, p := range placements {
				seen[models.RecordModel{Number: p.Number, Type: p.Type}]++
			}
			for _, r := range records {
				assert.Equal(t, 1, seen[r], "record %v", r)
			}
		})
	}
}

func TestPlace_BoxCapacityNeverExceeded(t *testing.T) {
	svc := NewPlacementService(nil)
	layout := models.LayoutModel{BoxCapacity: 25, PositionsPerLevel: 4, LevelsPerRack: 3, RackID: "A"}

	for _, policy := range models.Policies {
		t.Run(string(policy), func(t *testing.T) {
			placements, err := svc.Place(mixedRecords(), policy, layout)
			require.NoError(t, err)

			for _, box := range SummarizeBoxes(placements, layout) {
				assert.LessOrEqual(t, box.Occupancy, layout.BoxCapacity, box.Box)
				assert.Positive(t, box.Occupancy, box.Box)
				assert.Equal(t, box.Occupancy, Occupancy(placements, box.Box))
			}
		})
	}
}

func TestPlace_Deterministic(t *testing.T) {
	svc := NewPlacementService(nil)
	records := mixedRecords()
	snapshot := append([]models.RecordModel(nil), records...)

	for _, policy := range models.Policies {
		t.Run(string(policy), func(t *testing.T) {
			a, err := svc.Place(records, policy, models.DefaultLayout())
			require.NoError(t, err)
			b, err := svc.Place(records, policy, models.DefaultLayout())
			require.NoError(t, err)

			assert.Equal(t, a, b)
			assert.Equal(t, snapshot, records, "input must not be reordered")
		})
	}
}

func TestPlace_LevelsAndRacksAreOneBasedAndMonotonic(t *testing.T) {
	svc := NewPlacementService(nil)
	layout := models.LayoutModel{BoxCapacity: 10, PositionsPerLevel: 3, LevelsPerRack: 2, RackID: "A"}

	for _, policy := range []models.PolicyName{models.PolicyAgeAscending, models.PolicySequential, models.PolicyFrontBack} {
		t.Run(string(policy), func(t *testing.T) {
			placements, err := svc.Place(makeRecords(models.RecordTypePX, 1, 200), policy, layout)
			require.NoError(t, err)

			prevRack, prevLevel, prevSeq := 0, 0, 0
			for _, p := range placements {
				rack, err := strconv.Atoi(p.Rack)
				if err != nil {
					rack = 1
				}
				require.GreaterOrEqual(t, p.Level, 1)
				require.GreaterOrEqual(t, rack, 1)
				if p.BoxSequence > prevSeq {
					assert.True(t, rack > prevRack || (rack == prevRack && p.Level >= prevLevel),
						"box %s went back to rack %d level %d", p.Box, rack, p.Level)
				}
				prevRack, prevLevel, prevSeq = rack, p.Level, p.BoxSequence
			}
		})
	}
}

func TestRankLevels_TiesKeepFillOrder(t *testing.T) {
	box := func(id string, n int) models.BoxModel {
		return models.BoxModel{ID: id, Records: make([]models.RecordModel, n)}
	}
	boxes := []models.BoxModel{box("a", 300), box("b", 5), box("c", 300), box("d", 5), box("e", 120)}

	assert.Equal(t, []int{1, 4, 2, 5, 3}, rankLevels(boxes))
	assert.Empty(t, rankLevels(nil))
}

func TestPackByType_TwoPasses(t *testing.T) {
	records := append(makeRecords(models.RecordTypePX, 1, 350), makeRecords(models.RecordTypePU, 1, 100)...)

	boxes := packByType(records, 300)
	require.Len(t, boxes, 3)
	assert.Equal(t, "PU-01", boxes[0].ID)
	assert.Equal(t, 100, boxes[0].Occupancy())
	assert.Equal(t, "PX-01", boxes[1].ID)
	assert.Equal(t, 300, boxes[1].Occupancy())
	assert.Equal(t, "PX-02", boxes[2].ID)
	assert.Equal(t, 50, boxes[2].Occupancy())
	assert.Equal(t, []int{2, 1, 3}, rankLevels(boxes))
}

func TestPlace_OccupancyRanked(t *testing.T) {
	svc := NewPlacementService(nil)
	records := append(makeRecords(models.RecordTypePX, 1, 350), makeRecords(models.RecordTypePU, 1, 100)...)

	placements, err := svc.Place(records, models.PolicyOccupancyRanked, models.DefaultLayout())
	require.NoError(t, err)

	levels := make(map[string]int)
	for _, p := range placements {
		levels[p.Box] = p.Level
		assert.Equal(t, "A", p.Rack)
	}
	assert.Equal(t, map[string]int{"PX-01": 1, "PU-01": 2, "PX-02": 3}, levels)
}

func TestPlace_SequentialGeometry(t *testing.T) {
	svc := NewPlacementService(nil)
	layout := models.LayoutModel{BoxCapacity: 2, PositionsPerLevel: 2, LevelsPerRack: 2}
	records := append(makeRecords(models.RecordTypePX, 1, 7), makeRecords(models.RecordTypePH, 1, 3)...)

	placements, err := svc.Place(records, models.PolicySequential, layout)
	require.NoError(t, err)
	require.Len(t, placements, 10)

	type coord struct {
		number   string
		rtype    models.RecordType
		box      string
		rack     string
		level    int
		position int
	}
	got := make([]coord, len(placements))
	for i, p := range placements {
		require.NotNil(t, p.Position)
		assert.Nil(t, p.Side)
		got[i] = coord{p.Number, p.Type, p.Box, p.Rack, p.Level, *p.Position}
	}

	assert.Equal(t, []coord{
		{"1", "PH", "C-001", "1", 1, 1},
		{"2", "PH", "C-001", "1", 1, 1},
		{"3", "PH", "C-002", "1", 1, 2},
		{"1", "PX", "C-002", "1", 1, 2},
		{"2", "PX", "C-003", "1", 2, 1},
		{"3", "PX", "C-003", "1", 2, 1},
		{"4", "PX", "C-004", "1", 2, 2},
		{"5", "PX", "C-004", "1", 2, 2},
		{"6", "PX", "C-005", "2", 1, 1},
		{"7", "PX", "C-005", "2", 1, 1},
	}, got)
}

func TestPlace_FrontBackSides(t *testing.T) {
	svc := NewPlacementService(nil)
	layout := models.LayoutModel{BoxCapacity: 50, PositionsPerLevel: 10, LevelsPerRack: 5}
	records := append(makeRecords(models.RecordTypePU, 1001, 1150), makeRecords(models.RecordTypePX, 1, 150)...)

	placements, err := svc.Place(records, models.PolicyFrontBack, layout)
	require.NoError(t, err)
	require.Len(t, placements, 300)

	for i, p := range placements {
		require.NotNil(t, p.Side)
		require.NotNil(t, p.Position)
		if i < 150 {
			assert.Equal(t, models.RecordTypePX, p.Type)
			assert.Equal(t, models.SideFront, *p.Side)
		} else {
			assert.Equal(t, models.RecordTypePU, p.Type)
			assert.Equal(t, models.SideBack, *p.Side)
		}
	}

	front, back := placements[0], placements[150]
	assert.Equal(t, "1", front.Number)
	assert.Equal(t, "Frente-01", front.Box)
	assert.Equal(t, "1001", back.Number)
	assert.Equal(t, "Fondo-01", back.Box)
	for _, p := range []models.PlacementModel{front, back} {
		assert.Equal(t, "1", p.Rack)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, 1, *p.Position)
	}

	lastFront := placements[149]
	assert.Equal(t, "Frente-03", lastFront.Box)
	assert.Equal(t, 3, *lastFront.Position)
}

func TestPlace_FrontBackRollsOverLevelsAndRacks(t *testing.T) {
	svc := NewPlacementService(nil)
	layout := models.LayoutModel{BoxCapacity: 1, PositionsPerLevel: 2, LevelsPerRack: 2}
	records := append(makeRecords(models.RecordTypePX, 1, 5), makeRecords(models.RecordTypePH, 10, 10)...)

	placements, err := svc.Place(records, models.PolicyFrontBack, layout)
	require.NoError(t, err)

	type coord struct {
		rack            string
		level, position int
	}
	var got []coord
	for _, p := range placements {
		got = append(got, coord{p.Rack, p.Level, *p.Position})
	}
	assert.Equal(t, []coord{
		{"1", 1, 1}, {"1", 1, 2}, {"1", 2, 1}, {"1", 2, 2}, {"2", 1, 1},
		{"1", 1, 1},
	}, got)
}

func TestPlace_NumericOrdering(t *testing.T) {
	svc := NewPlacementService(nil)
	records := []models.RecordModel{
		{Number: "100", Type: "PX"},
		{Number: "9", Type: "PX"},
		{Number: "A-7", Type: "PX"},
		{Number: "10", Type: "PX"},
	}
	layout := models.LayoutModel{BoxCapacity: 1, PositionsPerLevel: 10, LevelsPerRack: 5, RackID: "A"}

	placements, err := svc.Place(records, models.PolicyAgeAscending, layout)
	require.NoError(t, err)

	var order []string
	for _, p := range placements {
		order = append(order, p.Number+"@"+strconv.Itoa(p.Level))
	}
	assert.Equal(t, []string{"9@1", "10@2", "100@3", "A-7@4"}, order)
}

func TestPlace_Empty(t *testing.T) {
	svc := NewPlacementService(nil)

	for _, policy := range models.Policies {
		placements, err := svc.Place(nil, policy, models.DefaultLayout())
		require.NoError(t, err)
		assert.NotNil(t, placements)
		assert.Empty(t, placements)
	}
}

func TestPlace_RejectsInvalidInput(t *testing.T) {
	svc := NewPlacementService(nil)
	valid := makeRecords(models.RecordTypePX, 1, 3)

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Place([]models.RecordModel{{Number: "1", Type: "XX"}}, models.PolicyAgeAscending, models.DefaultLayout())
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("blank number", func(t *testing.T) {
		_, err := svc.Place([]models.RecordModel{{Number: " ", Type: "PX"}}, models.PolicyAgeAscending, models.DefaultLayout())
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("zero capacity", func(t *testing.T) {
		layout := models.DefaultLayout()
		layout.BoxCapacity = 0
		_, err := svc.Place(valid, models.PolicySequential, layout)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := svc.Place(valid, "newest-first", models.DefaultLayout())
		assert.ErrorIs(t, err, ErrUnknownPolicy)
	})
}

func TestBuildLayout_ReportsDroppedRows(t *testing.T) {
	svc := NewPlacementService(nil)
	records := append(makeRecords(models.RecordTypePX, 1, 5),
		models.RecordModel{Number: "6", Type: "px"},
		models.RecordModel{Number: "7", Type: "ZZ"},
		models.RecordModel{Number: "8", Type: "ZZ"},
	)

	result, err := svc.BuildLayout(records, models.PolicyAgeAscending, models.DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Records)
	assert.Equal(t, 3, result.Dropped)
	assert.Equal(t, 1, result.RacksUsed)
	require.Len(t, result.Boxes, 1)
	assert.Equal(t, "PX-01", result.Boxes[0].Box)
}

func TestBuildLayout_AllRowsUnknown(t *testing.T) {
	svc := NewPlacementService(nil)
	records := []models.RecordModel{{Number: "1", Type: "FA"}, {Number: "2", Type: ""}}

	result, err := svc.BuildLayout(records, models.PolicyFrontBack, models.DefaultLayout())
	require.NoError(t, err)
	assert.Empty(t, result.Placements)
	assert.Empty(t, result.Boxes)
	assert.Equal(t, 2, result.Dropped)
	assert.Zero(t, result.RacksUsed)
}

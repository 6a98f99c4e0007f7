package models

import "fmt"

const (
	DefaultBoxCapacity       = 300
	DefaultPositionsPerLevel = 10
	DefaultLevelsPerRack     = 5
	DefaultRackID            = "A"
)

// LayoutModel holds the shelving constants. They affect layout granularity,
// never a hard ceiling: racks and levels are unbounded.
type LayoutModel struct {
	BoxCapacity       int    `json:"boxCapacity" yaml:"box_capacity"`
	PositionsPerLevel int    `json:"positionsPerLevel" yaml:"positions_per_level"`
	LevelsPerRack     int    `json:"levelsPerRack" yaml:"levels_per_rack"`
	RackID            string `json:"rackId" yaml:"rack_id"`
}

func DefaultLayout() LayoutModel {
	return LayoutModel{
		BoxCapacity:       DefaultBoxCapacity,
		PositionsPerLevel: DefaultPositionsPerLevel,
		LevelsPerRack:     DefaultLevelsPerRack,
		RackID:            DefaultRackID,
	}
}

// BoxesPerRackSide is the number of box slots on one side of a rack.
func (l LayoutModel) BoxesPerRackSide() int {
	return l.PositionsPerLevel * l.LevelsPerRack
}

// CapacityPerRackSide is the number of records one side of a rack can hold.
func (l LayoutModel) CapacityPerRackSide() int {
	return l.BoxesPerRackSide() * l.BoxCapacity
}

// Validate checks that every constant is usable as a divisor.
func (l LayoutModel) Validate() error {
	if l.BoxCapacity <= 0 {
		return fmt.Errorf("boxCapacity debe ser mayor a 0 (recibido %d)", l.BoxCapacity)
	}
	if l.PositionsPerLevel <= 0 {
		return fmt.Errorf("positionsPerLevel debe ser mayor a 0 (recibido %d)", l.PositionsPerLevel)
	}
	if l.LevelsPerRack <= 0 {
		return fmt.Errorf("levelsPerRack debe ser mayor a 0 (recibido %d)", l.LevelsPerRack)
	}
	return nil
}

type PolicyName string

const (
	// PolicyAgeAscending: per type, oldest number first, level = box sequence.
	PolicyAgeAscending PolicyName = "age-ascending"
	// PolicyOccupancyRanked: per type packing, level = rank by final occupancy.
	PolicyOccupancyRanked PolicyName = "occupancy-ranked"
	// PolicySequential: one cross-type pass mapped onto rack/level/position.
	PolicySequential PolicyName = "sequential"
	// PolicyFrontBack: PX on the front side, PU/PH on the back side.
	PolicyFrontBack PolicyName = "front-back"
)

var Policies = []PolicyName{
	PolicyAgeAscending,
	PolicyOccupancyRanked,
	PolicySequential,
	PolicyFrontBack,
}

func (p PolicyName) IsValid() bool {
	for _, known := range Policies {
		if p == known {
			return true
		}
	}
	return false
}

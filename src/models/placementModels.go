package models

type Side string

const (
	SideFront Side = "Frente"
	SideBack  Side = "Fondo"
)

// BoxModel is a packed box before it is given a physical coordinate.
// Sequence is 1-based within the box space the policy packs into.
type BoxModel struct {
	ID       string        `json:"id"`
	Type     RecordType    `json:"type,omitempty"`
	Side     *Side         `json:"side,omitempty"`
	Sequence int           `json:"sequence"`
	Records  []RecordModel `json:"records"`
}

func (b BoxModel) Occupancy() int {
	return len(b.Records)
}

// PlacementModel is the physical location of one record. Position and Side
// are only set by the geometric policies.
type PlacementModel struct {
	Number      string     `json:"number"`
	Type        RecordType `json:"type"`
	Rack        string     `json:"rack"`
	Level       int        `json:"level"`
	Position    *int       `json:"position,omitempty"`
	Side        *Side      `json:"side,omitempty"`
	Box         string     `json:"box"`
	BoxSequence int        `json:"boxSequence"`
}

// BoxSummary is the per-box occupancy view derived from placements.
type BoxSummary struct {
	Box          string     `json:"box"`
	Type         RecordType `json:"type,omitempty"`
	Rack         string     `json:"rack"`
	Level        int        `json:"level"`
	Position     *int       `json:"position,omitempty"`
	Side         *Side      `json:"side,omitempty"`
	Occupancy    int        `json:"occupancy"`
	OccupancyPct float64    `json:"occupancyPct"`
}

// LayoutResult is everything one import-and-place cycle produces.
type LayoutResult struct {
	Policy     PolicyName       `json:"policy"`
	Layout     LayoutModel      `json:"layout"`
	Placements []PlacementModel `json:"placements"`
	Boxes      []BoxSummary     `json:"boxes"`
	Records    int              `json:"records"`
	Dropped    int              `json:"dropped"`
	RacksUsed  int              `json:"racksUsed"`
}

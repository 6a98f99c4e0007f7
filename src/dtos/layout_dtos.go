package dtos

import "github.com/ARQAP/AppArchivo-Backend/src/models"

// LayoutSessionDTO is returned after an import: the computed layout plus the
// session id used for later lookups and downloads.
type LayoutSessionDTO struct {
	SessionID string `json:"sessionId"`
	*models.LayoutResult
}

// RackLevelDTO is one shelf tier of a rack with the boxes it holds.
type RackLevelDTO struct {
	Side      *models.Side        `json:"side,omitempty"`
	Rack      string              `json:"rack"`
	Level     int                 `json:"level"`
	Occupancy int                 `json:"occupancy"`
	Boxes     []models.BoxSummary `json:"boxes"`
}

// ProjectionDTO answers "how many racks will a year of intake need".
type ProjectionDTO struct {
	Monthly             int `json:"monthly"`
	Annual              int `json:"annual"`
	BoxesNeeded         int `json:"boxesNeeded"`
	RacksNeeded         int `json:"racksNeeded"`
	CapacityPerRackSide int `json:"capacityPerRackSide"`
}

// LayoutOptionsDTO carries the per-request overrides of the configured
// layout. Zero values keep the default.
type LayoutOptionsDTO struct {
	Policy            string `json:"policy" form:"policy"`
	BoxCapacity       int    `json:"boxCapacity" form:"boxCapacity"`
	PositionsPerLevel int    `json:"positionsPerLevel" form:"positionsPerLevel"`
	LevelsPerRack     int    `json:"levelsPerRack" form:"levelsPerRack"`
	RackID            string `json:"rackId" form:"rackId"`
}

// Apply resolves the options against the configured defaults.
func (o LayoutOptionsDTO) Apply(policy models.PolicyName, layout models.LayoutModel) (models.PolicyName, models.LayoutModel) {
	if o.Policy != "" {
		policy = models.PolicyName(o.Policy)
	}
	if o.BoxCapacity != 0 {
		layout.BoxCapacity = o.BoxCapacity
	}
	if o.PositionsPerLevel != 0 {
		layout.PositionsPerLevel = o.PositionsPerLevel
	}
	if o.LevelsPerRack != 0 {
		layout.LevelsPerRack = o.LevelsPerRack
	}
	if o.RackID != "" {
		layout.RackID = o.RackID
	}
	return policy, layout
}

type DriveImportDTO struct {
	URL string `json:"url" binding:"required"`
	LayoutOptionsDTO
}

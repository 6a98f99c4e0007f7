package dtos

import "github.com/ARQAP/AppArchivo-Backend/src/models"

type LookupRequestDTO struct {
	Numbers string `json:"numbers" binding:"required"`
}

// LookupGroupDTO counts the matched records inside one box.
type LookupGroupDTO struct {
	Rack  string       `json:"rack"`
	Level int          `json:"level"`
	Box   string       `json:"box"`
	Side  *models.Side `json:"side,omitempty"`
	Count int          `json:"count"`
}

// BatchLookupDTO is the result of a batch lookup. Placements are sorted for a
// physical walk; Found is false only when nothing matched.
type BatchLookupDTO struct {
	Requested  int                     `json:"requested"`
	Found      bool                    `json:"found"`
	Placements []models.PlacementModel `json:"placements"`
	Groups     []LookupGroupDTO        `json:"groups"`
}

package services

import (
	"io"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"go.uber.org/zap"
)

// LayoutService runs a full import-and-place cycle: read the file, filter by
// type, place every record and summarize the boxes.
type LayoutService struct {
	importer  *ImportService
	placement *PlacementService
	logger    *zap.Logger
}

// NewLayoutService creates a new instance of LayoutService
func NewLayoutService(importer *ImportService, placement *PlacementService, logger *zap.Logger) *LayoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LayoutService{
		importer:  importer,
		placement: placement,
		logger:    logger,
	}
}

func (s *LayoutService) ImportAndPlace(r io.Reader, filename string, policy models.PolicyName, layout models.LayoutModel) (*models.LayoutResult, error) {
	records, err := s.importer.ImportFile(r, filename)
	if err != nil {
		return nil, err
	}

	result, err := s.placement.BuildLayout(records, policy, layout)
	if err != nil {
		return nil, err
	}

	s.logger.Info("layout calculado",
		zap.String("file", filename),
		zap.String("policy", string(policy)),
		zap.Int("records", result.Records),
		zap.Int("dropped", result.Dropped),
		zap.Int("boxes", len(result.Boxes)),
		zap.Int("racks", result.RacksUsed))

	return result, nil
}

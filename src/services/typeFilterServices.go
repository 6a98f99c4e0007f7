package services

import "github.com/ARQAP/AppArchivo-Backend/src/models"

// FilterResult keeps the records that survive the type filter together with
// the count of rows that were dropped, so callers can decide whether to warn.
type FilterResult struct {
	Records       []models.RecordModel `json:"records"`
	Dropped       int                  `json:"dropped"`
	DroppedByType map[string]int       `json:"droppedByType,omitempty"`
}

// FilterRecords keeps only PX, PU and PH records, preserving import order.
// Unknown type codes are not an error.
func FilterRecords(records []models.RecordModel) FilterResult {
	result := FilterResult{Records: make([]models.RecordModel, 0, len(records))}
	for _, r := range records {
		if r.Type.IsKnown() {
			result.Records = append(result.Records, r)
			continue
		}
		if result.DroppedByType == nil {
			result.DroppedByType = make(map[string]int)
		}
		result.DroppedByType[string(r.Type)]++
		result.Dropped++
	}
	return result
}

package models

type RecordType string

const (
	RecordTypePX RecordType = "PX"
	RecordTypePU RecordType = "PU"
	RecordTypePH RecordType = "PH"
)

// KnownRecordTypes lists the only type codes the archive accepts.
var KnownRecordTypes = []RecordType{RecordTypePX, RecordTypePU, RecordTypePH}

// IsKnown reports whether t is one of PX, PU or PH. Matching is case sensitive.
func (t RecordType) IsKnown() bool {
	switch t {
	case RecordTypePX, RecordTypePU, RecordTypePH:
		return true
	}
	return false
}

// RecordModel is a single comprobante as read from the import: column A is the
// number, column B the type code.
type RecordModel struct {
	Number string     `json:"number"`
	Type   RecordType `json:"type"`
}

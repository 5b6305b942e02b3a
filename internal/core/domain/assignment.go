package domain

import "time"

// Assignment records one custody event for an asset. An assignment with a nil
// ReturnedAt is "open"; at most one open assignment may exist per asset, and
// its presence must correlate with the asset being in ASSIGNED status.
type Assignment struct {
	AssignmentID string     `json:"assignmentID"` // Primary Key (e.g., UUID)
	AssetID      string     `json:"assetID"`      // FK -> assets (Not Null)
	AssigneeID   string     `json:"assigneeID"`   // External identifier of the custodian (Not Null)
	AssigneeName *string    `json:"assigneeName"`
	AssignedAt   time.Time  `json:"assignedAt"`
	ReturnedAt   *time.Time `json:"returnedAt"` // Nil while the assignment is open
	Notes        *string    `json:"notes"`
}

// IsOpen reports whether the assignment represents an active custody relationship.
func (a Assignment) IsOpen() bool {
	return a.ReturnedAt == nil
}

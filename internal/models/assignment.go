package models

import "time"

// Assignment is the database representation of one custody event.
type Assignment struct {
	AssignmentID string     `json:"assignmentID"`
	AssetID      string     `json:"assetID"`
	AssigneeID   string     `json:"assigneeID"`
	AssigneeName *string    `json:"assigneeName"`
	AssignedAt   time.Time  `json:"assignedAt"`
	ReturnedAt   *time.Time `json:"returnedAt"`
	Notes        *string    `json:"notes"`
}

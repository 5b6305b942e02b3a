package mapping

import (
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
)

// ToModelAssignment converts a domain Assignment to a model Assignment.
func ToModelAssignment(d domain.Assignment) models.Assignment {
	return models.Assignment{
		AssignmentID: d.AssignmentID,
		AssetID:      d.AssetID,
		AssigneeID:   d.AssigneeID,
		AssigneeName: d.AssigneeName,
		AssignedAt:   d.AssignedAt,
		ReturnedAt:   d.ReturnedAt,
		Notes:        d.Notes,
	}
}

// ToDomainAssignment converts a model Assignment to a domain Assignment.
func ToDomainAssignment(m models.Assignment) domain.Assignment {
	return domain.Assignment{
		AssignmentID: m.AssignmentID,
		AssetID:      m.AssetID,
		AssigneeID:   m.AssigneeID,
		AssigneeName: m.AssigneeName,
		AssignedAt:   m.AssignedAt,
		ReturnedAt:   m.ReturnedAt,
		Notes:        m.Notes,
	}
}

// ToDomainAssignmentSlice converts a slice of model Assignments to domain Assignments.
func ToDomainAssignmentSlice(ms []models.Assignment) []domain.Assignment {
	ds := make([]domain.Assignment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssignment(m)
	}
	return ds
}

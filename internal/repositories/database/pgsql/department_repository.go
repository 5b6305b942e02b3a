package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hecate-codex/asset_mgmt_app/internal/apperrors"
	"github.com/hecate-codex/asset_mgmt_app/internal/core/domain"
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	"github.com/hecate-codex/asset_mgmt_app/internal/models"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/mapping"
	"github.com/hecate-codex/asset_mgmt_app/internal/utils/pagination"
)

const departmentColumns = `department_id, name, description, parent_department_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

func scanDepartment(row pgx.Row) (models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.DepartmentID,
		&department.Name,
		&department.Description,
		&department.ParentDepartmentID,
		&department.CreatedAt,
		&department.CreatedBy,
		&department.LastUpdatedAt,
		&department.LastUpdatedBy,
	)
	return department, err
}

// SaveDepartment inserts a new department.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	modelDepartment := mapping.ToModelDepartment(department)

	query := `
		INSERT INTO departments (` + departmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelDepartment.DepartmentID,
		modelDepartment.Name,
		modelDepartment.Description,
		modelDepartment.ParentDepartmentID,
		modelDepartment.CreatedAt,
		modelDepartment.CreatedBy,
		modelDepartment.LastUpdatedAt,
		modelDepartment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save department %s: %w", modelDepartment.DepartmentID, err)
	}
	return nil
}

// FindDepartmentByID retrieves a department by its id.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE department_id = $1;`

	modelDepartment, err := scanDepartment(r.Pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("department %s not found", departmentID))
		}
		return nil, fmt.Errorf("failed to find department %s: %w", departmentID, err)
	}

	domainDepartment := mapping.ToDomainDepartment(modelDepartment)
	return &domainDepartment, nil
}

// ListDepartments retrieves a page of departments using token-based pagination.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context, limit int, nextToken *string) ([]domain.Department, *string, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments`
	args := []interface{}{}
	argPos := 1

	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		query += fmt.Sprintf(" WHERE (created_at, department_id) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, tokenTime, tokenID)
		argPos += 2
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, department_id DESC LIMIT $%d", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	modelDepartments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		return scanDepartment(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan departments: %w", err)
	}

	var token *string
	if len(modelDepartments) > limit {
		modelDepartments = modelDepartments[:limit]
		last := modelDepartments[len(modelDepartments)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.DepartmentID)
		token = &encoded
	}

	return mapping.ToDomainDepartmentSlice(modelDepartments), token, nil
}

// UpdateDepartment updates the mutable fields of a department.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	modelDepartment := mapping.ToModelDepartment(department)

	query := `
		UPDATE departments SET
			name = $2,
			description = $3,
			parent_department_id = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE department_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelDepartment.DepartmentID,
		modelDepartment.Name,
		modelDepartment.Description,
		modelDepartment.ParentDepartmentID,
		modelDepartment.LastUpdatedAt,
		modelDepartment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update department %s: %w", modelDepartment.DepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("department %s not found", modelDepartment.DepartmentID))
	}
	return nil
}

// DeleteDepartment removes a department.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("department %s not found", departmentID))
	}
	return nil
}

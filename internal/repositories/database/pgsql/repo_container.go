package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository implementation into a
// provider the service container consumes.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AssetRepository:        newPgxAssetRepository(pool),
		CategoryRepository:     newPgxCategoryRepository(pool),
		DepreciationRepository: newPgxDepreciationRepository(pool),
		MaintenanceRepository:  newPgxMaintenanceRepository(pool),
		LocationRepository:     newPgxLocationRepository(pool),
		DepartmentRepository:   newPgxDepartmentRepository(pool),
		VendorRepository:       newPgxVendorRepository(pool),
		UserRepository:         newPgxUserRepository(pool),
		ReportingRepository:    newPgxReportingRepository(pool),
	}
}

package services

import (
	portsrepo "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
)

// NewServiceContainer wires every service to its repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	categorySvc := NewCategoryService(repos.CategoryRepository)
	assetSvc := NewAssetService(repos.AssetRepository, categorySvc)

	return &portssvc.ServiceContainer{
		AssetSvc:        assetSvc,
		CategorySvc:     categorySvc,
		DepreciationSvc: NewDepreciationService(repos.AssetRepository, repos.DepreciationRepository),
		MaintenanceSvc:  NewMaintenanceService(repos.MaintenanceRepository, repos.AssetRepository),
		LocationSvc:     NewLocationService(repos.LocationRepository),
		DepartmentSvc:   NewDepartmentService(repos.DepartmentRepository),
		VendorSvc:       NewVendorService(repos.VendorRepository),
		UserSvc:         NewUserService(repos.UserRepository),
		ReportingSvc:    NewReportingService(repos.ReportingRepository),
	}
}

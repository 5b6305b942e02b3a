package repositories

// RepositoryProvider holds all repository implementations and is handed to
// the service container at startup.
type RepositoryProvider struct {
	AssetRepository        AssetRepositoryWithTx
	CategoryRepository     CategoryRepositoryFacade
	DepreciationRepository DepreciationRepositoryFacade
	MaintenanceRepository  MaintenanceRepositoryFacade
	LocationRepository     LocationRepositoryFacade
	DepartmentRepository   DepartmentRepositoryFacade
	VendorRepository       VendorRepositoryFacade
	UserRepository         UserRepositoryFacade
	ReportingRepository    ReportingRepositoryFacade
}

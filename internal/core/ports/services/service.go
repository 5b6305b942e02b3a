package services

// ServiceContainer holds all service implementations and is handed to the
// HTTP handlers at startup.
type ServiceContainer struct {
	AssetSvc        AssetSvcFacade
	CategorySvc     CategorySvcFacade
	DepreciationSvc DepreciationSvcFacade
	MaintenanceSvc  MaintenanceSvcFacade
	LocationSvc     LocationSvcFacade
	DepartmentSvc   DepartmentSvcFacade
	VendorSvc       VendorSvcFacade
	UserSvc         UserSvcFacade
	ReportingSvc    ReportingSvcFacade
}

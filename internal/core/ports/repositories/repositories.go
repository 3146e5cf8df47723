package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	CompanyRepo CompanyRepositoryFacade
	InvoiceRepo InvoiceRepositoryFacade
}

package services

import (
	portsrepo "github.com/biztrack/biztrack_app/internal/core/ports/repositories"
	portssvc "github.com/biztrack/biztrack_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Company = NewCompanyService(repos.CompanyRepo)
	// Invoice detail embeds the owning company, so the invoice service also
	// reads from the company repository.
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CompanyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade = (*companyService)(nil)
	_ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)
)

package repositories

import (
	"context"

	"github.com/biztrack/biztrack_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByCode retrieves a specific company by its code.
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)

	// FindCompanies retrieves all companies ordered by code.
	FindCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany replaces an existing company's name and description.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeleteCompany removes a company by code, cascading to its invoices.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

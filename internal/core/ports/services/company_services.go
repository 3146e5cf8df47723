package services

import (
	"context"

	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/biztrack/biztrack_app/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByCode retrieves a company by its code.
	GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error)

	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany creates a new company with a client-supplied code.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// UpdateCompany replaces the name and description of an existing company.
	UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes a company and, by cascade, its invoices.
	DeleteCompany(ctx context.Context, code string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}

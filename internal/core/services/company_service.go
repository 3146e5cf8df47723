package services

import (
	"context"
	"fmt"

	"github.com/biztrack/biztrack_app/internal/core/domain"
	portsrepo "github.com/biztrack/biztrack_app/internal/core/ports/repositories"
	"github.com/biztrack/biztrack_app/internal/dto"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company service over the given repository.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) *companyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company in service: %w", err)
	}

	return &company, nil
}

func (s *companyService) GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get company by code in service: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.FindCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies in service: %w", err)
	}
	// Return empty slice if no companies found, not nil
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	err := s.companyRepo.UpdateCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to update company in service: %w", err)
	}

	return &company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, code string) error {
	if err := s.companyRepo.DeleteCompany(ctx, code); err != nil {
		return fmt.Errorf("failed to delete company in service: %w", err)
	}
	return nil
}

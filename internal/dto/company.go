package dto

import (
	"github.com/biztrack/biztrack_app/internal/core/domain"
)

// CreateCompanyRequest defines the data needed to create a new company.
// The code is supplied by the client, not generated.
type CreateCompanyRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateCompanyRequest defines the data for a full replace of a company's
// mutable fields.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyListItem is the lightweight projection used in list responses.
type CompanyListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyEnvelope wraps a single company response body.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// ListCompaniesResponse wraps the companies list response body.
type ListCompaniesResponse struct {
	Companies []CompanyListItem `json:"companies"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToListCompaniesResponse converts a slice of domain.Company to the list envelope
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	items := make([]CompanyListItem, len(companies))
	for i, c := range companies {
		items[i] = CompanyListItem{Code: c.Code, Name: c.Name}
	}
	return ListCompaniesResponse{Companies: items}
}

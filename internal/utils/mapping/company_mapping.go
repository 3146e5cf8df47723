package mapping

import (
	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/biztrack/biztrack_app/internal/models"
)

// ToModelCompany converts a domain.Company to its database model.
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
	}
}

// ToDomainCompany converts a database model to a domain.Company.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
	}
}

// ToDomainCompanySlice converts a slice of models to domain companies.
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}

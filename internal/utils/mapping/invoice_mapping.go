package mapping

import (
	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/biztrack/biztrack_app/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its database model.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		ID:       d.ID,
		CompCode: d.CompCode,
		Amt:      d.Amt,
		Paid:     d.Paid,
		AddDate:  d.AddDate,
		PaidDate: d.PaidDate,
	}
}

// ToDomainInvoice converts a database model to a domain.Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:       m.ID,
		CompCode: m.CompCode,
		Amt:      m.Amt,
		Paid:     m.Paid,
		AddDate:  m.AddDate,
		PaidDate: m.PaidDate,
	}
}

// ToDomainInvoiceSlice converts a slice of models to domain invoices.
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

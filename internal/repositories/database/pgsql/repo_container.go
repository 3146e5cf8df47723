package pgsql

import (
	portsrepo "github.com/biztrack/biztrack_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo: companyRepo,
		InvoiceRepo: invoiceRepo,
	}
}

package repositories

import (
	"context"

	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its id.
	FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error)

	// FindInvoices retrieves all invoices ordered by id.
	FindInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and fills in the store-generated
	// fields (id, paid, add_date, paid_date) on the passed struct.
	SaveInvoice(ctx context.Context, invoice *domain.Invoice) error

	// UpdateInvoiceAmount sets a new amount on an existing invoice and
	// returns the full updated row.
	UpdateInvoiceAmount(ctx context.Context, id int64, amt decimal.Decimal) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice by id.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

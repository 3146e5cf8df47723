package services

import (
	"context"

	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/biztrack/biztrack_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its owning company embedded.
	GetInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error)

	// ListInvoices retrieves all invoices.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice creates a new invoice for an existing company.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoice sets a new amount on an existing invoice.
	UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}

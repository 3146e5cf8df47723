package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	"github.com/biztrack/biztrack_app/internal/core/domain"
	portsrepo "github.com/biztrack/biztrack_app/internal/core/ports/repositories"
	"github.com/biztrack/biztrack_app/internal/dto"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewInvoiceService creates the invoice service. The company reader is needed
// to assemble the nested detail view.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, companyRepo portsrepo.CompanyReader) *invoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice := domain.Invoice{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	}

	err := s.invoiceRepo.SaveInvoice(ctx, &invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}

	return &invoice, nil
}

// GetInvoiceByID performs two sequential reads: the invoice row, then the
// owning company. The reads are not wrapped in a transaction; if the company
// disappears between them the detail view carries a nil company instead of
// failing.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by id in service: %w", err)
	}

	detail := &domain.InvoiceWithCompany{Invoice: *invoice}

	company, err := s.companyRepo.FindCompanyByCode(ctx, invoice.CompCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to get company for invoice %d in service: %w", id, err)
		}
		return detail, nil
	}

	detail.Company = company
	return detail, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	// Return empty slice if no invoices found, not nil
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.UpdateInvoiceAmount(ctx, id, req.Amt)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice in service: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice in service: %w", err)
	}
	return nil
}

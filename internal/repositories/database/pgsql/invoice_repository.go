package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	"github.com/biztrack/biztrack_app/internal/core/domain"
	portsrepo "github.com/biztrack/biztrack_app/internal/core/ports/repositories"
	"github.com/biztrack/biztrack_app/internal/models"
	"github.com/biztrack/biztrack_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts a new invoice and reads the store-generated fields back
// via RETURNING. A comp_code with no matching company surfaces as
// apperrors.ErrInvalidReference.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date;
	`
	var modelInv models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoice.CompCode, invoice.Amt).Scan(
		&modelInv.ID,
		&modelInv.CompCode,
		&modelInv.Amt,
		&modelInv.Paid,
		&modelInv.AddDate,
		&modelInv.PaidDate,
	)

	if err != nil {
		if constraintErr := translateConstraintError(err, "invoice for company "+invoice.CompCode); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("failed to save invoice for company %s: %w", invoice.CompCode, err)
	}

	*invoice = mapping.ToDomainInvoice(modelInv)
	return nil
}

// FindInvoiceByID retrieves an invoice by its id.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE id = $1;
	`
	var modelInv models.Invoice
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelInv.ID,
		&modelInv.CompCode,
		&modelInv.Amt,
		&modelInv.Paid,
		&modelInv.AddDate,
		&modelInv.PaidDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by id %d: %w", id, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// FindInvoices retrieves all invoices.
func (r *PgxInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		var invoice models.Invoice
		err := row.Scan(
			&invoice.ID,
			&invoice.CompCode,
			&invoice.Amt,
			&invoice.Paid,
			&invoice.AddDate,
			&invoice.PaidDate,
		)
		return invoice, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

// UpdateInvoiceAmount sets a new amount on an existing invoice and returns
// the full updated row. The owning company is immutable.
func (r *PgxInvoiceRepository) UpdateInvoiceAmount(ctx context.Context, id int64, amt decimal.Decimal) (*domain.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = $1
		WHERE id = $2
		RETURNING id, comp_code, amt, paid, add_date, paid_date;
	`
	var modelInv models.Invoice
	err := r.Pool.QueryRow(ctx, query, amt, id).Scan(
		&modelInv.ID,
		&modelInv.CompCode,
		&modelInv.Amt,
		&modelInv.Paid,
		&modelInv.AddDate,
		&modelInv.PaidDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update invoice %d: %w", id, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// DeleteInvoice removes an invoice by id.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	query := `
		DELETE FROM invoices
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

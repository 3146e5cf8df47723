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
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// SaveCompany inserts a new company. A duplicate code surfaces as
// apperrors.ErrDuplicate.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	modelComp := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelComp.Code,
		modelComp.Name,
		modelComp.Description,
	)

	if err != nil {
		if constraintErr := translateConstraintError(err, "company "+modelComp.Code); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("failed to save company %s: %w", modelComp.Code, err)
	}
	return nil
}

// FindCompanyByCode retrieves a company by its code.
func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		WHERE code = $1;
	`
	var modelComp models.Company
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelComp.Code,
		&modelComp.Name,
		&modelComp.Description,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company by code %s: %w", code, err)
	}

	domainComp := mapping.ToDomainCompany(modelComp)
	return &domainComp, nil
}

// FindCompanies retrieves all companies.
func (r *PgxCompanyRepository) FindCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		var company models.Company
		err := row.Scan(
			&company.Code,
			&company.Name,
			&company.Description,
		)
		return company, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// UpdateCompany replaces the name and description of an existing company.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	modelComp := mapping.ToModelCompany(company)
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelComp.Name,
		modelComp.Description,
		modelComp.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update company query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", modelComp.Code, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCompany removes a company by code. Invoices referencing it are
// removed by the store's ON DELETE CASCADE.
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	query := `
		DELETE FROM companies
		WHERE code = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", code, apperrors.ErrNotFound)
	}
	return nil
}

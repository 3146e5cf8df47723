package dto

import (
	"time"

	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// amt must serialize as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateInvoiceRequest defines the data needed to create a new invoice.
// Everything else is store-defaulted.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" binding:"required"`
	Amt      decimal.Decimal `json:"amt" binding:"required"`
}

// UpdateInvoiceRequest defines the data for an amount-only invoice update.
type UpdateInvoiceRequest struct {
	Amt decimal.Decimal `json:"amt" binding:"required"`
}

// InvoiceResponse defines the flat data returned for an invoice.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceListItem is the lightweight projection used in list responses.
type InvoiceListItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetailResponse is the nested detail view: the owning company is
// embedded and the flat comp_code field is stripped.
type InvoiceDetailResponse struct {
	ID       int64            `json:"id"`
	Amt      decimal.Decimal  `json:"amt"`
	Paid     bool             `json:"paid"`
	AddDate  time.Time        `json:"add_date"`
	PaidDate *time.Time       `json:"paid_date"`
	Company  *CompanyResponse `json:"company"`
}

// InvoiceEnvelope wraps a single flat invoice response body.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps the nested invoice detail response body.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// ListInvoicesResponse wraps the invoices list response body.
type ListInvoicesResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

// ToInvoiceDetailResponse converts a domain.InvoiceWithCompany to the nested
// detail DTO. A missing company stays null rather than failing the response.
func ToInvoiceDetailResponse(detail *domain.InvoiceWithCompany) InvoiceDetailResponse {
	resp := InvoiceDetailResponse{
		ID:       detail.ID,
		Amt:      detail.Amt,
		Paid:     detail.Paid,
		AddDate:  detail.AddDate,
		PaidDate: detail.PaidDate,
	}
	if detail.Company != nil {
		company := ToCompanyResponse(detail.Company)
		resp.Company = &company
	}
	return resp
}

// ToListInvoicesResponse converts a slice of domain.Invoice to the list envelope
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	items := make([]InvoiceListItem, len(invoices))
	for i, inv := range invoices {
		items[i] = InvoiceListItem{ID: inv.ID, CompCode: inv.CompCode}
	}
	return ListInvoicesResponse{Invoices: items}
}

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	portssvc "github.com/biztrack/biztrack_app/internal/core/ports/services"
	"github.com/biztrack/biztrack_app/internal/dto"
	"github.com/biztrack/biztrack_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.POST("", h.createInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// invoiceIDParam parses the :id path parameter. A non-numeric id can never
// match an invoice, so it is reported as not found rather than a bad request.
func invoiceIDParam(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, fmt.Sprintf("No invoice matching: %s", idStr))
		return 0, false
	}
	return id, true
}

// listInvoices godoc
// @Summary List all invoices
// @Description Retrieves all invoices projected to id and comp_code
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list invoices"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list invoices from service", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to list invoices")
		return
	}

	logger.Info("Invoices listed successfully", slog.Int("count", len(invoices)))
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoiceByID godoc
// @Summary Get an invoice by id
// @Description Retrieves an invoice with its owning company embedded
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice id"
// @Success 200 {object} dto.InvoiceDetailEnvelope
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve invoice"
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("invoice_id", id))

	detail, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No invoice matching: %d", id))
		} else {
			logger.Error("Failed to get invoice from service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to retrieve invoice")
		}
		return
	}

	logger.Info("Invoice retrieved successfully")
	c.JSON(http.StatusOK, dto.InvoiceDetailEnvelope{Invoice: dto.ToInvoiceDetailResponse(detail)})
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Adds a new invoice for an existing company
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown comp_code"
// @Failure 500 {object} dto.ErrorResponse "Failed to create invoice"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Need to provide comp_code and amt")
		return
	}

	logger = logger.With(slog.String("company_code", req.CompCode))

	createdInvoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidReference) {
			logger.Warn("Invoice references unknown company")
			respondError(c, http.StatusBadRequest, fmt.Sprintf("No company matching %s", req.CompCode))
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Invoice violates a uniqueness constraint")
			respondError(c, http.StatusBadRequest, "Invoice violates a uniqueness constraint")
		} else {
			logger.Error("Failed to create invoice in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to create invoice")
		}
		return
	}

	logger.Info("Invoice created successfully", slog.Int64("invoice_id", createdInvoice.ID))
	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(createdInvoice)})
}

// updateInvoice godoc
// @Summary Update an invoice amount
// @Description Sets a new amount on an existing invoice; the owning company is immutable
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice id"
// @Param   invoice body dto.UpdateInvoiceRequest true "New amount"
// @Success 200 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update invoice"
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Need to provide amt")
		return
	}

	logger = logger.With(slog.Int64("invoice_id", id))

	updatedInvoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for update")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No invoice matching: %d", id))
		} else {
			logger.Error("Failed to update invoice in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to update invoice")
		}
		return
	}

	logger.Info("Invoice updated successfully")
	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(updatedInvoice)})
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes an invoice by id
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice id"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete invoice"
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := invoiceIDParam(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("invoice_id", id))

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Invoice not found for deletion")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No invoice matching: %d", id))
		} else {
			logger.Error("Failed to delete invoice in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to delete invoice")
		}
		return
	}

	logger.Info("Invoice deleted successfully")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

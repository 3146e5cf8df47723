package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	portssvc "github.com/biztrack/biztrack_app/internal/core/ports/services"
	"github.com/biztrack/biztrack_app/internal/dto"
	"github.com/biztrack/biztrack_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// RegisterCompanyRoutes registers routes related to companies.
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.GET("/:code", h.getCompanyByCode)
		companies.POST("", h.createCompany)
		companies.PUT("/:code", h.updateCompany)
		companies.DELETE("/:code", h.deleteCompany)
	}
}

// listCompanies godoc
// @Summary List all companies
// @Description Retrieves all companies projected to code and name
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list companies"
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list companies from service", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to list companies")
		return
	}

	logger.Info("Companies listed successfully", slog.Int("count", len(companies)))
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompanyByCode godoc
// @Summary Get a company by code
// @Description Retrieves details for a specific company by its code
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve company"
// @Router /companies/{code} [get]
func (h *companyHandler) getCompanyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	logger = logger.With(slog.String("company_code", code))

	company, err := h.companyService.GetCompanyByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No company matching %s", code))
		} else {
			logger.Error("Failed to get company from service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to retrieve company")
		}
		return
	}

	logger.Info("Company retrieved successfully")
	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// createCompany godoc
// @Summary Create a new company
// @Description Adds a new company with a client-supplied code
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate code"
// @Failure 500 {object} dto.ErrorResponse "Failed to create company"
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Need to provide code, name and description")
		return
	}

	logger = logger.With(slog.String("company_code", req.Code))

	createdCompany, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate company")
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Company code '%s' already exists", req.Code))
		} else {
			logger.Error("Failed to create company in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to create company")
		}
		return
	}

	logger.Info("Company created successfully")
	c.JSON(http.StatusCreated, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(createdCompany)})
}

// updateCompany godoc
// @Summary Update a company
// @Description Full replace of a company's name and description
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   code path string true "Company code"
// @Param   company body dto.UpdateCompanyRequest true "Company details"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update company"
// @Router /companies/{code} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCompany", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Need to provide name and description")
		return
	}

	logger = logger.With(slog.String("company_code", code))

	updatedCompany, err := h.companyService.UpdateCompany(c.Request.Context(), code, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found for update")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No company matching %s", code))
		} else {
			logger.Error("Failed to update company in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to update company")
		}
		return
	}

	logger.Info("Company updated successfully")
	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(updatedCompany)})
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Deletes a company by code; its invoices are removed by cascade
// @Tags companies
// @Produce  json
// @Param   code path string true "Company code"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete company"
// @Router /companies/{code} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	logger = logger.With(slog.String("company_code", code))

	if err := h.companyService.DeleteCompany(c.Request.Context(), code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Company not found for deletion")
			respondError(c, http.StatusNotFound, fmt.Sprintf("No company matching %s", code))
		} else {
			logger.Error("Failed to delete company in service", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Failed to delete company")
		}
		return
	}

	logger.Info("Company deleted successfully")
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	"github.com/biztrack/biztrack_app/internal/core/domain"
	"github.com/biztrack/biztrack_app/internal/dto"
	"github.com/biztrack/biztrack_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	args := m.Called(ctx, code)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, req)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	args := m.Called(ctx, code, req)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyService) DeleteCompany(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// --- Test Suite ---
type CompanyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCompanyService
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockCompanyService)
	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCompanyRoutes(v1, suite.mockService)
}

func (suite *CompanyHandlerTestSuite) serve(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- ListCompanies Tests ---

func (suite *CompanyHandlerTestSuite) TestListCompanies_Success() {
	companies := []domain.Company{
		{Code: "tst", Name: "Test", Description: "Is a test"},
		{Code: "tst2", Name: "Test2", Description: "Is also a test"},
	}
	suite.mockService.On("ListCompanies", mock.Anything).Return(companies, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCompaniesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Companies, 2)
	suite.Equal("tst", resp.Companies[0].Code)
	suite.Equal("Test", resp.Companies[0].Name)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestListCompanies_Empty() {
	suite.mockService.On("ListCompanies", mock.Anything).Return([]domain.Company{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"companies":[]}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestListCompanies_ServiceError() {
	suite.mockService.On("ListCompanies", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(http.StatusInternalServerError, resp.Error.Status)
	suite.Equal("Failed to list companies", resp.Error.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- GetCompanyByCode Tests ---

func (suite *CompanyHandlerTestSuite) TestGetCompanyByCode_Success() {
	company := &domain.Company{Code: "tst", Name: "Test", Description: "Is a test"}
	suite.mockService.On("GetCompanyByCode", mock.Anything, "tst").Return(company, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies/tst", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"company":{"code":"tst","name":"Test","description":"Is a test"}}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyByCode_NotFound() {
	suite.mockService.On("GetCompanyByCode", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(http.StatusNotFound, resp.Error.Status)
	suite.Equal("No company matching missing", resp.Error.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- CreateCompany Tests ---

func (suite *CompanyHandlerTestSuite) TestCreateCompany_Success() {
	req := dto.CreateCompanyRequest{Code: "add", Name: "testAdd", Description: "added test"}
	created := &domain.Company{Code: "add", Name: "testAdd", Description: "added test"}
	suite.mockService.On("CreateCompany", mock.Anything, req).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/companies", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"company":{"code":"add","name":"testAdd","description":"added test"}}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_MissingFields() {
	w := suite.serve(http.MethodPost, "/api/v1/companies", gin.H{"code": "add"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Need to provide code, name and description", resp.Error.Message)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCompany")
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany_Duplicate() {
	req := dto.CreateCompanyRequest{Code: "tst", Name: "Test", Description: "Is a test"}
	suite.mockService.On("CreateCompany", mock.Anything, req).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.serve(http.MethodPost, "/api/v1/companies", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Company code 'tst' already exists", resp.Error.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- UpdateCompany Tests ---

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_Success() {
	req := dto.UpdateCompanyRequest{Name: "Renamed", Description: "New description"}
	updated := &domain.Company{Code: "tst", Name: "Renamed", Description: "New description"}
	suite.mockService.On("UpdateCompany", mock.Anything, "tst", req).Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/companies/tst", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"company":{"code":"tst","name":"Renamed","description":"New description"}}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_MissingFields() {
	w := suite.serve(http.MethodPut, "/api/v1/companies/tst", gin.H{"name": "Renamed"})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Need to provide name and description", resp.Error.Message)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateCompany")
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany_NotFound() {
	req := dto.UpdateCompanyRequest{Name: "Renamed", Description: "New description"}
	suite.mockService.On("UpdateCompany", mock.Anything, "missing", req).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodPut, "/api/v1/companies/missing", req)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No company matching missing", resp.Error.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- DeleteCompany Tests ---

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_Success() {
	suite.mockService.On("DeleteCompany", mock.Anything, "tst").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/companies/tst", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"deleted"}`, w.Body.String())
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany_NotFound() {
	suite.mockService.On("DeleteCompany", mock.Anything, "missing").Return(apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/companies/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("No company matching missing", resp.Error.Message)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCompanyHandler(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}

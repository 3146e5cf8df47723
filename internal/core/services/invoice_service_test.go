package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/biztrack/biztrack_app/internal/apperrors"
	"github.com/biztrack/biztrack_app/internal/core/domain"
	portssvc "github.com/biztrack/biztrack_app/internal/core/ports/services"
	"github.com/biztrack/biztrack_app/internal/core/services"
	"github.com/biztrack/biztrack_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceAmount(ctx context.Context, id int64, amt decimal.Decimal) (*domain.Invoice, error) {
	args := m.Called(ctx, id, amt)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCompanyRepo)
}

// --- CreateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CompCode: "tst",
		Amt:      decimal.NewFromInt(100),
	}
	addDate := time.Now()

	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.CompCode == req.CompCode && inv.Amt.Equal(req.Amt)
	})).Run(func(args mock.Arguments) {
		// Fill in the store-generated fields as the repository would
		inv := args.Get(1).(*domain.Invoice)
		inv.ID = 1
		inv.AddDate = addDate
	}).Return(nil).Once()

	createdInvoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdInvoice)
	suite.Equal(int64(1), createdInvoice.ID)
	suite.Equal("tst", createdInvoice.CompCode)
	suite.True(createdInvoice.Amt.Equal(decimal.NewFromInt(100)))
	suite.False(createdInvoice.Paid)
	suite.Nil(createdInvoice.PaidDate)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCompany() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CompCode: "missing",
		Amt:      decimal.NewFromInt(100),
	}

	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("*domain.Invoice")).Return(apperrors.ErrInvalidReference).Once()

	createdInvoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdInvoice)
	suite.ErrorIs(err, apperrors.ErrInvalidReference)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- GetInvoiceByID Tests ---

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_Success() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		ID:       7,
		CompCode: "tst",
		Amt:      decimal.NewFromInt(250),
		AddDate:  time.Now(),
	}
	company := &domain.Company{Code: "tst", Name: "Test", Description: "Is a test"}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(7)).Return(invoice, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByCode", ctx, "tst").Return(company, nil).Once()

	detail, err := suite.service.GetInvoiceByID(ctx, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Equal(int64(7), detail.ID)
	suite.Require().NotNil(detail.Company)
	suite.Equal("tst", detail.Company.Code)
	suite.Equal("Test", detail.Company.Name)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_NotFound() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	detail, err := suite.service.GetInvoiceByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindCompanyByCode")
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_CompanyMissing() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		ID:       7,
		CompCode: "gone",
		Amt:      decimal.NewFromInt(250),
		AddDate:  time.Now(),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(7)).Return(invoice, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByCode", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()

	// The invoice row exists; a company missing despite the foreign key is
	// tolerated and surfaces as a nil embedded company, not an error.
	detail, err := suite.service.GetInvoiceByID(ctx, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(detail)
	suite.Equal(int64(7), detail.ID)
	suite.Nil(detail.Company)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_CompanyRepoError() {
	ctx := context.Background()
	invoice := &domain.Invoice{ID: 7, CompCode: "tst", Amt: decimal.NewFromInt(250)}
	expectedErr := assert.AnError

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, int64(7)).Return(invoice, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByCode", ctx, "tst").Return(nil, expectedErr).Once()

	detail, err := suite.service.GetInvoiceByID(ctx, 7)

	suite.Require().Error(err)
	suite.Nil(detail)
	suite.ErrorIs(err, expectedErr)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

// --- ListInvoices Tests ---

func (suite *InvoiceServiceTestSuite) TestListInvoices_Success() {
	ctx := context.Background()
	expectedInvoices := []domain.Invoice{
		{ID: 1, CompCode: "tst", Amt: decimal.NewFromInt(100)},
		{ID: 2, CompCode: "tst2", Amt: decimal.NewFromInt(200)},
	}

	suite.mockInvoiceRepo.On("FindInvoices", ctx).Return(expectedInvoices, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedInvoices, invoices)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_EmptyNotNil() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoices", ctx).Return(nil, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- UpdateInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_Success() {
	ctx := context.Background()
	newAmt := decimal.NewFromInt(500)
	updated := &domain.Invoice{ID: 7, CompCode: "tst", Amt: newAmt}

	suite.mockInvoiceRepo.On("UpdateInvoiceAmount", ctx, int64(7), newAmt).Return(updated, nil).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, 7, dto.UpdateInvoiceRequest{Amt: newAmt})

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(int64(7), invoice.ID)
	suite.Equal("tst", invoice.CompCode)
	suite.True(invoice.Amt.Equal(newAmt))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()
	newAmt := decimal.NewFromInt(500)

	suite.mockInvoiceRepo.On("UpdateInvoiceAmount", ctx, int64(99), newAmt).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.UpdateInvoice(ctx, 99, dto.UpdateInvoiceRequest{Amt: newAmt})

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- DeleteInvoice Tests ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, int64(7)).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, 7)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}

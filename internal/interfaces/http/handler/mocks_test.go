package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/audit"
	"github.com/shopadmin/backend/internal/domain/document"
	"github.com/shopadmin/backend/internal/domain/finance"
	"github.com/shopadmin/backend/internal/domain/sales"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/domain/staff"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

// newTestRouter returns an engine that assigns request ids and, when session
// is non-nil, behaves as if RequireSession had accepted it.
func newTestRouter(session *auth.Session) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	if session != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.SessionKey, session)
			c.Next()
		})
	}
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionFor(role auth.Role) *auth.Session {
	return &auth.Session{
		UserID:    "user-" + string(role),
		Email:     string(role) + "@shop.example",
		Role:      role,
		TokenID:   "jti-" + string(role),
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, filter sales.CustomerFilter) (shared.ListResult[sales.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[sales.Customer]), args.Error(1)
}

// Mutate applies fn and record to a copy of the customer given to On, the
// way the real repository does inside its transaction.
func (m *MockCustomerRepository) Mutate(ctx context.Context, id uuid.UUID, fn sales.CustomerMutation, record sales.AuditRecorder) (*sales.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	before := *args.Get(0).(*sales.Customer)
	after := before
	if err := fn(&after); err != nil {
		return nil, err
	}
	if _, err := record(before, after); err != nil {
		return nil, err
	}
	return &after, args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) List(ctx context.Context, filter audit.Filter) (shared.ListResult[audit.Entry], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[audit.Entry]), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter sales.OrderFilter) (shared.ListResult[sales.Order], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[sales.Order]), args.Error(1)
}

func (m *MockOrderRepository) Totals(ctx context.Context, filter sales.OrderFilter) (*sales.OrderTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.OrderTotals), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByUserID(ctx context.Context, userID string) (*staff.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context, filter staff.EmployeeFilter) (shared.ListResult[staff.Employee], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[staff.Employee]), args.Error(1)
}

type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindRunByID(ctx context.Context, id uuid.UUID) (*staff.PayrollRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.PayrollRun), args.Error(1)
}

func (m *MockPayrollRepository) ListRuns(ctx context.Context, filter staff.PayrollRunFilter) (shared.ListResult[staff.PayrollRun], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[staff.PayrollRun]), args.Error(1)
}

func (m *MockPayrollRepository) ListPayslips(ctx context.Context, filter staff.PayslipFilter) (shared.ListResult[staff.Payslip], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[staff.Payslip]), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) List(ctx context.Context, filter finance.ExpenseFilter) (shared.ListResult[finance.Expense], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[finance.Expense]), args.Error(1)
}

func (m *MockExpenseRepository) Totals(ctx context.Context, filter finance.ExpenseFilter) (*finance.ExpenseTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseTotals), args.Error(1)
}

type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) List(ctx context.Context, filter finance.InvestmentFilter) (shared.ListResult[finance.Investment], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.ListResult[finance.Investment]), args.Error(1)
}

func (m *MockInvestmentRepository) Totals(ctx context.Context, filter finance.InvestmentFilter) (*finance.InvestmentTotals, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.InvestmentTotals), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindByKey(ctx context.Context, key string) (*document.Document, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

type MockURLIssuer struct {
	mock.Mock
}

func (m *MockURLIssuer) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) SignOut(ctx context.Context, session *auth.Session, all bool, maxSessionTTL time.Duration) error {
	args := m.Called(ctx, session, all, maxSessionTTL)
	return args.Error(0)
}

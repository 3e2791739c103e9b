package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/interfaces/http/handler"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the admin API route handlers
type Handlers struct {
	Customers   *handler.CustomerHandler
	Products    *handler.ProductHandler
	Orders      *handler.OrderHandler
	Employees   *handler.EmployeeHandler
	Payroll     *handler.PayrollHandler
	Expenses    *handler.ExpenseHandler
	Investments *handler.InvestmentHandler
	Files       *handler.FileHandler
	Session     *handler.SessionHandler
	Health      *handler.HealthHandler
}

var can = middleware.RequireCapability

// AdminGroups returns the gated domain groups. authChain runs first on every
// route (RequireSession plus anything that needs the session), followed by
// the route's capability gate, so a denied request never reaches a handler.
func AdminGroups(h Handlers, authChain ...gin.HandlerFunc) []*DomainGroup {
	customers := NewDomainGroup("customers", "/customers").Use(authChain...).
		GET("", can(auth.CapCustomersRead), h.Customers.List).
		GET("/:id", can(auth.CapCustomersRead), h.Customers.GetByID).
		PATCH("/:id/payment-methods", can(auth.CapCustomersWrite), h.Customers.SetPaymentMethods).
		POST("/:id/balance-adjustments", can(auth.CapCustomersWrite), h.Customers.AdjustBalance)

	auditLog := NewDomainGroup("audit", "/audit").Use(authChain...).
		GET("", can(auth.CapCustomersWrite), h.Customers.ListAudit)

	products := NewDomainGroup("products", "/products").Use(authChain...).
		GET("", can(auth.CapProductsRead), h.Products.List).
		GET("/:id", can(auth.CapProductsRead), h.Products.GetByID)

	orders := NewDomainGroup("orders", "/orders").Use(authChain...).
		GET("", can(auth.CapOrdersRead), h.Orders.List).
		GET("/total", can(auth.CapOrdersRead), h.Orders.Total).
		GET("/:id", can(auth.CapOrdersRead), h.Orders.GetByID)

	employees := NewDomainGroup("employees", "/employees").Use(authChain...).
		GET("", can(auth.CapEmployeesRead), h.Employees.List).
		GET("/:id", can(auth.CapEmployeesRead), h.Employees.GetByID)

	payroll := NewDomainGroup("payroll", "/payroll").Use(authChain...)
	payroll.Group("runs", "/runs").
		GET("", can(auth.CapPayrollRead), h.Payroll.ListRuns).
		GET("/:id", can(auth.CapPayrollRead), h.Payroll.GetRun)
	payroll.Group("payslips", "/payslips").
		GET("", can(auth.CapPayrollRead, auth.CapPayrollReadOwn), h.Payroll.ListPayslips)

	expenses := NewDomainGroup("expenses", "/expenses").Use(authChain...).
		GET("", can(auth.CapExpensesRead, auth.CapExpensesReadOwn), h.Expenses.List).
		GET("/total", can(auth.CapExpensesRead), h.Expenses.Total)

	investments := NewDomainGroup("investments", "/investments").Use(authChain...).
		GET("", can(auth.CapInvestmentsRead), h.Investments.List).
		GET("/total", can(auth.CapInvestmentsRead), h.Investments.Total).
		GET("/:id", can(auth.CapInvestmentsRead), h.Investments.GetByID)

	files := NewDomainGroup("files", "/files").Use(authChain...).
		GET("", can(auth.CapFilesRead), h.Files.Redirect).
		GET("/url", can(auth.CapFilesRead), h.Files.URL)

	session := NewDomainGroup("session", "/session").Use(authChain...).
		GET("", h.Session.Get).
		POST("/sign-out", can(auth.CapSessionsRevoke), h.Session.SignOut)

	return []*DomainGroup{
		customers, auditLog, products, orders, employees,
		payroll, expenses, investments, files, session,
	}
}

// Setup registers the health checks and the versioned admin API on engine
func Setup(engine *gin.Engine, h Handlers, authChain ...gin.HandlerFunc) {
	engine.GET("/health", h.Health.Health)
	engine.GET("/ready", h.Health.Ready)

	r := NewRouter(engine)
	for _, group := range AdminGroups(h, authChain...) {
		r.Register(group)
	}
	r.Setup()
}

// SetupDocs serves the Swagger UI and document under /swagger. The route is
// always registered so a disabled endpoint answers 404 in the API's error
// format; sessionGate runs after the IP check when cfg.RequireAuth is set.
func SetupDocs(engine *gin.Engine, cfg middleware.SwaggerConfig, sessionGate gin.HandlerFunc) {
	chain := []gin.HandlerFunc{middleware.SwaggerProtection(cfg)}
	if cfg.RequireAuth && sessionGate != nil {
		chain = append(chain, sessionGate)
	}
	chain = append(chain, ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/swagger/*any", chain...)
}

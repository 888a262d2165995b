package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/crm-api/internal/application/analytics"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	ClientUC      *usecase.ClientUseCase
	IncomeUC      *usecase.IncomeUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	ActivityUC    *usecase.ActivityUseCase
	OpportunityUC *usecase.OpportunityUseCase
	QuoteUC       *usecase.QuoteUseCase
	ContractUC    *usecase.ContractUseCase
	DocumentUC    *usecase.DocumentUseCase
	ProductUC     *usecase.ProductUseCase
	CampaignUC    *usecase.CampaignUseCase
	TicketUC      *usecase.TicketUseCase
	SummaryUC     *analytics.SummaryUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
	AuthLimiter   *limiter.Limiter // nil = sin límite en /auth
}

// Router registra las rutas de la API.
// Las rutas /summary se registran antes que /:id para que no las capture el parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)
	summary := NewSummaryHandler(deps.SummaryUC)

	// Auth (público salvo logout y me)
	authGroup := api.Group("/auth")
	if deps.AuthLimiter != nil {
		authGroup.Use(RateLimit(deps.AuthLimiter))
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", requireAuth)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", uuidParams, companyHandler.GetByID)
	companies.Put("/:id", uuidParams, companyHandler.Update)
	companies.Get("/:id/members", uuidParams, companyHandler.ListMembers)
	companies.Post("/:id/members", uuidParams, companyHandler.AddMember)
	companies.Delete("/:id/members/:userId", uuidParams, companyHandler.RemoveMember)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/summary", summary.Clients)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", uuidParams, clientHandler.GetByID)
	clients.Put("/:id", uuidParams, clientHandler.Update)
	clients.Patch("/:id/status", uuidParams, clientHandler.UpdateStatus)
	clients.Delete("/:id", uuidParams, clientHandler.Delete)

	// Incomes (paginado)
	incomes := protected.Group("/incomes")
	incomeHandler := NewIncomeHandler(deps.IncomeUC)
	incomes.Get("/summary", summary.Incomes)
	incomes.Get("/", incomeHandler.List)
	incomes.Post("/", incomeHandler.Create)
	incomes.Get("/:id", uuidParams, incomeHandler.GetByID)
	incomes.Put("/:id", uuidParams, incomeHandler.Update)
	incomes.Delete("/:id", uuidParams, incomeHandler.Delete)

	// Expenses (paginado)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/summary", summary.Expenses)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", uuidParams, expenseHandler.GetByID)
	expenses.Put("/:id", uuidParams, expenseHandler.Update)
	expenses.Delete("/:id", uuidParams, expenseHandler.Delete)

	// Activities
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/summary", summary.Activities)
	activities.Get("/", activityHandler.List)
	activities.Post("/", activityHandler.Create)
	activities.Get("/:id", uuidParams, activityHandler.GetByID)
	activities.Put("/:id", uuidParams, activityHandler.Update)
	activities.Patch("/:id/complete", uuidParams, activityHandler.Complete)
	activities.Delete("/:id", uuidParams, activityHandler.Delete)

	// Opportunities
	opportunities := protected.Group("/opportunities")
	opportunityHandler := NewOpportunityHandler(deps.OpportunityUC)
	opportunities.Get("/summary", summary.Opportunities)
	opportunities.Get("/", opportunityHandler.List)
	opportunities.Post("/", opportunityHandler.Create)
	opportunities.Get("/:id", uuidParams, opportunityHandler.GetByID)
	opportunities.Put("/:id", uuidParams, opportunityHandler.Update)
	opportunities.Patch("/:id/stage", uuidParams, opportunityHandler.UpdateStage)
	opportunities.Delete("/:id", uuidParams, opportunityHandler.Delete)

	// Quotes
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:id", uuidParams, quoteHandler.GetByID)
	quotes.Get("/:id/pdf", uuidParams, quoteHandler.DownloadPDF)
	quotes.Put("/:id", uuidParams, quoteHandler.Update)
	quotes.Patch("/:id/status", uuidParams, quoteHandler.UpdateStatus)
	quotes.Delete("/:id", uuidParams, quoteHandler.Delete)

	// Contracts
	contracts := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/", contractHandler.List)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/:id", uuidParams, contractHandler.GetByID)
	contracts.Put("/:id", uuidParams, contractHandler.Update)
	contracts.Delete("/:id", uuidParams, contractHandler.Delete)

	// Documents
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Create)
	documents.Get("/:id", uuidParams, documentHandler.GetByID)
	documents.Put("/:id", uuidParams, documentHandler.Update)
	documents.Delete("/:id", uuidParams, documentHandler.Delete)

	// Products y categorías
	productHandler := NewProductHandler(deps.ProductUC)
	categories := protected.Group("/product-categories")
	categories.Get("/", productHandler.ListCategories)
	categories.Post("/", productHandler.CreateCategory)
	categories.Put("/:id", uuidParams, productHandler.UpdateCategory)
	categories.Delete("/:id", uuidParams, productHandler.DeleteCategory)

	products := protected.Group("/products")
	products.Get("/summary", summary.Products)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", uuidParams, productHandler.GetByID)
	products.Put("/:id", uuidParams, productHandler.Update)
	products.Delete("/:id", uuidParams, productHandler.Delete)

	// Marketing
	campaigns := protected.Group("/marketing-campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/:id", uuidParams, campaignHandler.GetByID)
	campaigns.Put("/:id", uuidParams, campaignHandler.Update)
	campaigns.Delete("/:id", uuidParams, campaignHandler.Delete)

	// Tickets
	tickets := protected.Group("/tickets")
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets.Get("/summary", summary.Tickets)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Get("/:id", uuidParams, ticketHandler.GetByID)
	tickets.Put("/:id", uuidParams, ticketHandler.Update)
	tickets.Patch("/:id/status", uuidParams, ticketHandler.UpdateStatus)
	tickets.Delete("/:id", uuidParams, ticketHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}

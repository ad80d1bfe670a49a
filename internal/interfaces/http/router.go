package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redshowroom/pos-api/internal/application/auth"
	"github.com/redshowroom/pos-api/internal/application/catalog"
	"github.com/redshowroom/pos-api/internal/application/entreprise"
	"github.com/redshowroom/pos-api/internal/application/reports"
	"github.com/redshowroom/pos-api/internal/application/sales"
	"github.com/redshowroom/pos-api/internal/application/stock"
	"github.com/redshowroom/pos-api/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	CatalogUC    *catalog.UseCase
	StockUC      *stock.UseCase
	CheckoutUC   *sales.CheckoutUseCase
	HistoryUC    *sales.HistoryUseCase
	PaymentUC    *sales.PaymentUseCase
	PDFUC        *sales.PDFUseCase
	ReportUC     *reports.DashboardUseCase
	EntrepriseUC *entreprise.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API.
//
// Répartition des rôles: le vendeur encaisse, le magasinier fait entrer le
// stock, l'admin fait tout (catalogue, comptes, entreprise, tableau de bord).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login public, création de compte réservée aux admins)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/users",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.CreateUser)

	// Routes protégées (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalogue
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/price", productHandler.GetUnitPrice)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/entries",
		RequireRole(entity.RoleAdmin, entity.RoleMagasinier),
		stockHandler.RegisterEntry)
	stockGroup.Get("/:productID", stockHandler.Availability)
	stockGroup.Get("/:productID/entries", stockHandler.ListEntries)

	// Ventes et versements
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.HistoryUC, deps.PDFUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	salesGroup.Post("/",
		RequireRole(entity.RoleAdmin, entity.RoleVendeur),
		saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)
	// "/outstanding" avant "/:id" sinon Fiber le capture comme un id
	salesGroup.Get("/outstanding", paymentHandler.ListOutstanding)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.DownloadPDF)
	salesGroup.Post("/:id/payments",
		RequireRole(entity.RoleAdmin, entity.RoleVendeur),
		paymentHandler.Record)
	salesGroup.Get("/:id/payments", paymentHandler.ListBySale)

	// Tableau de bord
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/dashboard", RequireRole(entity.RoleAdmin), reportHandler.Dashboard)

	// Entreprise
	entrepriseGroup := protected.Group("/entreprise")
	entrepriseHandler := NewEntrepriseHandler(deps.EntrepriseUC)
	entrepriseGroup.Get("/", entrepriseHandler.Get)
	entrepriseGroup.Put("/", RequireRole(entity.RoleAdmin), entrepriseHandler.Update)
}

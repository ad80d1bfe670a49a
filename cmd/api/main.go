package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/redshowroom/pos-api/internal/application/auth"
	"github.com/redshowroom/pos-api/internal/application/catalog"
	"github.com/redshowroom/pos-api/internal/application/entreprise"
	"github.com/redshowroom/pos-api/internal/application/reports"
	"github.com/redshowroom/pos-api/internal/application/sales"
	"github.com/redshowroom/pos-api/internal/application/stock"
	"github.com/redshowroom/pos-api/internal/domain/fiscal"
	infrapdf "github.com/redshowroom/pos-api/internal/infrastructure/pdf"
	"github.com/redshowroom/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/redshowroom/pos-api/internal/interfaces/http"
	"github.com/redshowroom/pos-api/pkg/config"
	"github.com/redshowroom/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	// La politique fiscale du déploiement se valide au boot: une valeur
	// inconnue empêche le démarrage plutôt que de fausser des factures.
	policy := fiscal.Policy{
		Mode:      fiscal.Mode(cfg.Fiscal.Mode),
		StampBase: fiscal.StampBase(cfg.Fiscal.StampBase),
		Rounding:  fiscal.Rounding(cfg.Fiscal.Rounding),
	}
	if err := policy.Validate(); err != nil {
		log.Fatal().Err(err).
			Str("mode", cfg.Fiscal.Mode).
			Str("stamp_base", cfg.Fiscal.StampBase).
			Str("rounding", cfg.Fiscal.Rounding).
			Msg("politique fiscale invalide")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	entrepriseRepo := postgres.NewEntrepriseRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	allocator := sales.AllocatorFromName(cfg.Fiscal.Allocator)
	log.Info().
		Str("allocator", cfg.Fiscal.Allocator).
		Str("policy", policy.Label()).
		Msg("moteur de vente configuré")

	catalogUC := catalog.NewUseCase(productRepo, log)
	stockUC := stock.NewUseCase(movementRepo, saleRepo, productRepo)
	checkoutUC := sales.NewCheckoutUseCase(txRunner, productRepo, allocator, policy)
	historyUC := sales.NewHistoryUseCase(saleRepo)
	paymentUC := sales.NewPaymentUseCase(txRunner, saleRepo, paymentRepo)
	pdfUC := sales.NewPDFUseCase(saleRepo, entrepriseRepo, infrapdf.NewMarotoInvoiceGenerator())
	reportUC := reports.NewDashboardUseCase(reportRepo)
	entrepriseUC := entreprise.NewUseCase(entrepriseRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		StockUC:      stockUC,
		CheckoutUC:   checkoutUC,
		HistoryUC:    historyUC,
		PaymentUC:    paymentUC,
		PDFUC:        pdfUC,
		ReportUC:     reportUC,
		EntrepriseUC: entrepriseUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}

package router

import (
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/config"
	"github.com/warning2025/farmaciaposventas3/internal/handler"
	"github.com/warning2025/farmaciaposventas3/internal/middleware"
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"
	"github.com/warning2025/farmaciaposventas3/internal/service"
	"github.com/warning2025/farmaciaposventas3/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *realtime.Hub) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	branchStockRepo := repository.NewBranchStockRepository(db)
	registerRepo := repository.NewCashRegisterRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	nursingRepo := repository.NewNursingRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	registerSvc := service.NewCashRegisterService(registerRepo, hub)
	dispatcher := worker.NewDispatcher(rdb)
	saleSvc := service.NewSaleService(saleRepo, productRepo, registerSvc, hub, dispatcher)
	expenseSvc := service.NewExpenseService(expenseRepo, registerSvc, hub)
	nursingSvc := service.NewNursingService(nursingRepo, registerSvc, hub)
	purchaseSvc := service.NewPurchaseService(supplierRepo, expenseRepo, registerSvc, hub)
	productSvc := service.NewProductService(productRepo, branchRepo, hub)
	transferSvc := service.NewStockTransferService(productRepo, branchStockRepo, branchRepo, hub)
	branchSvc := service.NewBranchService(branchRepo, hub)
	catalogSvc := service.NewCatalogService(catalogRepo)
	reportSvc := service.NewReportService(saleRepo, expenseRepo, nursingRepo, supplierRepo, registerRepo, productRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	registerH := handler.NewCashRegisterHandler(registerSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	nursingH := handler.NewNursingHandler(nursingSvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	productsH := handler.NewProductsHandler(productSvc)
	stockH := handler.NewStockHandler(transferSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	catalogsH := handler.NewCatalogsHandler(catalogSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	eventsH := handler.NewEventsHandler(hub)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	anyStaff := middleware.RequireRole(model.RoleAdmin, model.RoleCashier, model.RoleWarehouse)
	sellers := middleware.RequireRole(model.RoleAdmin, model.RoleCashier)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	warehouse := middleware.RequireRole(model.RoleAdmin, model.RoleWarehouse)

	v1 := r.Group("/v1", middleware.JWTAuth(authSvc))
	{
		// Caja
		v1.POST("/caja/abrir", sellers, registerH.Open)
		v1.POST("/caja/cerrar", sellers, registerH.Close)
		v1.GET("/caja/actual", anyStaff, registerH.Current)
		v1.GET("/caja/historial", adminOnly, registerH.History)

		// Ventas
		v1.POST("/ventas", sellers, salesH.Create)
		v1.GET("/ventas", anyStaff, salesH.List)
		v1.GET("/ventas/:id", anyStaff, salesH.Get)
		v1.DELETE("/ventas/:id", adminOnly, salesH.Delete)
		v1.POST("/ventas/eliminar", adminOnly, salesH.DeleteBatch)
		v1.PATCH("/ventas/:id/estado", sellers, salesH.UpdateStatus)

		// Gastos
		v1.POST("/gastos", sellers, expensesH.Create)
		v1.GET("/gastos", anyStaff, expensesH.List)
		v1.PUT("/gastos/:id", adminOnly, expensesH.Update)
		v1.DELETE("/gastos/:id", adminOnly, expensesH.Delete)
		v1.POST("/gastos/eliminar", adminOnly, expensesH.DeleteBatch)

		// Enfermería
		v1.POST("/enfermeria", sellers, nursingH.Create)
		v1.GET("/enfermeria", anyStaff, nursingH.List)
		v1.DELETE("/enfermeria/:id", adminOnly, nursingH.Delete)
		v1.POST("/enfermeria/eliminar", adminOnly, nursingH.DeleteBatch)

		// Proveedores y compras
		v1.GET("/proveedores", anyStaff, purchasesH.ListSuppliers)
		v1.POST("/proveedores", warehouse, purchasesH.CreateSupplier)
		v1.PUT("/proveedores/:id", warehouse, purchasesH.UpdateSupplier)
		v1.DELETE("/proveedores/:id", adminOnly, purchasesH.DeleteSupplier)
		v1.GET("/compras", anyStaff, purchasesH.ListPurchases)
		v1.POST("/compras", warehouse, purchasesH.CreatePurchase)
		v1.PATCH("/compras/:id/pagar", warehouse, purchasesH.MarkPaid)
		v1.DELETE("/compras/:id", adminOnly, purchasesH.DeletePurchase)

		// Productos
		v1.GET("/productos", anyStaff, productsH.List)
		v1.GET("/productos/stock-bajo", anyStaff, productsH.ListLowStock)
		v1.GET("/productos/barcode/:barcode", anyStaff, productsH.GetByBarcode)
		v1.GET("/productos/:id", anyStaff, productsH.Get)
		v1.POST("/productos", warehouse, productsH.Create)
		v1.PUT("/productos/:id", warehouse, productsH.Update)
		v1.DELETE("/productos/:id", adminOnly, productsH.Delete)
		v1.POST("/productos/asignar-huerfanos", adminOnly, productsH.AssignOrphans)

		// Stock entre sucursales
		v1.POST("/stock/transferir", warehouse, stockH.Transfer)

		// Sucursales
		v1.GET("/sucursales", anyStaff, branchesH.List)
		v1.GET("/sucursales/principal", anyStaff, branchesH.GetMain)
		v1.GET("/sucursales/:id", anyStaff, branchesH.Get)
		v1.GET("/sucursales/:id/stock", anyStaff, stockH.BranchStock)
		v1.POST("/sucursales", adminOnly, branchesH.Create)
		v1.POST("/sucursales/activar", adminOnly, branchesH.Activate)
		v1.POST("/sucursales/codigos", adminOnly, branchesH.GenerateCode)
		v1.PUT("/sucursales/:id", adminOnly, branchesH.Update)
		v1.PATCH("/sucursales/:id/principal", adminOnly, branchesH.SetMain)
		v1.DELETE("/sucursales/:id", adminOnly, branchesH.Delete)

		// Catálogos
		v1.GET("/catalogos/categorias", anyStaff, catalogsH.ListCategories)
		v1.POST("/catalogos/categorias", warehouse, catalogsH.CreateCategory)
		v1.DELETE("/catalogos/categorias/:id", adminOnly, catalogsH.DeleteCategory)
		v1.GET("/catalogos/presentaciones", anyStaff, catalogsH.ListPresentations)
		v1.POST("/catalogos/presentaciones", warehouse, catalogsH.CreatePresentation)
		v1.GET("/catalogos/concentraciones", anyStaff, catalogsH.ListConcentrations)
		v1.POST("/catalogos/concentraciones", warehouse, catalogsH.CreateConcentration)

		// Reportes
		v1.GET("/reportes/ventas", adminOnly, reportsH.Sales)
		v1.GET("/reportes/gastos", adminOnly, reportsH.Expenses)
		v1.GET("/reportes/caja", adminOnly, reportsH.Cash)
		v1.GET("/reportes/compras", adminOnly, reportsH.Purchases)
		v1.GET("/reportes/enfermeria", adminOnly, reportsH.Nursing)
		v1.GET("/reportes/inventario", adminOnly, reportsH.Inventory)

		// Usuarios
		v1.GET("/usuarios", adminOnly, authH.ListUsers)
		v1.POST("/usuarios", adminOnly, authH.CreateUser)
		v1.PUT("/usuarios/:id", adminOnly, authH.UpdateUser)

		// Eventos en tiempo real
		v1.GET("/eventos/:topic", anyStaff, eventsH.Stream)
	}

	return r
}

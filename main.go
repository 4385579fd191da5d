package main

import (
	"database/sql"
	"log"
	"os"

	apiConfig "github.com/ezekielbrioso/Florish/src/api/config"
	builderUseCase "github.com/ezekielbrioso/Florish/src/builder/application/usecase"
	builderAdapter "github.com/ezekielbrioso/Florish/src/builder/infrastructure/adapter"
	builderController "github.com/ezekielbrioso/Florish/src/builder/infrastructure/controller"
	builderStore "github.com/ezekielbrioso/Florish/src/builder/infrastructure/store"
	cartUseCase "github.com/ezekielbrioso/Florish/src/cart/application/usecase"
	cartAdapter "github.com/ezekielbrioso/Florish/src/cart/infrastructure/adapter"
	cartController "github.com/ezekielbrioso/Florish/src/cart/infrastructure/controller"
	cartStore "github.com/ezekielbrioso/Florish/src/cart/infrastructure/store"
	catalogUseCase "github.com/ezekielbrioso/Florish/src/catalog/application/usecase"
	catalogPort "github.com/ezekielbrioso/Florish/src/catalog/domain/port"
	catalogCache "github.com/ezekielbrioso/Florish/src/catalog/infrastructure/cache"
	catalogController "github.com/ezekielbrioso/Florish/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/ezekielbrioso/Florish/src/catalog/infrastructure/persistence"
	sharedConfig "github.com/ezekielbrioso/Florish/src/shared/infrastructure/config"
	usersUseCase "github.com/ezekielbrioso/Florish/src/users/application/usecase"
	usersController "github.com/ezekielbrioso/Florish/src/users/infrastructure/controller"
	usersPersistence "github.com/ezekielbrioso/Florish/src/users/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Florish Service - Iniciando...")

	// Cargar variables de entorno desde .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	log.Printf("PROMETHEUS_ENABLED value: '%s'", prometheusEnabled)

	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for Florish service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("/metrics endpoint registered successfully for Florish service")
	} else {
		log.Println("Prometheus metrics disabled for Florish service")
	}

	// Configurar CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "florish_db")

	// Crear string de conexión para florish_db
	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s: %s", dbName, connStr)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a florish_db establecida con éxito")
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de la tienda
	listBuildItemsUC := setupCatalogModule(v1, db)
	cartRepo := setupCartModule(v1)
	setupBuilderModule(v1, listBuildItemsUC, cartRepo)
	setupUsersModule(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Florish iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/api/v1/health", port)
	router.Run(":" + port)
}

// setupCatalogModule configura el módulo Catalog
// Retorna el caso de uso de build items para que el builder lea el catálogo
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB) *catalogUseCase.ListBuildItemsUseCase {
	log.Println("Configurando módulo Catalog...")

	var listBuildItemsUC *catalogUseCase.ListBuildItemsUseCase
	var listProductsUC *catalogUseCase.ListProductsUseCase
	var createProductUC *catalogUseCase.CreateProductUseCase
	if db != nil {
		var buildItemRepo catalogPort.BuildItemRepository = catalogPersistence.NewBuildItemPostgresRepository(db)

		// Precargar el catálogo de armado en memoria: el wizard consulta
		// items en cada cambio de categoría
		buildItemCache := catalogCache.NewBuildItemCache()
		if err := buildItemCache.LoadFromDB(db); err == nil {
			buildItemRepo = catalogCache.NewCachedBuildItemRepository(buildItemCache, buildItemRepo)
		}

		productRepo := catalogPersistence.NewProductPostgresRepository(db)
		listBuildItemsUC = catalogUseCase.NewListBuildItemsUseCase(buildItemRepo)
		listProductsUC = catalogUseCase.NewListProductsUseCase(productRepo)
		createProductUC = catalogUseCase.NewCreateProductUseCase(productRepo)
	} else {
		log.Println("⚠️  Módulo Catalog sin DB (responderá 503)")
	}

	catalogCtrl := catalogController.NewCatalogController(listBuildItemsUC, listProductsUC)
	adminCtrl := catalogController.NewAdminController(createProductUC)

	catalogCtrl.RegisterRoutes(router)
	adminCtrl.RegisterRoutes(router)

	log.Println("Módulo Catalog configurado exitosamente")
	return listBuildItemsUC
}

// setupCartModule configura el módulo Cart (en memoria)
func setupCartModule(router *gin.RouterGroup) *cartStore.CartMemoryRepository {
	log.Println("Configurando módulo Cart...")

	cartRepo := cartStore.NewCartMemoryRepository()
	manageCartUC := cartUseCase.NewManageCartUseCase(cartRepo)
	cartCtrl := cartController.NewCartController(manageCartUC)
	cartCtrl.RegisterRoutes(router)

	log.Println("Módulo Cart configurado exitosamente")
	return cartRepo
}

// setupBuilderModule configura el módulo Builder (arma tu ramo)
func setupBuilderModule(router *gin.RouterGroup, listBuildItemsUC *catalogUseCase.ListBuildItemsUseCase, cartRepo *cartStore.CartMemoryRepository) {
	log.Println("Configurando módulo Builder...")

	sessionStore := builderStore.NewSessionMemoryStore()
	catalogReader := builderAdapter.NewCatalogReader(listBuildItemsUC)
	cartSink := cartAdapter.NewBuilderCartSink(cartRepo)

	startSessionUC := builderUseCase.NewStartSessionUseCase(sessionStore, catalogReader)
	getSessionUC := builderUseCase.NewGetSessionUseCase(sessionStore)
	selectCategoryUC := builderUseCase.NewSelectCategoryUseCase(sessionStore, catalogReader)
	updateSelectionUC := builderUseCase.NewUpdateSelectionUseCase(sessionStore)
	finalizeUC := builderUseCase.NewFinalizeBouquetUseCase(sessionStore, cartSink)
	resetSessionUC := builderUseCase.NewResetSessionUseCase(sessionStore)

	builderCtrl := builderController.NewBuilderController(
		startSessionUC,
		getSessionUC,
		selectCategoryUC,
		updateSelectionUC,
		finalizeUC,
		resetSessionUC,
	)
	builderCtrl.RegisterRoutes(router)

	log.Println("Módulo Builder configurado exitosamente")
}

// setupUsersModule configura el módulo Users
func setupUsersModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Users...")

	var loginUserUC *usersUseCase.LoginUserUseCase
	if db != nil {
		userRepo := usersPersistence.NewUserPostgresRepository(db)
		loginUserUC = usersUseCase.NewLoginUserUseCase(userRepo)
	} else {
		log.Println("⚠️  Módulo Users sin DB (responderá 503)")
	}

	userCtrl := usersController.NewUserController(loginUserUC)
	userCtrl.RegisterRoutes(router)

	log.Println("Módulo Users configurado exitosamente")
}

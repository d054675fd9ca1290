package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "athwela/docs" // swagger spec registration
	"athwela/internal/adapter/http/handlers"
	"athwela/internal/adapter/persistence/registry"
	"athwela/internal/adapter/persistence/repository"
	appconfig "athwela/internal/config"
	"athwela/internal/infrastructure/database"
	"athwela/internal/infrastructure/messaging"
	"athwela/internal/infrastructure/ratelimit"
	"athwela/internal/security/pin"
	"athwela/internal/usecase"
	"athwela/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Need     *handlers.NeedHandler
	Record   *handlers.RecordHandler
	Guard    *handlers.GuardHandler
	Registry *handlers.RegistryHandler
	Stats    *handlers.StatsHandler
	Admin    *handlers.AdminHandler
	Event    *handlers.EventHandler
}

// Run will start the server
func Run() {
	cfg, err := appconfig.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	h, cleanup := buildHandlers(cfg)
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("level=info component=http msg=\"listening\" addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("level=info component=http msg=\"shutting down\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}
}

// buildHandlers wires stores, infrastructure and use cases. The returned func releases
// the registry database, the broker connection and the limiter client.
func buildHandlers(cfg appconfig.Config) (Handlers, func()) {
	ddb := database.ConnectDynamoDB(cfg)

	needRepo := repository.NewNeedDynamoRepository(ddb, cfg.NeedsTable)
	personRepo := repository.NewPersonDynamoRepository(ddb, cfg.PeopleTable)
	volunteerRepo := repository.NewVolunteerDynamoRepository(ddb, cfg.VolunteersTable)
	requestRepo := repository.NewServiceRequestDynamoRepository(ddb, cfg.ServiceRequestsTable)
	eventRepo := repository.NewVolunteerEventDynamoRepository(ddb, cfg.VolunteerEventsTable)

	registryStore, err := registry.Open(cfg.RegistryDBPath)
	if err != nil {
		log.Fatalf("Failed to open registry database: %v", err)
	}

	publisher := messaging.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
	limiter := ratelimit.NewLimiter(context.Background(), cfg.RedisURL, cfg.RedisKeyPrefix, cfg.PinMaxAttempts, cfg.PinLockoutWindow())
	hasher := pin.NewHasher(cfg.PinHashCost)

	stores := []interfaces.ISecuredRecordStore{needRepo, personRepo, volunteerRepo, requestRepo}
	guard := usecase.NewPinGuard(hasher, limiter, publisher, stores...).WithMaxRetries(cfg.TxMaxRetries)

	needUseCase := usecase.NewNeedUseCase(needRepo, hasher, guard, publisher, usecase.NeedConfig{
		MaxRetries:        cfg.TxMaxRetries,
		ReopenGracePeriod: cfg.ReopenGracePeriod(),
	})
	recordUseCase := usecase.NewRecordUseCase(personRepo, volunteerRepo, requestRepo, hasher)
	registryUseCase := usecase.NewRegistryUseCase(registryStore)
	statsUseCase := usecase.NewStatsUseCase(needRepo, personRepo, volunteerRepo, requestRepo)
	adminUseCase := usecase.NewAdminUseCase(needRepo, publisher, cfg.TxMaxRetries, append(stores, eventRepo)...)
	eventUseCase := usecase.NewVolunteerEventUseCase(eventRepo, publisher, cfg.TxMaxRetries)

	h := Handlers{
		Need:     handlers.NewNeedHandler(needUseCase, registryUseCase),
		Record:   handlers.NewRecordHandler(recordUseCase, registryUseCase),
		Guard:    handlers.NewGuardHandler(guard, registryUseCase),
		Registry: handlers.NewRegistryHandler(registryUseCase),
		Stats:    handlers.NewStatsHandler(statsUseCase),
		Admin:    handlers.NewAdminHandler(adminUseCase),
		Event:    handlers.NewEventHandler(eventUseCase),
	}

	cleanup := func() {
		publisher.Close()
		if c, ok := limiter.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil {
				log.Printf("level=warn component=bootstrap msg=\"limiter close failed\" err=%v", err)
			}
		}
		if err := registryStore.Close(); err != nil {
			log.Printf("level=warn component=bootstrap msg=\"registry close failed\" err=%v", err)
		}
	}
	return h, cleanup
}

// NewRouter builds the gin engine with middlewares and every route group mounted.
func NewRouter(cfg appconfig.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNeedRoutes(v1, h.Need, h.Guard)
	addRecordRoutes(v1, h.Record, h.Guard)
	addRegistryRoutes(v1, h.Registry, h.Stats)
	addEventRoutes(v1, h.Event)
	addAdminRoutes(v1, h.Admin, h.Event, []byte(cfg.JWTSecret))
	return router
}

func setMiddlewares(router *gin.Engine, cfg appconfig.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins())))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", handlers.HeaderClientID},
		ExposeHeaders: []string{"Content-Length"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courseforge/course-market/internal/api/handler"
	"github.com/courseforge/course-market/internal/api/middleware"
	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
	"github.com/courseforge/course-market/internal/core/service"
	"github.com/courseforge/course-market/internal/infrastructure/config"
	mongodb "github.com/courseforge/course-market/internal/infrastructure/db/mongo"
	redisdb "github.com/courseforge/course-market/internal/infrastructure/db/redis"
	healthhandlers "github.com/courseforge/course-market/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coursemarket"))

	// --- Dependencies ---
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewJWTTokenService(
		service.KindPolicy{Secret: []byte(cfg.JWT.LearnerSecret), TTL: cfg.JWT.LearnerTTL},
		service.KindPolicy{Secret: []byte(cfg.JWT.InstructorSecret), TTL: cfg.JWT.InstructorTTL},
	)

	learnerRepo := mongodb.NewPrincipalRepository(db, domain.KindLearner)
	instructorRepo := mongodb.NewPrincipalRepository(db, domain.KindInstructor)
	courseRepo := mongodb.NewCourseRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	learnerAuth := service.NewAuthService(domain.KindLearner, learnerRepo, hasher, tokens, audit, log)
	instructorAuth := service.NewAuthService(domain.KindInstructor, instructorRepo, hasher, tokens, audit, log)
	courseService := service.NewCourseService(courseRepo, catalogCache, audit, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, courseRepo, log)

	learnerHandler := handler.NewAuthHandler(learnerAuth)
	instructorHandler := handler.NewAuthHandler(instructorAuth)
	courseHandler := handler.NewCourseHandler(courseService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)

	learnerGate := middleware.Auth(tokens, domain.KindLearner)
	instructorGate := middleware.Auth(tokens, domain.KindInstructor)

	// --- Learner routes ---
	user := e.Group("/user")
	user.POST("/signup", learnerHandler.Signup)
	user.POST("/signin", learnerHandler.Signin)
	user.GET("/purchases", purchaseHandler.ListPurchases, learnerGate)

	// --- Instructor routes ---
	admin := e.Group("/admin")
	admin.POST("/signup", instructorHandler.Signup)
	admin.POST("/signin", instructorHandler.Signin)
	admin.POST("/course", courseHandler.Create, instructorGate)
	admin.PUT("/course", courseHandler.Update, instructorGate)
	admin.DELETE("/course", courseHandler.Delete, instructorGate)
	admin.GET("/course/bulk", courseHandler.ListOwned, instructorGate)

	// --- Public catalog + purchases ---
	course := e.Group("/course")
	course.GET("/preview", courseHandler.Preview)
	course.POST("/purchase", purchaseHandler.Purchase, learnerGate)

	// --- Health probes + metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package router

import (
	"time"

	"github.com/Chinmaytikole/DiscoverCart/internal/config"
	"github.com/Chinmaytikole/DiscoverCart/internal/content"
	"github.com/Chinmaytikole/DiscoverCart/internal/handler"
	"github.com/Chinmaytikole/DiscoverCart/internal/middleware"
	"github.com/Chinmaytikole/DiscoverCart/internal/repository"
	"github.com/Chinmaytikole/DiscoverCart/internal/service"
	"github.com/Chinmaytikole/DiscoverCart/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB, with the content
// synthesizer and session store injected where needed.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, gen content.TextGenerator) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	synth := content.NewSynthesizer(gen)
	sessions := session.NewStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// ── Repositories ─────────────────────────────────────────────────────────
	sectionRepo := repository.NewSectionRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	sectionSvc := service.NewSectionService(sectionRepo, productRepo, synth)
	productSvc := service.NewProductService(productRepo, sectionRepo, synth)

	// ── Handlers ─────────────────────────────────────────────────────────────
	publicH := handler.NewPublicHandler(sectionSvc, productSvc)
	sectionsH := handler.NewSectionsHandler(sectionSvc, productSvc)
	productsH := handler.NewProductsHandler(productSvc)
	authH := handler.NewAuthHandler(cfg, sessions)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public storefront — read-only, unauthenticated
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/", publicH.Home)
	r.GET("/section/:slug", publicH.Section)
	r.GET("/product/:slug", publicH.Product)
	r.GET("/search", publicH.Search)

	// Admin surface — every route sits behind the origin allowlist; an origin
	// miss looks exactly like a route that does not exist.
	originGate := middleware.OriginGate(cfg)

	admin := r.Group("/admin", originGate)
	{
		admin.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		admin.POST("/logout", authH.Logout)

		// Mutating routes additionally require elevation: a live session or
		// inline Basic credentials.
		gated := admin.Group("", middleware.RequireAdmin(cfg, sessions))
		{
			gated.GET("/overview", sectionsH.Overview)
			gated.POST("/sections", sectionsH.Create)
			gated.DELETE("/sections/:id", sectionsH.Delete)

			gated.POST("/products", productsH.Create)
			gated.PUT("/products/:id", productsH.Update)
			gated.PATCH("/products/:id/field", productsH.QuickUpdate)
			gated.DELETE("/products/:id", productsH.Delete)
		}
	}

	return r
}

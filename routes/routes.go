package routes

import (
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/config"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/controllers"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/metrics"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/middleware"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/services"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the process-wide collaborators shared by every request.
type Dependencies struct {
	Config    *config.Config
	Store     *repository.Store
	Favorites *services.FavoriteService
	// Limiter may be nil to disable rate limiting.
	Limiter utils.Limiter
}

// SetupRouter builds the gin.Engine and registers every route.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true

	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))
	if deps.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(deps.Limiter))
	}

	favorites := deps.Favorites
	if favorites == nil {
		favorites = services.NewFavoriteService(deps.Store)
	}

	indexController := controllers.NewIndexController(r.Routes)
	healthController := controllers.NewHealthController(deps.Store)
	catalogController := controllers.NewCatalogController(services.NewCatalogService(deps.Store))
	favoriteController := controllers.NewFavoriteController(favorites)

	r.GET("/", indexController.Index)
	r.GET("/health", healthController.HealthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/users", catalogController.ListUsers)
	r.GET("/users/favorites", favoriteController.ListForUser)

	r.GET("/people", catalogController.ListPeople)
	r.GET("/people/:people_id", catalogController.GetPerson)
	r.POST("/people", catalogController.CreatePerson)

	r.GET("/planets", catalogController.ListPlanets)
	r.GET("/planets/:planet_id", catalogController.GetPlanet)
	r.POST("/planets", catalogController.CreatePlanet)

	favoriteGroup := r.Group("/favorite")
	{
		favoriteGroup.POST("/people/:people_id", favoriteController.AddPeople)
		favoriteGroup.DELETE("/people/:people_id", favoriteController.RemovePeople)
		favoriteGroup.POST("/planet/:planet_id", favoriteController.AddPlanet)
		favoriteGroup.DELETE("/planet/:planet_id", favoriteController.RemovePlanet)
	}

	// Cross-user dumps, kept for debugging and switched off in production
	// with DEBUG_ENDPOINTS=false.
	if deps.Config.DebugEndpoints {
		r.GET("/user-favorite-people", favoriteController.ListAllPeople)
		r.GET("/user-favorite-planets", favoriteController.ListAllPlanets)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sabor/internal/cache"
	"sabor/internal/config"
	"sabor/internal/database"
	"sabor/internal/middleware"
	"sabor/internal/modules/auth"
	"sabor/internal/modules/comment"
	"sabor/internal/modules/favorite"
	"sabor/internal/modules/ingredient"
	"sabor/internal/modules/media"
	"sabor/internal/modules/notification"
	"sabor/internal/modules/rating"
	"sabor/internal/modules/recipe"
	"sabor/internal/modules/report"
	"sabor/internal/modules/step"
	"sabor/internal/modules/user"
	jwtsvc "sabor/internal/pkg/jwt"
	"sabor/internal/pkg/response"
	"sabor/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	redisClient := cache.NewClient()

	// repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	stepRepo := repository.NewStepRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// services
	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	notificationService := notification.NewService(notificationRepo)
	authService := auth.NewService(userRepo, followRepo, jwtService)
	userService := user.NewService(userRepo, followRepo, notificationService)
	recipeService := recipe.NewService(recipeRepo)
	ingredientService := ingredient.NewService(ingredientRepo, recipeRepo)
	stepService := step.NewService(stepRepo, recipeRepo)
	commentService := comment.NewService(commentRepo, recipeRepo, notificationService)
	ratingService := rating.NewService(ratingRepo, recipeRepo, notificationService, redisClient)
	favoriteService := favorite.NewService(favoriteRepo, recipeRepo, notificationService)
	mediaService := media.NewService(mediaRepo, recipeRepo)
	reportService := report.NewService(reportRepo, recipeRepo, commentRepo)

	// handlers
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	recipeHandler := recipe.NewHandler(recipeService)
	ingredientHandler := ingredient.NewHandler(ingredientService)
	stepHandler := step.NewHandler(stepService)
	commentHandler := comment.NewHandler(commentService)
	ratingHandler := rating.NewHandler(ratingService)
	favoriteHandler := favorite.NewHandler(favoriteService)
	mediaHandler := media.NewHandler(mediaService)
	notificationHandler := notification.NewHandler(notificationService)
	reportHandler := report.NewHandler(reportService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")

	api.GET("/test/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"message": "API is running"})
	})

	authHandler.RegisterPublicRoutes(api)
	recipeHandler.RegisterPublicRoutes(api)
	ingredientHandler.RegisterPublicRoutes(api)
	stepHandler.RegisterPublicRoutes(api)
	commentHandler.RegisterPublicRoutes(api)
	ratingHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(jwtService))

	authHandler.RegisterProtectedRoutes(protected)
	userHandler.RegisterRoutes(protected)
	recipeHandler.RegisterProtectedRoutes(protected)
	ingredientHandler.RegisterProtectedRoutes(protected)
	stepHandler.RegisterProtectedRoutes(protected)
	commentHandler.RegisterProtectedRoutes(protected)
	ratingHandler.RegisterProtectedRoutes(protected)
	favoriteHandler.RegisterProtectedRoutes(protected)
	mediaHandler.RegisterProtectedRoutes(protected)
	notificationHandler.RegisterProtectedRoutes(protected)
	reportHandler.RegisterProtectedRoutes(protected)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

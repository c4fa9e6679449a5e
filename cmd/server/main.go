package main

import (
	"log"

	"github.com/lemon-choi/RB-1/internal/config"
	"github.com/lemon-choi/RB-1/internal/database"
	"github.com/lemon-choi/RB-1/internal/handlers"
	"github.com/lemon-choi/RB-1/internal/middleware"
	"github.com/lemon-choi/RB-1/internal/quiz"
	"github.com/lemon-choi/RB-1/internal/services"

	_ "github.com/lemon-choi/RB-1/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Rainbow Bell API
// @version         1.0
// @description     Community platform API: identity quiz, board, dictionary
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	quizCatalog, err := quiz.DefaultCatalog()
	if err != nil {
		log.Fatalf("failed to load quiz catalog: %v", err)
	}
	resultCatalog, err := quiz.DefaultResults()
	if err != nil {
		log.Fatalf("failed to load result catalog: %v", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	boardService := services.NewBoardService(db)
	dictService := services.NewDictionaryService(db)
	quizService := services.NewQuizService(db, quizCatalog, resultCatalog, cfg.QuizPinnedResultID)

	authHandler := handlers.NewAuthHandler(authService)
	boardHandler := handlers.NewBoardHandler(boardService)
	dictHandler := handlers.NewDictionaryHandler(dictService)
	quizHandler := handlers.NewQuizHandler(quizService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		quizzes := api.Group("/quiz")
		{
			quizzes.GET("/questions", quizHandler.ListQuestions)
			quizzes.POST("/sessions", quizHandler.StartSession)
			quizzes.GET("/sessions/:id", quizHandler.GetSession)
			quizzes.POST("/sessions/:id/answers", quizHandler.Answer)
			quizzes.GET("/sessions/:id/result", quizHandler.GetResult)
			quizzes.POST("/sessions/:id/restart", quizHandler.Restart)
			quizzes.POST("/sessions/:id/save", middleware.JWTAuth(authService), quizHandler.SaveResult)
		}

		api.GET("/profile/quiz-results", middleware.JWTAuth(authService), quizHandler.ResultHistory)

		posts := api.Group("/posts")
		{
			posts.GET("", boardHandler.ListPosts)
			posts.GET("/:id", boardHandler.GetPost)
			posts.POST("", middleware.JWTAuth(authService), boardHandler.CreatePost)
			posts.PUT("/:id", middleware.JWTAuth(authService), boardHandler.UpdatePost)
			posts.DELETE("/:id", middleware.JWTAuth(authService), boardHandler.DeletePost)
		}

		api.GET("/board-categories", boardHandler.ListCategories)
		api.POST("/board-categories", middleware.JWTAuth(authService), middleware.AdminOnly(), boardHandler.CreateCategory)

		dict := api.Group("/dictionary")
		{
			dict.GET("/terms", dictHandler.ListTerms)
			dict.GET("/terms/:id", dictHandler.GetTerm)
			dict.POST("/terms", middleware.JWTAuth(authService), middleware.AdminOnly(), dictHandler.CreateTerm)
			dict.PUT("/terms/:id", middleware.JWTAuth(authService), middleware.AdminOnly(), dictHandler.UpdateTerm)
			dict.DELETE("/terms/:id", middleware.JWTAuth(authService), middleware.AdminOnly(), dictHandler.DeleteTerm)
			dict.GET("/categories", dictHandler.ListCategories)
			dict.POST("/categories", middleware.JWTAuth(authService), middleware.AdminOnly(), dictHandler.CreateCategory)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

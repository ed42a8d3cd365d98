package main

import (
	"log"

	"UserRatingApp/docs"
	"UserRatingApp/internal/config"
	"UserRatingApp/internal/handler"
	"UserRatingApp/internal/middleware"
	"UserRatingApp/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           User Rating App API
// @version         1.0
// @description     자기평가 입력 폼과 분석 대시보드를 제공하는 API입니다.
// @BasePath        /
func main() {
	cfg := config.Load()
	log.Printf("main(): starting with port=%s, data=%s", cfg.Server.Port, cfg.Data.FilePath)

	store := storage.NewStore(cfg.Data.FilePath)
	handler.Init(store)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())

	router.LoadHTMLGlob(cfg.Server.TemplateGlob)
	router.GET("/", handler.InputPage)
	router.GET("/dashboard", handler.DashboardPage)
	router.GET("/ws/ratings", handler.HandleLiveFeed)

	api := router.Group("/api")
	{
		api.POST("/ratings", middleware.SubmitRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst), handler.SubmitRating)
		api.GET("/ratings", handler.ListRatings)
		api.GET("/ratings/names", handler.ListNames)
		api.GET("/ratings/series", handler.GetSeries)
		api.GET("/ratings/stats", handler.GetStats)
		api.GET("/export", handler.ExportCSV)
	}

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Fatal(router.Run(":" + cfg.Server.Port))
}

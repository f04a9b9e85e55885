package main

import (
	"DatasetGenerator_StatisticsProject/internal/handler"
	"DatasetGenerator_StatisticsProject/internal/middleware"
	"DatasetGenerator_StatisticsProject/internal/storage"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file, using process environment")
	}
	storage.InitDB(os.Getenv("DB_PATH"))

	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))

	router.LoadHTMLGlob("templates/*.html")

	router.GET("/", handler.Index)
	router.POST("/", handler.Index)

	downloads := router.Group("/download").Use(middleware.DownloadRateLimit())
	{
		downloads.GET("/csv", handler.DownloadCSV)
		downloads.GET("/sav", handler.DownloadSAV)
	}

	router.POST("/admin/login", handler.AdminLogin)
	protected := router.Group("/admin").Use(middleware.AdminAuth())
	{
		protected.GET("/students", handler.ListStudents)
		protected.GET("/key/:id", handler.StudentAnswerKey)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(router.Run(":" + port))
}

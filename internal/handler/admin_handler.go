package handler

import (
	"log"
	"net/http"
	"os"
	"strings"

	"DatasetGenerator_StatisticsProject/internal/auth"
	"DatasetGenerator_StatisticsProject/internal/dataset"
	"DatasetGenerator_StatisticsProject/internal/stats"
	"DatasetGenerator_StatisticsProject/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// /admin/login request body
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the instructor password and issues a bearer token.
// ADMIN_PASSWORD_HASH (bcrypt) is preferred; ADMIN_PASSWORD is the
// plain-text fallback for local runs.
func AdminLogin(c *gin.Context) {
	var credentials AdminLoginRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(credentials.Password) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credentials.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
	} else if plain := os.Getenv("ADMIN_PASSWORD"); plain == "" || credentials.Password != plain {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.NewAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// ListStudents returns the roster of identifiers this instance has served.
func ListStudents(c *gin.Context) {
	students, err := storage.ListStudents()
	if err != nil {
		log.Printf("[ERROR] ListStudents failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// StudentAnswerKey recomputes and returns the full answer key for any
// identifier, so an instructor can grade submissions without opening the
// student's page.
func StudentAnswerKey(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing identifier"})
		return
	}

	ds, err := dataset.Generate(id, dataset.DefaultN)
	if err != nil {
		log.Printf("[ERROR] StudentAnswerKey: generation failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset"})
		return
	}
	answers, err := stats.Analyze(ds)
	if err != nil {
		log.Printf("[ERROR] StudentAnswerKey: analysis failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute answer key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": id, "answers": answers})
}

/**
* Name: 			page_handler.go
* Description: 		Gin HTTP handlers for the student-facing page
* Workflow: 		resolve identifier -> generate dataset -> compute answer key -> render
 */
package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"DatasetGenerator_StatisticsProject/internal/auth"
	"DatasetGenerator_StatisticsProject/internal/dataset"
	"DatasetGenerator_StatisticsProject/internal/stats"
	"DatasetGenerator_StatisticsProject/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "student_session"

// Index serves the exercise page. Identifier precedence: manual form
// override (POST), then the user_id query parameter, then the session
// cookie, then a freshly generated short id on first contact.
func Index(c *gin.Context) {
	// Manual id change posts back to the page; redirect POST -> GET so a
	// browser refresh does not resubmit the form.
	if c.Request.Method == http.MethodPost {
		if id := strings.TrimSpace(c.PostForm("manual_id")); id != "" {
			setSession(c, id)
			target := "/"
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusSeeOther, target)
			return
		}
	}

	id := resolveStudentID(c)
	setSession(c, id)

	// Roster bookkeeping for the instructor panel; the page itself does not
	// depend on it.
	if err := storage.TouchStudent(id); err != nil {
		log.Printf("[ERROR] Index: failed to record student %q: %v", id, err)
	}

	ds, err := dataset.Generate(id, dataset.DefaultN)
	if err != nil {
		log.Printf("[ERROR] Index: dataset generation failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset"})
		return
	}
	answers, err := stats.Analyze(ds)
	if err != nil {
		log.Printf("[ERROR] Index: analysis failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute answer key"})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"UserID":  id,
		"Traits":  dataset.Traits,
		"Dataset": ds,
		"Answers": answers,
	})
}

// resolveStudentID picks the identifier for this request. The query
// parameter wins over the cookie so instructors can hand out direct links.
func resolveStudentID(c *gin.Context) string {
	if id := strings.TrimSpace(c.Query("user_id")); id != "" {
		return id
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if id, err := auth.ParseSessionToken(cookie); err == nil && id != "" {
			return id
		}
	}
	// first contact: short random id, enough entropy for a course roster
	return uuid.NewString()[:8]
}

// setSession pins the identifier into the signed session cookie.
func setSession(c *gin.Context, id string) {
	token, err := auth.NewSessionToken(id)
	if err != nil {
		log.Printf("[ERROR] setSession: failed to sign session for %q: %v", id, err)
		return
	}
	// SameSite=None + Secure so the page keeps working inside an LMS iframe
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookie, token, int((120 * 24 * time.Hour).Seconds()), "/", "", true, true)
}

// sessionStudentID reads the identifier from the session cookie only
// (downloads must not mint new identities).
func sessionStudentID(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	id, err := auth.ParseSessionToken(cookie)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"DatasetGenerator_StatisticsProject/internal/dataset"
	"DatasetGenerator_StatisticsProject/internal/export"

	"github.com/gin-gonic/gin"
)

// DownloadCSV regenerates the session's dataset and serves it as a
// semicolon-separated CSV.
func DownloadCSV(c *gin.Context) {
	id, ok := sessionStudentID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ds, err := dataset.Generate(id, dataset.DefaultN)
	if err != nil {
		log.Printf("[ERROR] DownloadCSV: generation failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, ds); err != nil {
		log.Printf("[ERROR] DownloadCSV: encoding failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=dataset_%s.csv", safeFilename(id)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DownloadSAV regenerates the session's dataset and serves it as an SPSS
// system file. Exporter failures surface as a server error, never as a
// partial file.
func DownloadSAV(c *gin.Context) {
	id, ok := sessionStudentID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	ds, err := dataset.Generate(id, dataset.DefaultN)
	if err != nil {
		log.Printf("[ERROR] DownloadSAV: generation failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate dataset"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSAV(&buf, ds); err != nil {
		log.Printf("[ERROR] DownloadSAV: SAV export failed for %q: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SAV export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=dataset_%s.sav", safeFilename(id)))
	c.Data(http.StatusOK, "application/x-spss-sav", buf.Bytes())
}

// safeFilename strips anything that could break the Content-Disposition
// header out of a user-supplied identifier.
func safeFilename(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, id)
}

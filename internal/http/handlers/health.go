package handlers

import (
	"net/http"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}

	tables := gin.H{}
	for _, t := range []string{"users", "listings", "bookings", "reviews"} {
		tables[t] = intdb.HasTable(intconfig.DB, t)
	}
	c.JSON(http.StatusOK, gin.H{"status": "up", "tables": tables})
}

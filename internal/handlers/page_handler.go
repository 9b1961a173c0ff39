package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	render(c, http.StatusOK, "home.html", nil)
}

func NotFound(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotFound, "Page not found.")
}

// Recovered renders the 500 page after a panic.
func Recovered(c *gin.Context, _ any) {
	helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong.")
}

func Health(c *gin.Context) {
	gormDB, exists := middleware.GetDB(c)
	if !exists {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	sqlDB, err := gormDB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

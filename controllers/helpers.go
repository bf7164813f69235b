package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/campus-clubs-go/config"
)

const (
	msgNoOrganization       = "No organization with this name"
	msgNoOrganizationForNew = "No organization with that name"
)

// storeFailure logs the driver error and answers with a generic message.
func storeFailure(app *config.App, c *gin.Context, err error, msg string) {
	app.Log.WithError(err).WithField("path", c.Request.URL.Path).Error(msg)
	c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// NotImplemented answers for routes that are registered but have no behavior yet.
func NotImplemented() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "not implemented"})
	}
}

func Ping() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}

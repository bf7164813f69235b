package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/campus-clubs-go/config"
)

// ---------------- COURSES ----------------
func ListCourses(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		courses, err := app.Courses.ListCourses(c.Request.Context())
		if err != nil {
			// Transport, shape and missing-term failures all look the same to the caller.
			app.Log.WithError(err).Error("course metadata fetch failed")
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch courses"})
			return
		}

		c.JSON(http.StatusOK, courses)
	}
}

// ---------------- SELECTED COURSES ----------------
func SetSelectedCourses(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			SelectedCourses []string `json:"selectedCourses" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userID := c.Param("userId")
		if err := app.Store.SetSelectedCourses(c.Request.Context(), userID, input.SelectedCourses); err != nil {
			storeFailure(app, c, err, "could not update selected courses")
			return
		}

		c.String(http.StatusOK, "Selected courses updated")
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/campus-clubs-go/config"
	models "github.com/phillip/campus-clubs-go/models"
	utils "github.com/phillip/campus-clubs-go/utils"
)

// ---------------- CREATE ----------------
func CreateEvent(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		org, ok := findOrganization(app, c, msgNoOrganizationForNew)
		if !ok {
			return
		}

		var input struct {
			EventName        string `json:"eventName" binding:"required"`
			EventDescription string `json:"eventDescription"`
			EventDate        string `json:"eventDate"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.EventDate != "" {
			if _, err := utils.ParseDate(input.EventDate); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		// The new event's ID is not part of the response.
		_, err := app.Store.CreateEvent(c.Request.Context(), &models.Event{
			OrgID:            org.ID,
			EventName:        input.EventName,
			EventDescription: input.EventDescription,
			EventDate:        input.EventDate,
		})
		if err != nil {
			storeFailure(app, c, err, "could not create event")
			return
		}

		c.String(http.StatusOK, "Event created:"+input.EventName)
	}
}

// ---------------- LIST ----------------
func ListEvents(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := app.Store.ListEvents(c.Request.Context())
		if err != nil {
			storeFailure(app, c, err, "could not fetch events")
			return
		}
		if len(events) == 0 {
			c.JSON(http.StatusOK, []models.Event{})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

// ---------------- LIST BY ORGANIZATION ----------------
func ListOrganizationEvents(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		org, ok := findOrganization(app, c, msgNoOrganization)
		if !ok {
			return
		}

		events, err := app.Store.ListEventsByOrganization(c.Request.Context(), org.ID)
		if err != nil {
			storeFailure(app, c, err, "could not fetch events")
			return
		}
		if len(events) == 0 {
			c.JSON(http.StatusOK, []models.Event{})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

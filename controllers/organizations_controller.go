package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/campus-clubs-go/config"
	models "github.com/phillip/campus-clubs-go/models"
	store "github.com/phillip/campus-clubs-go/store"
)

type organizationInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Admin       string `json:"admin"`
}

// ---------------- CREATE ----------------
func CreateOrganization(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input organizationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Names are not checked for duplicates.
		id, err := app.Store.CreateOrganization(c.Request.Context(), &models.Organization{
			Name:        input.Name,
			Description: input.Description,
			Admin:       input.Admin,
		})
		if err != nil {
			storeFailure(app, c, err, "could not create club")
			return
		}

		c.String(http.StatusCreated, fmt.Sprintf("Club with ID %s created", id.Hex()))
	}
}

// ---------------- LIST ----------------
func ListOrganizations(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgs, err := app.Store.ListOrganizations(c.Request.Context())
		if err != nil {
			storeFailure(app, c, err, "could not fetch clubs")
			return
		}
		if len(orgs) == 0 {
			c.JSON(http.StatusOK, []models.Organization{})
			return
		}

		c.JSON(http.StatusOK, orgs)
	}
}

// ---------------- GET ----------------
func GetOrganization(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		org, ok := findOrganization(app, c, msgNoOrganization)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, org)
	}
}

// ---------------- UPDATE ----------------
func UpdateOrganization(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, ok := findOrganization(app, c, msgNoOrganization)
		if !ok {
			return
		}

		var input organizationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Overwrites all three fields; a new name becomes the lookup key.
		err := app.Store.UpdateOrganization(c.Request.Context(), existing.ID, &models.Organization{
			Name:        input.Name,
			Description: input.Description,
			Admin:       input.Admin,
		})
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, msgNoOrganization)
			return
		}
		if err != nil {
			storeFailure(app, c, err, "could not update club")
			return
		}

		c.String(http.StatusOK, "Club information updated")
	}
}

// ---------------- DELETE ----------------
func DeleteOrganization(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, ok := findOrganization(app, c, msgNoOrganization)
		if !ok {
			return
		}

		err := app.Store.DeleteOrganization(c.Request.Context(), existing.ID)
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, msgNoOrganization)
			return
		}
		if err != nil {
			storeFailure(app, c, err, "could not delete club")
			return
		}

		c.String(http.StatusOK, "Club deleted")
	}
}

// findOrganization resolves the :orgName path parameter. On a miss it has
// already written the 404 (with notFoundMsg) or 500 response.
func findOrganization(app *config.App, c *gin.Context, notFoundMsg string) (*models.Organization, bool) {
	org, err := app.Store.FindOrganizationByName(c.Request.Context(), c.Param("orgName"))
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, notFoundMsg)
		return nil, false
	}
	if err != nil {
		storeFailure(app, c, err, "could not fetch club")
		return nil, false
	}
	return org, true
}

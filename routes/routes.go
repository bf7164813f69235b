package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/phillip/campus-clubs-go/config"
	controllers "github.com/phillip/campus-clubs-go/controllers"
	middleware "github.com/phillip/campus-clubs-go/middleware"
)

// NewRouter builds the engine with middleware and all routes.
func NewRouter(app *config.App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(app.Log))
	r.Use(middleware.CORS(app.Config.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	SetupRoutes(r, app)
	return r
}

func SetupRoutes(r *gin.Engine, app *config.App) {
	r.GET("/ping", controllers.Ping())

	// Users are managed by the identity provider; only course selection lives here.
	r.GET("/courses", controllers.ListCourses(app))
	r.PUT("/users/:userId/selectedCourses", controllers.SetSelectedCourses(app))

	// Organizations, addressed by name
	orgs := r.Group("/organizations")
	{
		orgs.POST("", controllers.CreateOrganization(app))
		orgs.GET("", controllers.ListOrganizations(app))
		orgs.GET("/:orgName", controllers.GetOrganization(app))
		orgs.PUT("/:orgName", controllers.UpdateOrganization(app))
		orgs.DELETE("/:orgName", controllers.DeleteOrganization(app))

		orgs.POST("/:orgName/newEvent", controllers.CreateEvent(app))
		orgs.GET("/:orgName/events", controllers.ListOrganizationEvents(app))
	}

	// Events
	r.GET("/get-all-events", controllers.ListEvents(app))

	// Membership is not implemented yet.
	r.POST("/clubs/:id/join/:userId", controllers.NotImplemented())
}

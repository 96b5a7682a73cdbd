package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Availability(c *ginext.Context)
	BookGrooming(c *ginext.Context)

	StartWorkflow(c *ginext.Context)
	GetWorkflow(c *ginext.Context)
	SubmitStep(c *ginext.Context)
	BackWorkflow(c *ginext.Context)
	SubmitWorkflow(c *ginext.Context)

	ListReservations(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CompleteReservation(c *ginext.Context)
	Occupancy(c *ginext.Context)
	RebuildOccupancy(c *ginext.Context)
	AuditOccupancy(c *ginext.Context)
}

// InitRouter mounts the API. metrics may be nil when metrics are disabled.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public booking
		api.GET("/availability", h.Availability)
		api.POST("/bookings/grooming", h.BookGrooming)

		// Multi-step registration
		api.POST("/workflows", h.StartWorkflow)
		api.GET("/workflows/:id", h.GetWorkflow)
		api.POST("/workflows/:id/steps/:step", h.SubmitStep)
		api.POST("/workflows/:id/back", h.BackWorkflow)
		api.POST("/workflows/:id/submit", h.SubmitWorkflow)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/reservations", h.ListReservations)
		admin.POST("/reservations/:id/cancel", h.CancelReservation)
		admin.POST("/reservations/:id/complete", h.CompleteReservation)
		admin.GET("/occupancy", h.Occupancy)
		admin.POST("/occupancy/rebuild", h.RebuildOccupancy)
		admin.POST("/occupancy/audit", h.AuditOccupancy)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}

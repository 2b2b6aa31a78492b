package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateTour(c *ginext.Context)
	GetTour(c *ginext.Context)
	UpdateTour(c *ginext.Context)
	DeleteTour(c *ginext.Context)
	SetTourActive(c *ginext.Context)
	ListTours(c *ginext.Context)
	ListTourTickets(c *ginext.Context)
	CreateTicket(c *ginext.Context)
	GetTicket(c *ginext.Context)
	UpdateTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Tours
		api.POST("/tours", h.CreateTour)
		api.GET("/tours", h.ListTours)
		api.GET("/tours/:id", h.GetTour)
		api.PUT("/tours/:id", h.UpdateTour)
		api.DELETE("/tours/:id", h.DeleteTour)
		api.POST("/tours/:id/active", h.SetTourActive)
		api.GET("/tours/:id/tickets", h.ListTourTickets)

		// Tickets
		api.POST("/tickets", h.CreateTicket)
		api.GET("/tickets", h.ListTickets)
		api.GET("/tickets/:id", h.GetTicket)
		api.PUT("/tickets/:id", h.UpdateTicket)
		api.DELETE("/tickets/:id", h.CancelTicket)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}

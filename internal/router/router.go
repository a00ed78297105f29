package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBoard(c *ginext.Context)
	Reserve(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	CreateBonus(c *ginext.Context)
	ListBonuses(c *ginext.Context)
	ToggleBonus(c *ginext.Context)
	DeleteBonus(c *ginext.Context)
	CreateReminder(c *ginext.Context)
	ListReminders(c *ginext.Context)
	ToggleReminder(c *ginext.Context)
	DeleteReminder(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Board
		api.GET("/board", h.GetBoard)

		// Reservations
		api.POST("/reservations", h.Reserve)
		api.POST("/reservations/:id/cancel", h.CancelReservation)

		// Bonuses
		api.POST("/bonuses", h.CreateBonus)
		api.GET("/bonuses", h.ListBonuses)
		api.POST("/bonuses/:id/toggle", h.ToggleBonus)
		api.DELETE("/bonuses/:id", h.DeleteBonus)

		// Reminders
		api.POST("/reminders", h.CreateReminder)
		api.GET("/reminders", h.ListReminders)
		api.POST("/reminders/:id/toggle", h.ToggleReminder)
		api.DELETE("/reminders/:id", h.DeleteReminder)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

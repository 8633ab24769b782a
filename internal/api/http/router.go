package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, doctor Doctor, views Views, l *logrus.Logger) {
	h := NewHandler(f, doctor, views, l)
	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Post("/pass", h.RunPass)
	router.Get("/summary/daily", h.DailySummary)
	router.Get("/issues/recurring", h.RecurringIssues)
	router.Get("/escalations", h.RecentEscalations)
	router.Get("/failures", h.RecentFailures)
}

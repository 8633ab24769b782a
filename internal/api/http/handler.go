package http

import (
	"context"
	"time"

	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees"
	"doctor/internal/usecasees/structs"
	"doctor/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Doctor interface {
	RunPass(ctx context.Context) *structs.PassReport
}

type Views interface {
	DailySummary(day time.Time) ([]postgres.SummaryRow, error)
	RecurringIssues() ([]usecasees.RecurringIssueStat, error)
	RecentEscalations(limit int) ([]models.ActivityLogEntry, error)
	RecentFailures(limit int) ([]models.ActivityLogEntry, error)
}

type Handler struct {
	fiber  *fiber.App
	doctor Doctor
	views  Views
	logger *logrus.Logger
}

func NewHandler(f *fiber.App, doctor Doctor, views Views, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:  f,
		doctor: doctor,
		views:  views,
		logger: l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// RunPass triggers one on-demand reconciliation pass and returns its report.
func (h *Handler) RunPass(c *fiber.Ctx) error {
	report := h.doctor.RunPass(c.Context())

	return c.JSON(report)
}

func (h *Handler) DailySummary(c *fiber.Ctx) error {
	rows, err := h.views.DailySummary(time.Now())
	if err != nil {
		h.logger.WithError(err).Error("daily summary failed")

		return fiber.ErrInternalServerError
	}

	return c.JSON(rows)
}

func (h *Handler) RecurringIssues(c *fiber.Ctx) error {
	stats, err := h.views.RecurringIssues()
	if err != nil {
		h.logger.WithError(err).Error("recurring issues failed")

		return fiber.ErrInternalServerError
	}

	return c.JSON(stats)
}

func (h *Handler) RecentEscalations(c *fiber.Ctx) error {
	entries, err := h.views.RecentEscalations(c.QueryInt("limit", 20))
	if err != nil {
		h.logger.WithError(err).Error("recent escalations failed")

		return fiber.ErrInternalServerError
	}

	return c.JSON(entries)
}

func (h *Handler) RecentFailures(c *fiber.Ctx) error {
	entries, err := h.views.RecentFailures(c.QueryInt("limit", 20))
	if err != nil {
		h.logger.WithError(err).Error("recent failures failed")

		return fiber.ErrInternalServerError
	}

	return c.JSON(entries)
}

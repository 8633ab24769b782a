package usecasees

import (
	"context"
	"fmt"
	"time"

	"doctor/internal/controllers"

	"github.com/sirupsen/logrus"
)

type tgmUseCase struct {
	doctorUseCase *doctorUseCase
	viewsUseCase  *viewsUseCase

	tgmController controllers.TgmCtrl

	logger *logrus.Logger
}

func NewTgmUseCase(
	doctorUseCase *doctorUseCase,
	viewsUseCase *viewsUseCase,
	tgmController controllers.TgmCtrl,
	logger *logrus.Logger,
) *tgmUseCase {
	return &tgmUseCase{
		doctorUseCase: doctorUseCase,
		viewsUseCase:  viewsUseCase,
		tgmController: tgmController,
		logger:        logger,
	}
}

func (u *tgmUseCase) CommandProcessor() {
	for update := range u.tgmController.GetUpdates() {
		if update.Message == nil {
			continue
		}

		if u.tgmController.CheckChatID(update.Message.Chat.ID) {
			switch update.Message.Command() {
			case "ping":
				u.pingProc()
			case "stat":
				u.statProc()
			case "issues":
				u.issuesProc()
			case "pass":
				u.passProc()
			}
		}
	}
}

func (u *tgmUseCase) pingProc() {
	if err := u.tgmController.Send(
		fmt.Sprintf(
			"PONG [ %s ]",
			time.Now().Format(time.RFC822),
		)); err != nil {
		u.logger.WithField("method", "pingProc").Debug(err)
	}
}

func (u *tgmUseCase) statProc() {
	rows, err := u.viewsUseCase.DailySummary(time.Now())
	if err != nil {
		u.logger.
			WithError(err).
			Error("daily summary failed")

		return
	}

	msg := "[ Daily Activity ]\n"
	for _, row := range rows {
		msg += fmt.Sprintf("%s / %s:\t%d\n", row.Decision, row.ActionResult, row.Count)
	}

	if len(rows) == 0 {
		msg += "no activity today\n"
	}

	if err := u.tgmController.Send(msg); err != nil {
		u.logger.
			WithError(err).
			Error("stat send failed")
	}
}

func (u *tgmUseCase) issuesProc() {
	stats, err := u.viewsUseCase.RecurringIssues()
	if err != nil {
		u.logger.
			WithError(err).
			Error("recurring issues failed")

		return
	}

	msg := "[ Recurring Issues ]\n"
	for _, stat := range stats {
		msg += fmt.Sprintf(
			"%s:\ttotal %d\tfixes %d\tsuccess %.0f%%\tescalated %d\n",
			stat.IssueType,
			stat.Total,
			stat.AutoFixes,
			stat.SuccessRate*100,
			stat.Escalations,
		)
	}

	if len(stats) == 0 {
		msg += "none in window\n"
	}

	if err := u.tgmController.Send(msg); err != nil {
		u.logger.
			WithError(err).
			Error("issues send failed")
	}
}

func (u *tgmUseCase) passProc() {
	report := u.doctorUseCase.RunPass(context.Background())

	if err := u.tgmController.Send(fmt.Sprintf(
		"[ Pass %s ]\nstatus:\t%s\nissues:\t%d\ncritical:\t%d\nwarning:\t%d\nfixed:\t%d\nescalated:\t%d\ndeferred:\t%d\nfailed:\t%d",
		report.SessionID,
		report.Status,
		report.IssuesFound,
		report.Critical,
		report.Warning,
		report.AutoFixed,
		report.Escalated,
		report.Deferred,
		report.Failed,
	)); err != nil {
		u.logger.
			WithError(err).
			Error("pass report send failed")
	}
}

package controllers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TgmController struct {
	tgmBot *tgbotapi.BotAPI
	chatID int64
}

func NewTgmController(
	tgmBot *tgbotapi.BotAPI,
	chatID int64,
) *TgmController {
	return &TgmController{
		tgmBot: tgmBot,
		chatID: chatID,
	}
}

func (c *TgmController) Send(text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)

	if _, err := c.tgmBot.Send(msg); err != nil {
		return err
	}

	return nil
}

// Escalate sends a formatted escalation notification. Delivery is
// fire-and-forget on the caller side, an error here never fails a pass.
func (c *TgmController) Escalate(priority, message, context string) error {
	return c.Send(fmt.Sprintf("[ Escalation | %s ]\n%s\n%s", priority, message, context))
}

func (c *TgmController) CheckChatID(chatID int64) bool {
	return c.chatID == chatID
}

func (c *TgmController) GetUpdates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return c.tgmBot.GetUpdatesChan(u)
}

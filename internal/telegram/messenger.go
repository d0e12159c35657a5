package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/talantmuenster/telebot/internal/model"
)

// Messenger implements review.Messenger over the Telegram Bot API.
type Messenger struct {
	bot *tgbotapi.BotAPI
}

func NewMessenger(bot *tgbotapi.BotAPI) *Messenger {
	return &Messenger{bot: bot}
}

// SendSubmission delivers the record as a photo with caption when it
// carries an image, otherwise as a plain text message.
func (m *Messenger) SendSubmission(chatID int64, sub *model.Submission, kb tgbotapi.InlineKeyboardMarkup) (int, error) {
	if sub.HasPhoto() {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(sub.PhotoID))
		photo.Caption = sub.Text
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = kb
		sent, err := m.bot.Send(photo)
		if err != nil {
			return 0, fmt.Errorf("sending photo message: %w", err)
		}
		return sent.MessageID, nil
	}

	msg := tgbotapi.NewMessage(chatID, sub.Text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = kb
	sent, err := m.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("sending text message: %w", err)
	}
	return sent.MessageID, nil
}

func (m *Messenger) SendText(chatID int64, text string) error {
	_, err := m.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (m *Messenger) EditReplyMarkup(chatID int64, messageID int, kb tgbotapi.InlineKeyboardMarkup) error {
	_, err := m.bot.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, kb))
	return err
}

func (m *Messenger) DeleteMessage(chatID int64, messageID int) error {
	_, err := m.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (m *Messenger) AnswerCallback(callbackID, text string) error {
	_, err := m.bot.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

// SendManagerPanel shows the persistent reply-keyboard menu to the
// manager chat.
func (m *Messenger) SendManagerPanel(chatID int64) error {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelMenuAll),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(labelMenuFavorites),
			tgbotapi.NewKeyboardButton(labelMenuSelected),
		),
	)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, "Панель менеджера")
	msg.ReplyMarkup = keyboard
	_, err := m.bot.Send(msg)
	return err
}

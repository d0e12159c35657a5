package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/talantmuenster/telebot/internal/model"
	"github.com/talantmuenster/telebot/internal/store"
)

const photoPlaceholder = "📷 Фото без описания"

// Messenger is the narrow messaging-platform capability the review flow
// needs. The telegram package provides the real implementation.
type Messenger interface {
	// SendSubmission delivers the record as a photo or text message
	// with the given inline controls and returns the message id.
	SendSubmission(chatID int64, sub *model.Submission, kb tgbotapi.InlineKeyboardMarkup) (int, error)

	SendText(chatID int64, text string) error

	// EditReplyMarkup replaces the inline controls of a sent message,
	// leaving its content untouched.
	EditReplyMarkup(chatID int64, messageID int, kb tgbotapi.InlineKeyboardMarkup) error

	DeleteMessage(chatID int64, messageID int) error

	// AnswerCallback acknowledges a control press, optionally with a
	// short transient notice.
	AnswerCallback(callbackID, text string) error
}

// Inbound is a submission candidate from a non-manager chat, already
// past classification.
type Inbound struct {
	ChatID  int64
	Text    string // message text or photo caption
	PhotoID string // empty for text-only submissions
}

// Callback is a decoded control press on a submission message.
type Callback struct {
	ID        string // callback query id, for acknowledgments
	ChatID    int64
	MessageID int
	Action    Action
}

// Service orchestrates intake, filter selection, toggles and paging.
// It holds no per-session state; every interaction is reconstructed
// from the callback payload plus a fresh store query.
type Service struct {
	store         store.Store
	msgr          Messenger
	managerChatID int64
}

func NewService(st store.Store, msgr Messenger, managerChatID int64) *Service {
	return &Service{store: st, msgr: msgr, managerChatID: managerChatID}
}

// HandleMenu answers a manager menu press: fetch the filtered list and
// show its first record, or report that the list is empty.
func (s *Service) HandleMenu(ctx context.Context, chatID int64, filter model.Filter, label string) error {
	subs, err := s.store.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	if len(subs) == 0 {
		return s.msgr.SendText(chatID, fmt.Sprintf("❌ %s пока нет", label))
	}

	first := subs[0]
	pos := Position{Index: 1, Total: len(subs)}
	if _, err := s.msgr.SendSubmission(chatID, first, Keyboard(first, &pos)); err != nil {
		return fmt.Errorf("sending submission %s: %w", first.ID, err)
	}
	return nil
}

// HandleIntake normalizes and persists an accepted submission, then
// delivers it to the manager without list context.
func (s *Service) HandleIntake(ctx context.Context, in Inbound) error {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		text = photoPlaceholder
	}

	stored, err := s.store.Create(ctx, &model.Submission{
		ChatID:  in.ChatID,
		Text:    text,
		PhotoID: in.PhotoID,
	})
	if err != nil {
		return fmt.Errorf("storing submission: %w", err)
	}
	slog.Info("submission stored", "id", stored.ID, "chat_id", stored.ChatID, "photo", stored.HasPhoto())

	if s.managerChatID == 0 {
		slog.Warn("manager chat not configured, submission not delivered", "id", stored.ID)
		return nil
	}

	if _, err := s.msgr.SendSubmission(s.managerChatID, stored, Keyboard(stored, nil)); err != nil {
		return fmt.Errorf("delivering submission %s to manager: %w", stored.ID, err)
	}
	return nil
}

// HandleAction runs a decoded control press.
func (s *Service) HandleAction(ctx context.Context, cb Callback) error {
	switch cb.Action.Kind {
	case ActionNoop:
		return s.msgr.AnswerCallback(cb.ID, "")
	case ActionNext, ActionPrevious:
		return s.navigate(ctx, cb)
	case ActionFavorite, ActionSelected:
		return s.toggle(ctx, cb)
	}
	return nil
}

// navigate replaces the displayed message with the record one step away.
// The old message is deleted rather than edited because the next record
// may switch between photo and text content.
func (s *Service) navigate(ctx context.Context, cb Callback) error {
	// Directional steps always page the full list, regardless of which
	// filter the message was rendered under.
	subs, err := s.store.List(ctx, model.FilterNone)
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	dir := Next
	if cb.Action.Kind == ActionPrevious {
		dir = Previous
	}

	pos, err := Step(cb.Action.Pos, dir, len(subs))
	if errors.Is(err, ErrEmptyList) {
		return s.msgr.AnswerCallback(cb.ID, "Список пуст")
	}
	if err != nil {
		return err
	}

	if err := s.msgr.AnswerCallback(cb.ID, ""); err != nil {
		slog.Warn("answering callback", "error", err)
	}
	if err := s.msgr.DeleteMessage(cb.ChatID, cb.MessageID); err != nil {
		return fmt.Errorf("deleting message %d: %w", cb.MessageID, err)
	}

	sub := subs[pos.Index-1]
	if _, err := s.msgr.SendSubmission(cb.ChatID, sub, Keyboard(sub, &pos)); err != nil {
		return fmt.Errorf("sending submission %s: %w", sub.ID, err)
	}
	return nil
}

// toggle flips one flag on the record, then re-anchors the message's
// navigation row against a fresh list: the record's position may have
// shifted since the keyboard was rendered.
func (s *Service) toggle(ctx context.Context, cb Callback) error {
	sub, err := s.store.GetByID(ctx, cb.Action.DocID)
	if errors.Is(err, store.ErrNotFound) {
		return s.msgr.AnswerCallback(cb.ID, "Заявка не найдена")
	}
	if err != nil {
		return fmt.Errorf("fetching submission %s: %w", cb.Action.DocID, err)
	}

	var updates store.Updates
	if cb.Action.Kind == ActionFavorite {
		v := !sub.Favorite
		updates.Favorite = &v
		sub.Favorite = v
	} else {
		v := !sub.Selected
		updates.Selected = &v
		sub.Selected = v
	}

	if err := s.store.Update(ctx, sub.ID, updates); err != nil {
		return fmt.Errorf("updating submission %s: %w", sub.ID, err)
	}

	subs, err := s.store.List(ctx, model.FilterNone)
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	pos, err := Locate(sub.ID, subs)
	if errors.Is(err, ErrNotFound) {
		return s.msgr.AnswerCallback(cb.ID, "⚠️ Не удалось обновить")
	}
	if err != nil {
		return err
	}

	if err := s.msgr.EditReplyMarkup(cb.ChatID, cb.MessageID, Keyboard(sub, &pos)); err != nil {
		return fmt.Errorf("editing controls on message %d: %w", cb.MessageID, err)
	}
	return s.msgr.AnswerCallback(cb.ID, "✅ Сохранено")
}

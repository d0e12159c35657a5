package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/talantmuenster/telebot/internal/model"
	"github.com/talantmuenster/telebot/internal/review"
)

// submissionMarker is the glyph a text entry must start with to be
// accepted as a submission. Photo messages are accepted regardless.
const submissionMarker = "🎄"

// Manager menu button labels. These double as filter selectors and as
// the subject of the "none found" reply.
const (
	labelMenuAll       = "📋 Все заявки"
	labelMenuFavorites = "⭐ Избранные"
	labelMenuSelected  = "🏁 Отобранные"
)

// EventKind classifies an inbound update.
type EventKind int

const (
	EventIgnored EventKind = iota
	EventStart
	EventMenuPress
	EventControlPress
	EventNewSubmission
)

// Event is a classified inbound update. Only the fields relevant to
// its kind are populated.
type Event struct {
	Kind        EventKind
	ChatID      int64
	Filter      model.Filter
	FilterLabel string
	Inbound     review.Inbound
	Callback    review.Callback
}

// Classify sorts an update into exactly one event kind based on sender
// identity and message shape. Malformed callback payloads are ignored
// without feedback; payloads are fully under this bot's control.
func Classify(u tgbotapi.Update, managerID int64) Event {
	if u.CallbackQuery != nil {
		cq := u.CallbackQuery
		if cq.Message == nil {
			return Event{Kind: EventIgnored}
		}
		action, ok := review.ParseAction(cq.Data)
		if !ok {
			return Event{Kind: EventIgnored}
		}
		return Event{Kind: EventControlPress, Callback: review.Callback{
			ID:        cq.ID,
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			Action:    action,
		}}
	}

	msg := u.Message
	if msg == nil || msg.Chat == nil {
		return Event{Kind: EventIgnored}
	}

	if msg.IsCommand() && msg.Command() == "start" {
		return Event{Kind: EventStart, ChatID: msg.Chat.ID}
	}

	if managerID != 0 && msg.Chat.ID == managerID {
		switch msg.Text {
		case labelMenuAll:
			return Event{Kind: EventMenuPress, ChatID: msg.Chat.ID, Filter: model.FilterNone, FilterLabel: labelMenuAll}
		case labelMenuFavorites:
			return Event{Kind: EventMenuPress, ChatID: msg.Chat.ID, Filter: model.FilterFavorite, FilterLabel: labelMenuFavorites}
		case labelMenuSelected:
			return Event{Kind: EventMenuPress, ChatID: msg.Chat.ID, Filter: model.FilterSelected, FilterLabel: labelMenuSelected}
		}
		return Event{Kind: EventIgnored}
	}

	content := msg.Text
	if content == "" {
		content = msg.Caption
	}
	photoID := largestPhotoID(msg.Photo)

	if !strings.HasPrefix(content, submissionMarker) && photoID == "" {
		return Event{Kind: EventIgnored}
	}
	return Event{Kind: EventNewSubmission, Inbound: review.Inbound{
		ChatID:  msg.Chat.ID,
		Text:    content,
		PhotoID: photoID,
	}}
}

// largestPhotoID picks the highest-resolution rendition; Telegram sends
// photo sizes smallest first.
func largestPhotoID(photos []tgbotapi.PhotoSize) string {
	if len(photos) == 0 {
		return ""
	}
	return photos[len(photos)-1].FileID
}

// Dispatcher routes classified events into the review service.
type Dispatcher struct {
	svc       *review.Service
	msgr      *Messenger
	managerID int64
}

func NewDispatcher(svc *review.Service, msgr *Messenger, managerID int64) *Dispatcher {
	return &Dispatcher{svc: svc, msgr: msgr, managerID: managerID}
}

// Dispatch handles one inbound update. Failures are logged and the
// event dropped; there is no retry at this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, u tgbotapi.Update) {
	ev := Classify(u, d.managerID)

	var err error
	switch ev.Kind {
	case EventStart:
		err = d.handleStart(ev.ChatID)
	case EventMenuPress:
		err = d.svc.HandleMenu(ctx, ev.ChatID, ev.Filter, ev.FilterLabel)
	case EventControlPress:
		err = d.svc.HandleAction(ctx, ev.Callback)
	case EventNewSubmission:
		err = d.svc.HandleIntake(ctx, ev.Inbound)
	case EventIgnored:
		return
	}

	if err != nil {
		slog.Error("handling update failed", "update_id", u.UpdateID, "error", err)
	}
}

func (d *Dispatcher) handleStart(chatID int64) error {
	if d.managerID != 0 && chatID == d.managerID {
		return d.msgr.SendManagerPanel(chatID)
	}
	return d.msgr.SendText(chatID, "Добро пожаловать! Пришлите вашу заявку, начинающуюся с 🎄.")
}

package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/talantmuenster/telebot/internal/model"
	"github.com/talantmuenster/telebot/internal/review"
)

const testManagerID int64 = 777

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}}
}

func startUpdate(chatID int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      "/start",
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
	}}
}

func callbackUpdate(data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 42,
			Chat:      &tgbotapi.Chat{ID: testManagerID},
		},
	}}
}

func TestClassifyMenuPresses(t *testing.T) {
	cases := []struct {
		text   string
		filter model.Filter
	}{
		{"📋 Все заявки", model.FilterNone},
		{"⭐ Избранные", model.FilterFavorite},
		{"🏁 Отобранные", model.FilterSelected},
	}
	for _, tc := range cases {
		ev := Classify(textUpdate(testManagerID, tc.text), testManagerID)
		if ev.Kind != EventMenuPress {
			t.Errorf("Classify(%q).Kind = %d, want EventMenuPress", tc.text, ev.Kind)
			continue
		}
		if ev.Filter != tc.filter {
			t.Errorf("Classify(%q).Filter = %q, want %q", tc.text, ev.Filter, tc.filter)
		}
		if ev.FilterLabel != tc.text {
			t.Errorf("Classify(%q).FilterLabel = %q", tc.text, ev.FilterLabel)
		}
	}
}

func TestClassifyManagerFreeTextIgnored(t *testing.T) {
	ev := Classify(textUpdate(testManagerID, "привет"), testManagerID)
	if ev.Kind != EventIgnored {
		t.Errorf("Kind = %d, want EventIgnored", ev.Kind)
	}
}

func TestClassifyMarkerSubmission(t *testing.T) {
	ev := Classify(textUpdate(42, "🎄 I would like a puppy"), testManagerID)
	if ev.Kind != EventNewSubmission {
		t.Fatalf("Kind = %d, want EventNewSubmission", ev.Kind)
	}
	if ev.Inbound.ChatID != 42 || ev.Inbound.Text != "🎄 I would like a puppy" {
		t.Errorf("Inbound = %+v", ev.Inbound)
	}
	if ev.Inbound.PhotoID != "" {
		t.Errorf("PhotoID = %q, want empty", ev.Inbound.PhotoID)
	}
}

func TestClassifyUnmarkedTextIgnored(t *testing.T) {
	ev := Classify(textUpdate(42, "обычное сообщение"), testManagerID)
	if ev.Kind != EventIgnored {
		t.Errorf("Kind = %d, want EventIgnored", ev.Kind)
	}
}

// A photo is a submission even without the marker; the largest
// rendition's file id is kept.
func TestClassifyPhotoSubmission(t *testing.T) {
	u := tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: 42},
		Caption:   "без ёлки",
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small"},
			{FileID: "large"},
		},
	}}

	ev := Classify(u, testManagerID)
	if ev.Kind != EventNewSubmission {
		t.Fatalf("Kind = %d, want EventNewSubmission", ev.Kind)
	}
	if ev.Inbound.PhotoID != "large" {
		t.Errorf("PhotoID = %q, want large", ev.Inbound.PhotoID)
	}
	if ev.Inbound.Text != "без ёлки" {
		t.Errorf("Text = %q, want the caption", ev.Inbound.Text)
	}
}

func TestClassifyControlPress(t *testing.T) {
	ev := Classify(callbackUpdate("fav:doc-1"), testManagerID)
	if ev.Kind != EventControlPress {
		t.Fatalf("Kind = %d, want EventControlPress", ev.Kind)
	}
	want := review.Callback{ID: "cb-1", ChatID: testManagerID, MessageID: 42,
		Action: review.Action{Kind: review.ActionFavorite, DocID: "doc-1"}}
	if ev.Callback != want {
		t.Errorf("Callback = %+v, want %+v", ev.Callback, want)
	}
}

func TestClassifyMalformedControlPress(t *testing.T) {
	for _, data := range []string{"", "fav:", "bogus:1", "next:zero"} {
		ev := Classify(callbackUpdate(data), testManagerID)
		if ev.Kind != EventIgnored {
			t.Errorf("Classify(callback %q).Kind = %d, want EventIgnored", data, ev.Kind)
		}
	}
}

func TestClassifyStart(t *testing.T) {
	ev := Classify(startUpdate(testManagerID), testManagerID)
	if ev.Kind != EventStart || ev.ChatID != testManagerID {
		t.Errorf("manager /start: %+v", ev)
	}

	ev = Classify(startUpdate(42), testManagerID)
	if ev.Kind != EventStart || ev.ChatID != 42 {
		t.Errorf("user /start: %+v", ev)
	}
}

// With no manager configured, menu labels from any chat are just
// unmarked text.
func TestClassifyNoManagerConfigured(t *testing.T) {
	ev := Classify(textUpdate(777, "📋 Все заявки"), 0)
	if ev.Kind != EventIgnored {
		t.Errorf("Kind = %d, want EventIgnored when manager is unset", ev.Kind)
	}
}

func TestClassifyEmptyUpdate(t *testing.T) {
	ev := Classify(tgbotapi.Update{}, testManagerID)
	if ev.Kind != EventIgnored {
		t.Errorf("Kind = %d, want EventIgnored", ev.Kind)
	}
}

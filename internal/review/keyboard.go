package review

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/talantmuenster/telebot/internal/model"
)

// Toggle button labels show the inverse action of the current state.
const (
	labelFavoriteAdd    = "⭐ В избранное"
	labelFavoriteRemove = "⭐ Убрать из избранного"
	labelSelectedAdd    = "🏁 В отбор"
	labelSelectedRemove = "🏁 Убрать из отбора"
	labelPrevious       = "← Назад"
	labelNext           = "Вперёд →"
)

// Keyboard renders the inline controls for a submission. The navigation
// row is appended only when nav is non-nil; a freshly submitted record
// pushed to the manager has no list context and gets toggles only.
func Keyboard(sub *model.Submission, nav *Position) tgbotapi.InlineKeyboardMarkup {
	favLabel := labelFavoriteAdd
	if sub.Favorite {
		favLabel = labelFavoriteRemove
	}
	selLabel := labelSelectedAdd
	if sub.Selected {
		selLabel = labelSelectedRemove
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favLabel, toggleData(prefixFavorite, sub.ID)),
			tgbotapi.NewInlineKeyboardButtonData(selLabel, toggleData(prefixSelected, sub.ID)),
		),
	}

	if nav != nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(labelPrevious, stepData(prefixPrevious, nav.Index)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", nav.Index, nav.Total), payloadNoop),
			tgbotapi.NewInlineKeyboardButtonData(labelNext, stepData(prefixNext, nav.Index)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Файл: internal/handlers/callback_handler.go
package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"zorservice/internal/constants"
	"zorservice/internal/telegram_api"
)

// HandleCallback обрабатывает нажатия inline-кнопок.
func (bh *BotHandler) HandleCallback(update tgbotapi.Update) {
	if update.CallbackQuery == nil {
		return
	}

	query := update.CallbackQuery
	chatID := query.Message.Chat.ID
	data := query.Data

	log.Printf("HandleCallback: ChatID=%d, Data='%s'", chatID, data)
	telegram_api.AnswerCallback(bh.Deps.BotClient, query.ID)

	defer bh.lockChat(chatID)()

	parts := strings.SplitN(data, "_", 2)
	if len(parts) == 2 && parts[0] == constants.CALLBACK_PREFIX_LANGUAGE {
		bh.handleLanguageChoice(chatID, parts[1])
		return
	}

	log.Printf("HandleCallback: Неизвестные данные '%s' от chatID %d. Проигнорировано.", data, chatID)
}

// handleLanguageChoice фиксирует язык диалога и переводит его к вводу имени.
func (bh *BotHandler) handleLanguageChoice(chatID int64, lang string) {
	if lang != constants.LANG_RU && lang != constants.LANG_UZ {
		log.Printf("handleLanguageChoice: Неизвестный язык '%s' от chatID %d. Используется русский.", lang, chatID)
		lang = constants.LANG_RU
	}

	sess, ok := bh.Deps.SessionManager.Get(chatID)
	if !ok {
		bh.sendText(chatID, "Чтобы оформить заявку, нажмите /start.", mainMenuKeyboard(lang))
		return
	}

	sess.Language = lang
	sess.State = constants.STATE_NAME
	bh.Deps.SessionManager.Update(sess)
	bh.sendText(chatID, constants.Text(lang, "enter_name"), backKeyboard(lang))
}

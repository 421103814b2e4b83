// Файл: internal/handlers/message_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"zorservice/internal/constants"
	"zorservice/internal/media"
	"zorservice/internal/session"
	"zorservice/internal/telegram_api"
	"zorservice/internal/utils"
)

// HandleMessage обрабатывает входящие сообщения от Telegram.
func (bh *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	message := update.Message
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	log.Printf("HandleMessage: ChatID=%d, Text='%s', Photo: %v, Video: %v, Contact: %v",
		chatID, text, len(message.Photo) > 0, message.Video != nil, message.Contact != nil)

	defer bh.lockChat(chatID)()

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			bh.handleStart(message)
		case "cancel":
			bh.handleCancel(chatID)
		default:
			bh.sendText(chatID, "Неизвестная команда. Нажмите /start, чтобы оформить заявку.", nil)
		}
		return
	}

	// Разделы доступны в любой момент, в том числе посреди диалога.
	switch text {
	case constants.ButtonAboutRU:
		bh.handleAbout(chatID, constants.LANG_RU)
		return
	case constants.ButtonAboutUZ:
		bh.handleAbout(chatID, constants.LANG_UZ)
		return
	case constants.ButtonContactsRU:
		bh.handleContacts(chatID, constants.LANG_RU)
		return
	case constants.ButtonContactsUZ:
		bh.handleContacts(chatID, constants.LANG_UZ)
		return
	}

	sess, ok := bh.Deps.SessionManager.Get(chatID)
	if !ok {
		bh.sendText(chatID, "Чтобы оформить заявку, нажмите /start.", mainMenuKeyboard(constants.LANG_RU))
		return
	}

	if isBackText(text) {
		bh.handleCancel(chatID)
		return
	}

	switch sess.State {
	case constants.STATE_LANGUAGE:
		// Язык выбирается только кнопкой; на любой текст повторяем вопрос.
		bh.sendText(chatID, "Выберите язык / Tilni tanlang:", languageInlineKeyboard())
	case constants.STATE_NAME:
		bh.handleNameStep(sess, text)
	case constants.STATE_PHONE:
		bh.handlePhoneStep(sess, message)
	case constants.STATE_TECH_TYPE:
		bh.handleTechTypeStep(sess, text)
	case constants.STATE_PROBLEM:
		bh.handleProblemStep(sess, text)
	case constants.STATE_MEDIA:
		bh.handleMediaStep(sess, message)
	case constants.STATE_CONFIRM:
		bh.handleConfirmStep(sess, text)
	default:
		log.Printf("HandleMessage: Неизвестное состояние '%s' для chatID %d. Диалог сброшен.", sess.State, chatID)
		bh.handleCancel(chatID)
	}
}

// handleStart начинает новый диалог, отбрасывая незавершенный.
func (bh *BotHandler) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	var username string
	if message.From != nil {
		username = message.From.UserName
	}

	previous, existed := bh.Deps.SessionManager.Start(chatID, username)
	if existed && len(previous.Media) > 0 {
		// Вложения брошенного диалога больше никому не нужны.
		bh.Deps.Collector.Cleanup(previous.Media)
	}

	_, err := telegram_api.SendPhotoWithFallback(bh.Deps.BotClient, chatID,
		"welcome.jpg", "Выберите язык / Tilni tanlang:", languageInlineKeyboard())
	if err != nil {
		log.Printf("handleStart: Не удалось отправить приветствие для chatID %d: %v", chatID, err)
	}
}

// handleCancel завершает диалог: вложения удаляются, сессия очищается.
func (bh *BotHandler) handleCancel(chatID int64) {
	lang := constants.LANG_RU
	if sess, ok := bh.Deps.SessionManager.Get(chatID); ok {
		lang = sess.Language
		if len(sess.Media) > 0 {
			bh.Deps.Collector.Cleanup(sess.Media)
		}
		bh.Deps.SessionManager.Clear(chatID)
	}
	bh.sendText(chatID, constants.Text(lang, "cancel"), mainMenuKeyboard(lang))
}

func (bh *BotHandler) handleNameStep(sess session.Session, text string) {
	if text == "" {
		bh.sendText(sess.ChatID, constants.Text(sess.Language, "enter_name"), backKeyboard(sess.Language))
		return
	}
	sess.Name = text
	sess.State = constants.STATE_PHONE
	bh.Deps.SessionManager.Update(sess)
	bh.sendText(sess.ChatID, constants.Text(sess.Language, "enter_phone"), phoneKeyboard(sess.Language))
}

func (bh *BotHandler) handlePhoneStep(sess session.Session, message *tgbotapi.Message) {
	phone := strings.TrimSpace(message.Text)
	if message.Contact != nil && message.Contact.PhoneNumber != "" {
		phone = message.Contact.PhoneNumber
	}
	if phone == "" {
		bh.sendText(sess.ChatID, constants.Text(sess.Language, "enter_phone"), phoneKeyboard(sess.Language))
		return
	}
	sess.Phone = phone
	sess.State = constants.STATE_TECH_TYPE
	bh.Deps.SessionManager.Update(sess)
	bh.sendText(sess.ChatID, constants.Text(sess.Language, "select_tech"), techTypeKeyboard(sess.Language))
}

func (bh *BotHandler) handleTechTypeStep(sess session.Session, text string) {
	if text == "" {
		bh.sendText(sess.ChatID, constants.Text(sess.Language, "select_tech"), techTypeKeyboard(sess.Language))
		return
	}
	// Произвольный текст принимается наравне с кнопками клавиатуры.
	sess.TechType = text
	sess.State = constants.STATE_PROBLEM
	bh.Deps.SessionManager.Update(sess)
	bh.sendText(sess.ChatID, constants.Text(sess.Language, "describe_problem"), backKeyboard(sess.Language))
}

func (bh *BotHandler) handleProblemStep(sess session.Session, text string) {
	if text == "" {
		bh.sendText(sess.ChatID, constants.Text(sess.Language, "describe_problem"), backKeyboard(sess.Language))
		return
	}
	sess.Problem = text
	sess.State = constants.STATE_MEDIA
	bh.Deps.SessionManager.Update(sess)
	bh.sendText(sess.ChatID, constants.Text(sess.Language, "add_media"), mediaKeyboard(sess.Language))
}

// handleMediaStep принимает фото и видео; любой текст на этом шаге,
// включая кнопку «Пропустить», переводит диалог к подтверждению.
func (bh *BotHandler) handleMediaStep(sess session.Session, message *tgbotapi.Message) {
	lang := sess.Language
	kind := utils.GetMediaType(message)

	if kind == media.KindPhoto || kind == media.KindVideo {
		incoming := media.Incoming{FileID: utils.ExtractFileID(message), Kind: kind}
		ack, err := bh.Deps.Collector.Add(&sess, incoming)

		var sizeErr *media.SizeError
		switch {
		case err == nil:
			bh.Deps.SessionManager.Update(sess)
			bh.sendText(sess.ChatID, fmt.Sprintf(constants.Text(lang, "file_saved"), ack.Remaining), mediaKeyboard(lang))
		case errors.Is(err, media.ErrLimitReached):
			// Лимит не продвигает диалог: остается только путь «Пропустить».
			bh.sendText(sess.ChatID, constants.Text(lang, "file_limit"), mediaKeyboard(lang))
		case errors.As(err, &sizeErr):
			bh.sendText(sess.ChatID, fmt.Sprintf(constants.Text(lang, "file_too_big"), sizeErr.LimitLabel()), mediaKeyboard(lang))
		default:
			bh.sendText(sess.ChatID, constants.Text(lang, "file_save_error"), mediaKeyboard(lang))
		}
		return
	}

	if !isSkipText(strings.TrimSpace(message.Text)) {
		log.Printf("handleMediaStep: Текст на шаге медиа трактуется как пропуск (chatID %d).", sess.ChatID)
	}
	bh.goToConfirm(sess)
}

// goToConfirm показывает сводку анкеты и клавиатуру подтверждения.
func (bh *BotHandler) goToConfirm(sess session.Session) {
	sess.State = constants.STATE_CONFIRM
	bh.Deps.SessionManager.Update(sess)

	summary := fmt.Sprintf(constants.Text(sess.Language, "confirm"),
		sess.Name, sess.Phone, sess.TechType, sess.Problem)
	bh.sendText(sess.ChatID, summary, confirmKeyboard(sess.Language))
}

// handleConfirmStep: «Да» отправляет заявку, «Нет» начинает диалог заново
// с выбора языка.
func (bh *BotHandler) handleConfirmStep(sess session.Session, text string) {
	lang := sess.Language
	switch text {
	case constants.Text(lang, "confirm_yes"):
		bh.submitOrder(sess)
	case constants.Text(lang, "confirm_no"):
		// Диалог начинается заново с выбора языка; принятые вложения удаляются.
		if len(sess.Media) > 0 {
			bh.Deps.Collector.Cleanup(sess.Media)
		}
		bh.Deps.SessionManager.Start(sess.ChatID, sess.Username)
		bh.sendText(sess.ChatID, "Выберите язык / Tilni tanlang:", languageInlineKeyboard())
	default:
		summary := fmt.Sprintf(constants.Text(lang, "confirm"),
			sess.Name, sess.Phone, sess.TechType, sess.Problem)
		bh.sendText(sess.ChatID, summary, confirmKeyboard(lang))
	}
}

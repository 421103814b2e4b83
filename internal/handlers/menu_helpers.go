// Файл: internal/handlers/menu_helpers.go
package handlers

import (
	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"zorservice/internal/constants"
)

// --- Клавиатуры шагов диалога ---

// languageInlineKeyboard строит выбор языка на старте диалога.
func languageInlineKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", constants.CALLBACK_PREFIX_LANGUAGE+"_"+constants.LANG_RU),
			tgbotapi.NewInlineKeyboardButtonData("🇺🇿 O'zbekcha", constants.CALLBACK_PREFIX_LANGUAGE+"_"+constants.LANG_UZ),
		),
	)
}

// mainMenuKeyboard строит клавиатуру вне диалога заявки (разделы «О сервисе» и «Контакты»).
func mainMenuKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	aboutText := constants.ButtonAboutRU
	contactsText := constants.ButtonContactsRU
	if lang == constants.LANG_UZ {
		aboutText = constants.ButtonAboutUZ
		contactsText = constants.ButtonContactsUZ
	}
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(aboutText),
			tgbotapi.NewKeyboardButton(contactsText),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// backKeyboard содержит единственную кнопку «Назад», отменяющую диалог.
func backKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "back")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// phoneKeyboard предлагает кнопку отправки контакта плюс «Назад».
func phoneKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(constants.Text(lang, "send_contact")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "back")),
		),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = true
	return keyboard
}

// techTypeKeyboard выводит типы техники по два в ряд; произвольный текст тоже принимается.
func techTypeKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	types := constants.TechTypes[lang]
	if len(types) == 0 {
		types = constants.TechTypes[constants.LANG_RU]
	}

	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(types); i += 2 {
		if i+1 < len(types) {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(types[i]),
				tgbotapi.NewKeyboardButton(types[i+1]),
			))
		} else {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(types[i]),
			))
		}
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(constants.Text(lang, "back")),
	))

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// mediaKeyboard предлагает «Пропустить» и «Назад» на шаге сбора вложений.
func mediaKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "skip")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "back")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// confirmKeyboard предлагает подтверждение или возврат к началу анкеты.
func confirmKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "confirm_yes")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(constants.Text(lang, "confirm_no")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// isBackText распознает кнопку «Назад» на любом из поддерживаемых языков.
func isBackText(text string) bool {
	return text == constants.Text(constants.LANG_RU, "back") ||
		text == constants.Text(constants.LANG_UZ, "back")
}

// isSkipText распознает кнопку «Пропустить» на любом из поддерживаемых языков.
func isSkipText(text string) bool {
	return text == constants.Text(constants.LANG_RU, "skip") ||
		text == constants.Text(constants.LANG_UZ, "skip")
}

// Файл: internal/handlers/info_handlers.go
package handlers

import (
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"zorservice/internal/constants"
	"zorservice/internal/utils"
)

// Ссылка на сайт сервиса для QR-кода в разделе контактов.
const serviceSiteURL = "https://zorservice.uz"

// handleAbout показывает раздел «О сервисе».
func (bh *BotHandler) handleAbout(chatID int64, lang string) {
	bh.sendText(chatID, constants.Text(lang, "about"), mainMenuKeyboard(lang))
}

// handleContacts показывает контакты с QR-кодом на сайт; при ошибке
// генерации или отправки фото откатывается на обычный текст.
func (bh *BotHandler) handleContacts(chatID int64, lang string) {
	text := constants.Text(lang, "contacts")

	qrBytes, err := utils.GenerateLinkQR(serviceSiteURL)
	if err != nil {
		log.Printf("handleContacts: Ошибка генерации QR-кода для chatID %d: %v", chatID, err)
		bh.sendText(chatID, text, mainMenuKeyboard(lang))
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "contacts_qr.png", Bytes: qrBytes})
	photo.Caption = text
	photo.ReplyMarkup = mainMenuKeyboard(lang)
	if _, err := bh.Deps.BotClient.Send(photo); err != nil {
		log.Printf("handleContacts: Ошибка отправки QR-кода для chatID %d: %v. Отправляю текст.", chatID, err)
		bh.sendText(chatID, text, mainMenuKeyboard(lang))
	}
}

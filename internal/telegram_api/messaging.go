package telegram_api

import (
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// SendMessage отправляет текстовое сообщение с опциональной клавиатурой
// (Reply или Inline; nil означает без клавиатуры).
func SendMessage(sender Sender, chatID int64, text string, replyMarkup interface{}) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := sender.Send(msg)
	if err != nil {
		log.Printf("SendMessage: ОШИБКА отправки сообщения для chatID %d: %v", chatID, err)
	}
	return sent, err
}

// SendPhotoWithFallback пытается отправить фото с подписью; если файла нет
// или отправка не удалась, шлет подпись обычным текстом. Используется для
// приветственной и прощальной картинок, отсутствие которых не должно ломать диалог.
func SendPhotoWithFallback(sender Sender, chatID int64, photoPath, caption string, replyMarkup interface{}) (tgbotapi.Message, error) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(photoPath))
	photo.Caption = caption
	if replyMarkup != nil {
		photo.ReplyMarkup = replyMarkup
	}
	sent, err := sender.Send(photo)
	if err == nil {
		return sent, nil
	}
	log.Printf("SendPhotoWithFallback: Ошибка отправки фото '%s' для chatID %d: %v. Отправляю текст.", photoPath, chatID, err)
	return SendMessage(sender, chatID, caption, replyMarkup)
}

// SendMediaGroup отправляет альбом из файлов по их путям; подпись ставится
// на первый элемент. Тип медиа определяется расширением (.mp4 считается видео).
func SendMediaGroup(sender Sender, chatID int64, paths []string, caption string) error {
	if len(paths) == 0 {
		return nil
	}
	media := make([]tgbotapi.InputMedia, 0, len(paths))
	for i, path := range paths {
		itemCaption := ""
		if i == 0 {
			itemCaption = caption
		}
		if strings.HasSuffix(path, ".mp4") {
			item := tgbotapi.NewInputMediaVideo(tgbotapi.FilePath(path))
			item.Caption = itemCaption
			media = append(media, &item)
		} else {
			item := tgbotapi.NewInputMediaPhoto(tgbotapi.FilePath(path))
			item.Caption = itemCaption
			media = append(media, &item)
		}
	}

	group := tgbotapi.NewMediaGroup(chatID, media)
	_, err := sender.Request(group)
	if err != nil {
		log.Printf("SendMediaGroup: Ошибка отправки альбома из %d файлов для chatID %d: %v", len(paths), chatID, err)
	}
	return err
}

// AnswerCallback подтверждает получение callback-запроса, чтобы у
// пользователя погасла индикация загрузки на кнопке.
func AnswerCallback(sender Sender, callbackID string) {
	if _, err := sender.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("AnswerCallback: Ошибка ответа на callback %s: %v", callbackID, err)
	}
}

// internal/utils/media_utils.go
package utils

import (
	tgbotapi "github.com/OvyFlash/telegram-bot-api"
)

// GetMediaType определяет тип медиа в сообщении.
// Для шага сбора вложений интересны только фото и видео.
func GetMediaType(msg *tgbotapi.Message) string {
	if msg == nil {
		return "unknown"
	}
	if len(msg.Photo) > 0 {
		return "photo"
	} else if msg.Video != nil {
		return "video"
	}
	return "unknown"
}

// ExtractFileID возвращает идентификатор файла вложения.
// Для фото берется самый крупный доступный размер.
func ExtractFileID(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Video != nil {
		return msg.Video.FileID
	}
	return ""
}

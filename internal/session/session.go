// Файл: internal/session/session.go
package session

import (
	"time"

	"zorservice/internal/constants"
)

// Session хранит изменяемое состояние незавершенного диалога одного пользователя.
// Существует ровно пока диалог идет: создается на /start, удаляется при
// отправке заявки, отмене или фатальной ошибке конвейера.
type Session struct {
	ChatID    int64
	Username  string
	Language  string
	State     string
	Name      string
	Phone     string
	TechType  string
	Problem   string
	Media     []string // имена сохраненных файлов, не более constants.MAX_MEDIA_FILES
	UpdatedAt time.Time
}

// NewSession создает сессию на шаге выбора языка.
func NewSession(chatID int64, username string) Session {
	return Session{
		ChatID:    chatID,
		Username:  username,
		Language:  constants.LANG_RU,
		State:     constants.STATE_LANGUAGE,
		Media:     make([]string, 0),
		UpdatedAt: time.Now(),
	}
}

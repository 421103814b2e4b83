package handlers

import (
	"sync"

	"zorservice/internal/config"
	"zorservice/internal/media"
	"zorservice/internal/pipeline"
	"zorservice/internal/session"
	"zorservice/internal/telegram_api"
)

// HandlerDependencies содержит все зависимости, необходимые обработчикам.
type HandlerDependencies struct {
	Config         *config.Config
	BotClient      telegram_api.Sender
	SessionManager *session.SessionManager
	Collector      *media.Collector
	Pipeline       *pipeline.Pipeline
}

// BotHandler инкапсулирует логику обработки сообщений и коллбэков.
type BotHandler struct {
	Deps HandlerDependencies

	// chatLocks хранит по мьютексу на chatID. Апдейты обрабатываются в
	// отдельных горутинах, а сессии читаются и записываются копиями, поэтому
	// два одновременных апдейта одного чата (например, альбом из нескольких
	// фото) затирали бы изменения друг друга. Разные чаты не блокируют друг друга.
	chatLocks sync.Map
}

// NewBotHandler создает новый экземпляр BotHandler.
func NewBotHandler(deps HandlerDependencies) *BotHandler {
	if deps.Config == nil || deps.BotClient == nil || deps.SessionManager == nil ||
		deps.Collector == nil || deps.Pipeline == nil {
		panic("Не все зависимости для BotHandler были предоставлены.")
	}
	return &BotHandler{Deps: deps}
}

// lockChat захватывает мьютекс чата и возвращает функцию освобождения.
func (bh *BotHandler) lockChat(chatID int64) func() {
	v, _ := bh.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// sendText отправляет текст с опциональной клавиатурой; ошибки логируются внутри.
func (bh *BotHandler) sendText(chatID int64, text string, replyMarkup interface{}) {
	telegram_api.SendMessage(bh.Deps.BotClient, chatID, text, replyMarkup)
}

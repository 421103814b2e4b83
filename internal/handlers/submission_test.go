package handlers

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zorservice/internal/models"
)

// failingGroupSender отклоняет альбомы, но пропускает обычные сообщения.
type failingGroupSender struct {
	fakeSender
	mu2      sync.Mutex
	groupErr error
}

func (f *failingGroupSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if _, ok := c.(tgbotapi.MediaGroupConfig); ok {
		f.mu2.Lock()
		defer f.mu2.Unlock()
		if f.groupErr != nil {
			return nil, f.groupErr
		}
	}
	return f.fakeSender.Request(c)
}

type fixedPaths struct{}

func (fixedPaths) Path(filename string) string { return "user_media/" + filename }

func sampleOrder() models.Order {
	return models.Order{
		OrderNumber: "15032024-0003",
		UserChatID:  9001,
		Username:    "ivan_remont",
		Name:        "Иван",
		Phone:       "+79990001122",
		TechType:    "Электроплита",
		Problem:     "Не греет конфорка",
		MediaFiles:  []string{"9001_a.jpg", "9001_b.mp4"},
		Language:    "ru",
		CreatedAt:   time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

// Заявка с вложениями уходит оператору альбомом со сводкой в подписи.
func TestNotifyOperatorSendsAlbumWithSummary(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewOperatorNotifier(sender, fixedPaths{}, 42)

	err := notifier.NotifyOperator(sampleOrder())
	require.NoError(t, err)

	var group *tgbotapi.MediaGroupConfig
	var contactMsg *tgbotapi.MessageConfig
	for i := range sender.sent {
		switch c := sender.sent[i].(type) {
		case tgbotapi.MediaGroupConfig:
			group = &c
		case tgbotapi.MessageConfig:
			contactMsg = &c
		}
	}

	require.NotNil(t, group, "должен быть отправлен альбом")
	require.Len(t, group.Media, 2)
	first, ok := group.Media[0].(*tgbotapi.InputMediaPhoto)
	require.True(t, ok, "первый элемент альбома должен быть фото")
	assert.Contains(t, first.Caption, "15032024-0003")
	assert.Contains(t, first.Caption, "Иван")
	second, ok := group.Media[1].(*tgbotapi.InputMediaVideo)
	require.True(t, ok, "второй элемент альбома должен быть видео")
	assert.Empty(t, second.Caption, "подпись только на первом элементе")

	require.NotNil(t, contactMsg, "должно быть сообщение с кнопкой связи")
	assert.Contains(t, contactMsg.Text, "Связь с пользователем")
	markup, ok := contactMsg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	require.NotNil(t, markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://t.me/ivan_remont", *markup.InlineKeyboard[0][0].URL)
}

// Падение альбома не валит уведомление: уходит текстовая сводка с пометкой.
func TestNotifyOperatorFallsBackToTextOnAlbumError(t *testing.T) {
	sender := &failingGroupSender{groupErr: errors.New("file too large")}
	notifier := NewOperatorNotifier(sender, fixedPaths{}, 42)

	err := notifier.NotifyOperator(sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, sender.lastText(), "Связь с пользователем")

	var sawFallback bool
	for i := range sender.sent {
		if msg, ok := sender.sent[i].(tgbotapi.MessageConfig); ok {
			if strings.Contains(msg.Text, "15032024-0003") &&
				strings.Contains(msg.Text, "Не удалось отправить вложения") {
				sawFallback = true
			}
		}
	}
	assert.True(t, sawFallback, "должна уйти текстовая сводка с пометкой о вложениях")
}

// Без вложений уходит обычная текстовая сводка.
func TestNotifyOperatorTextOnlyWithoutMedia(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewOperatorNotifier(sender, fixedPaths{}, 42)

	order := sampleOrder()
	order.MediaFiles = nil
	order.Username = ""

	err := notifier.NotifyOperator(order)
	require.NoError(t, err)

	var summary *tgbotapi.MessageConfig
	for i := range sender.sent {
		if msg, ok := sender.sent[i].(tgbotapi.MessageConfig); ok && summary == nil {
			summary = &msg
		}
	}
	require.NotNil(t, summary)
	assert.Contains(t, summary.Text, "15032024-0003")
	assert.Contains(t, summary.Text, "Вложений: 0")

	// Без username кнопка связи строится по идентификатору.
	last, ok := sender.sent[len(sender.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	markup, ok := last.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.NotNil(t, markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, "tg://user?id=9001", *markup.InlineKeyboard[0][0].URL)
}

// Нулевой ADMIN_CHAT_ID отключает уведомления без ошибки.
func TestNotifyOperatorDisabledWithoutAdminChat(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewOperatorNotifier(sender, fixedPaths{}, 0)

	err := notifier.NotifyOperator(sampleOrder())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

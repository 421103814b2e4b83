// Файл: internal/handlers/submission.go
package handlers

import (
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"zorservice/internal/constants"
	"zorservice/internal/models"
	"zorservice/internal/session"
	"zorservice/internal/telegram_api"
)

// submitOrder проводит подтвержденную заявку через конвейер и сообщает
// пользователю результат. После вызова сессия в любом случае завершена.
func (bh *BotHandler) submitOrder(sess session.Session) {
	lang := sess.Language

	orderNumber, err := bh.Deps.Pipeline.Submit(sess)
	if err != nil {
		log.Printf("submitOrder: Ошибка отправки заявки для chatID %d: %v", sess.ChatID, err)
		bh.sendText(sess.ChatID, constants.Text(lang, "error"), mainMenuKeyboard(lang))
		return
	}

	caption := fmt.Sprintf(constants.Text(lang, "success"), orderNumber)
	_, sendErr := telegram_api.SendPhotoWithFallback(bh.Deps.BotClient, sess.ChatID,
		"goodbye.jpg", caption, mainMenuKeyboard(lang))
	if sendErr != nil {
		log.Printf("submitOrder: Не удалось отправить прощальное сообщение для chatID %d: %v", sess.ChatID, sendErr)
	}
}

// PathResolver превращает имя сохраненного вложения в путь на диске.
type PathResolver interface {
	Path(filename string) string
}

// OperatorNotifier доставляет новые заявки оператору: сводка с альбомом
// вложений и отдельное сообщение с кнопкой связи с пользователем.
type OperatorNotifier struct {
	sender      telegram_api.Sender
	paths       PathResolver
	adminChatID int64
}

func NewOperatorNotifier(sender telegram_api.Sender, paths PathResolver, adminChatID int64) *OperatorNotifier {
	return &OperatorNotifier{sender: sender, paths: paths, adminChatID: adminChatID}
}

// NotifyOperator отправляет заявку оператору. Возвращает ошибку только если
// не удалось доставить даже текстовую сводку.
func (n *OperatorNotifier) NotifyOperator(order models.Order) error {
	if n.adminChatID == 0 {
		log.Printf("OperatorNotifier: ADMIN_CHAT_ID не настроен. Заявка %s оператору не отправлена.", order.OrderNumber)
		return nil
	}

	summary := formatOrderSummary(order)

	if len(order.MediaFiles) > 0 {
		paths := make([]string, 0, len(order.MediaFiles))
		for _, filename := range order.MediaFiles {
			paths = append(paths, n.paths.Path(filename))
		}
		if err := telegram_api.SendMediaGroup(n.sender, n.adminChatID, paths, summary); err != nil {
			// Альбом не ушел, но сводка важнее вложений.
			fallback := summary + "\n\n⚠ Не удалось отправить вложения"
			if _, textErr := telegram_api.SendMessage(n.sender, n.adminChatID, fallback, nil); textErr != nil {
				return fmt.Errorf("доставка сводки заявки %s оператору: %w", order.OrderNumber, textErr)
			}
		}
	} else {
		if _, err := telegram_api.SendMessage(n.sender, n.adminChatID, summary, nil); err != nil {
			return fmt.Errorf("доставка сводки заявки %s оператору: %w", order.OrderNumber, err)
		}
	}

	if _, err := telegram_api.SendMessage(n.sender, n.adminChatID,
		"📨 Связь с пользователем:", contactKeyboard(order)); err != nil {
		log.Printf("OperatorNotifier: Не удалось отправить кнопку связи по заявке %s: %v", order.OrderNumber, err)
	}
	return nil
}

// formatOrderSummary собирает текстовую сводку заявки для оператора.
func formatOrderSummary(order models.Order) string {
	username := order.Username
	if username == "" {
		username = constants.ValueNotSpecified
	} else {
		username = "@" + username
	}
	return fmt.Sprintf(
		"🆕 Новая заявка #%s\n\n👤 Имя: %s\n📞 Телефон: %s\n🛠 Техника: %s\n❗ Проблема: %s\n\n🌐 Язык: %s\n💬 Telegram: %s\n📎 Вложений: %d\n🕒 Создана: %s",
		order.OrderNumber,
		orDefault(order.Name),
		orDefault(order.Phone),
		orDefault(order.TechType),
		orDefault(order.Problem),
		order.Language,
		username,
		len(order.MediaFiles),
		order.CreatedAt.In(constants.MoscowTZ).Format("02.01.2006 15:04"),
	)
}

// contactKeyboard строит кнопку перехода в чат с пользователем.
// Без username используется прямая ссылка по идентификатору.
func contactKeyboard(order models.Order) tgbotapi.InlineKeyboardMarkup {
	url := fmt.Sprintf("tg://user?id=%d", order.UserChatID)
	if order.Username != "" {
		url = "https://t.me/" + order.Username
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("💬 Написать пользователю", url),
		),
	)
}

func orDefault(value string) string {
	if value == "" {
		return constants.ValueNotSpecified
	}
	return value
}

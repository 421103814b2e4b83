// Пакет pipeline выполняет финальную последовательность отправки заявки:
// номер -> запись в БД -> вебхук -> уведомление оператора -> очистка.
// Очистка сессии и ее вложений считается обязательным завершающим действием и
// выполняется при любом исходе предыдущих шагов.
package pipeline

import (
	"fmt"
	"log"
	"sync"
	"time"

	"zorservice/internal/constants"
	"zorservice/internal/models"
	"zorservice/internal/session"
)

// Sequencer выдает очередной номер заявки.
type Sequencer interface {
	Next() string
}

// OrderRepository сохраняет заявку в долговременное хранилище.
type OrderRepository interface {
	SaveOrder(order models.Order) (int64, error)
}

// Relay передает заявку внешней автоматизации.
type Relay interface {
	Send(order models.Order) error
}

// Notifier доставляет заявку оператору.
type Notifier interface {
	NotifyOperator(order models.Order) error
}

// Cleaner удаляет вложения завершенной сессии.
type Cleaner interface {
	Cleanup(files []string)
}

// SessionStore описывает часть менеджера сессий, нужную конвейеру.
type SessionStore interface {
	Clear(chatID int64)
}

// Pipeline связывает шаги отправки. Все зависимости заданы узкими интерфейсами,
// конкретные реализации подставляются при сборке приложения.
type Pipeline struct {
	sequencer Sequencer
	orders    OrderRepository
	relay     Relay
	notifier  Notifier
	cleaner   Cleaner
	sessions  SessionStore

	relayWG sync.WaitGroup
}

func New(seq Sequencer, orders OrderRepository, relay Relay, notifier Notifier, cleaner Cleaner, sessions SessionStore) *Pipeline {
	return &Pipeline{
		sequencer: seq,
		orders:    orders,
		relay:     relay,
		notifier:  notifier,
		cleaner:   cleaner,
		sessions:  sessions,
	}
}

// Submit проводит заявку через все шаги и возвращает ее номер.
// Гарантии:
//   - заявка записана в БД до любых исходящих уведомлений;
//   - ошибка вебхука не влияет на исход и не видна пользователю;
//   - сессия и ее вложения удаляются независимо от результата.
func (p *Pipeline) Submit(sess session.Session) (orderNumber string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Pipeline: Паника при отправке заявки пользователя %d: %v", sess.ChatID, r)
			orderNumber, err = "", fmt.Errorf("внутренняя ошибка конвейера: %v", r)
		}
		p.cleaner.Cleanup(sess.Media)
		p.sessions.Clear(sess.ChatID)
	}()

	orderNumber = p.sequencer.Next()
	if orderNumber == "" {
		return "", fmt.Errorf("не удалось получить номер заявки")
	}

	order := models.Order{
		OrderNumber: orderNumber,
		UserChatID:  sess.ChatID,
		Username:    sess.Username,
		Name:        sess.Name,
		Phone:       sess.Phone,
		TechType:    sess.TechType,
		Problem:     sess.Problem,
		MediaFiles:  sess.Media,
		Language:    sess.Language,
		CreatedAt:   time.Now().In(constants.MoscowTZ),
	}

	if _, err := p.orders.SaveOrder(order); err != nil {
		return "", fmt.Errorf("сохранение заявки %s: %w", orderNumber, err)
	}

	// Вебхук не должен задерживать ответ пользователю; повторов нет.
	p.relayWG.Add(1)
	go func(o models.Order) {
		defer p.relayWG.Done()
		if relayErr := p.relay.Send(o); relayErr != nil {
			log.Printf("Pipeline: Ошибка передачи заявки %s на вебхук: %v", o.OrderNumber, relayErr)
		}
	}(order)

	if err := p.notifier.NotifyOperator(order); err != nil {
		return "", fmt.Errorf("уведомление оператора о заявке %s: %w", orderNumber, err)
	}

	log.Printf("Pipeline: Заявка %s успешно отправлена (пользователь %d, вложений: %d).",
		orderNumber, sess.ChatID, len(sess.Media))
	return orderNumber, nil
}

// WaitRelays дожидается завершения фоновых отправок вебхука (для тестов и
// аккуратной остановки процесса).
func (p *Pipeline) WaitRelays() {
	p.relayWG.Wait()
}

// Пакет sequencer выдает последовательные номера заявок вида DDMMYYYY-NNNN.
// Нумерация сквозная в пределах календарного дня (по московскому времени)
// и начинается заново с 0001 при смене даты.
package sequencer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"zorservice/internal/constants"
	"zorservice/internal/models"
)

// CounterStore описывает долговременное хранилище единственной записи счетчика.
type CounterStore interface {
	Load() (counter models.Counter, found bool, err error)
	Save(counter models.Counter) error
}

// Sequencer сериализует выдачу номеров мьютексом: две конкурентные заявки
// никогда не получат один номер и не сбросят счетчик дважды на границе суток.
type Sequencer struct {
	mu    sync.Mutex
	store CounterStore
	now   func() time.Time
}

func New(store CounterStore) *Sequencer {
	return &Sequencer{
		store: store,
		now:   func() time.Time { return time.Now().In(constants.MoscowTZ) },
	}
}

// Next возвращает следующий номер заявки. При недоступности хранилища не
// падает, а выдает аварийный номер от метки времени (риск коллизии принят,
// ошибка логируется).
func (s *Sequencer) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := now.Format("2006-01-02")

	counter, found, err := s.store.Load()
	if err != nil {
		return s.fallback(now, err)
	}
	if !found {
		counter = models.Counter{LastOrderNumber: 0, LastResetDate: today}
	}
	if counter.LastResetDate != today {
		counter.LastOrderNumber = 0
		counter.LastResetDate = today
	}
	counter.LastOrderNumber++

	if err := s.store.Save(counter); err != nil {
		return s.fallback(now, err)
	}

	return fmt.Sprintf("%s-%04d", now.Format("02012006"), counter.LastOrderNumber)
}

// fallback выдает аварийный номер при ошибке хранилища счетчика.
func (s *Sequencer) fallback(now time.Time, err error) string {
	number := "EMG-" + now.Format("02012006150405")
	log.Printf("Sequencer: ошибка хранилища счетчика: %v. Выдан аварийный номер %s.", err, number)
	return number
}

package db

import (
	"database/sql"
	"log"

	"zorservice/internal/models"
)

// CounterStore читает и сохраняет единственную запись счетчика заявок (id=1).
// Сериализацию read-modify-write выполняет вызывающая сторона (sequencer).
type CounterStore struct{}

func NewCounterStore() CounterStore { return CounterStore{} }

// Load возвращает текущее значение счетчика. found=false, если записи еще нет.
func (CounterStore) Load() (counter models.Counter, found bool, err error) {
	err = DB.QueryRow(`SELECT last_order_number, last_reset_date FROM counters WHERE id = 1`).
		Scan(&counter.LastOrderNumber, &counter.LastResetDate)
	if err == sql.ErrNoRows {
		return models.Counter{}, false, nil
	}
	if err != nil {
		log.Printf("CounterStore.Load: Ошибка чтения счетчика: %v", err)
		return models.Counter{}, false, err
	}
	return counter, true, nil
}

// Save записывает новое значение счетчика, создавая запись при необходимости.
func (CounterStore) Save(counter models.Counter) error {
	_, err := DB.Exec(`
        INSERT INTO counters (id, last_order_number, last_reset_date)
        VALUES (1, $1, $2)
        ON CONFLICT (id) DO UPDATE
        SET last_order_number = EXCLUDED.last_order_number,
            last_reset_date = EXCLUDED.last_reset_date`,
		counter.LastOrderNumber, counter.LastResetDate)
	if err != nil {
		log.Printf("CounterStore.Save: Ошибка записи счетчика: %v", err)
	}
	return err
}

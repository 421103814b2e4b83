package db

import (
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"zorservice/internal/models"
)

// OrderStore реализует сохранение и выборку заявок поверх глобального подключения.
type OrderStore struct{}

func NewOrderStore() OrderStore { return OrderStore{} }

// SaveOrder сохраняет завершенную заявку. Список медиафайлов хранится строкой через запятую.
func (OrderStore) SaveOrder(order models.Order) (int64, error) {
	if order.OrderNumber == "" {
		return 0, errors.New("номер заявки не может быть пустым")
	}
	if order.UserChatID == 0 {
		return 0, errors.New("идентификатор пользователя не установлен для заявки")
	}

	var id int64
	query := `
        INSERT INTO orders (
            order_number, user_id, username, name, phone,
            tech_type, problem, media_files, language, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id`

	err := DB.QueryRow(query,
		order.OrderNumber, order.UserChatID, order.Username, order.Name, order.Phone,
		order.TechType, order.Problem, strings.Join(order.MediaFiles, ","), order.Language,
		order.CreatedAt,
	).Scan(&id)
	if err != nil {
		log.Printf("SaveOrder: Ошибка выполнения INSERT для заявки %s (пользователь %d): %v", order.OrderNumber, order.UserChatID, err)
		return 0, err
	}

	log.Printf("Заявка %s успешно сохранена (id=%d, пользователь %d).", order.OrderNumber, id, order.UserChatID)
	return id, nil
}

// ListOrders повторяет GetOrders методом, чтобы хранилище передавалось по интерфейсу.
func (OrderStore) ListOrders(from, to time.Time, limit, offset int) ([]models.Order, error) {
	return GetOrders(from, to, limit, offset)
}

// GetOrders возвращает заявки, отсортированные от новых к старым.
// Нулевые from/to означают отсутствие ограничения по периоду.
func GetOrders(from, to time.Time, limit, offset int) ([]models.Order, error) {
	query := `
        SELECT id, order_number, user_id, COALESCE(username, ''), COALESCE(name, ''),
               COALESCE(phone, ''), COALESCE(tech_type, ''), COALESCE(problem, ''),
               COALESCE(media_files, ''), COALESCE(language, ''), created_at
        FROM orders
        WHERE ($1::timestamp IS NULL OR created_at >= $1)
          AND ($2::timestamp IS NULL OR created_at < $2)
        ORDER BY created_at DESC, id DESC
        LIMIT $3 OFFSET $4`

	var fromArg, toArg sql.NullTime
	if !from.IsZero() {
		fromArg = sql.NullTime{Time: from, Valid: true}
	}
	if !to.IsZero() {
		toArg = sql.NullTime{Time: to, Valid: true}
	}

	rows, err := DB.Query(query, fromArg, toArg, limit, offset)
	if err != nil {
		log.Printf("GetOrders: Ошибка выборки заявок: %v", err)
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		var mediaFiles string
		var createdAt sql.NullTime
		err = rows.Scan(&order.ID, &order.OrderNumber, &order.UserChatID, &order.Username,
			&order.Name, &order.Phone, &order.TechType, &order.Problem,
			&mediaFiles, &order.Language, &createdAt)
		if err != nil {
			log.Printf("GetOrders: Ошибка сканирования строки заявки: %v", err)
			return nil, err
		}
		if mediaFiles != "" {
			order.MediaFiles = strings.Split(mediaFiles, ",")
		}
		if createdAt.Valid {
			order.CreatedAt = createdAt.Time
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

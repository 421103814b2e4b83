// Файл: internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"zorservice/internal/constants"
)

var DB *sql.DB // Глобальная переменная для хранения подключения к БД

// InitDB инициализирует соединение с базой данных и выполняет миграции.
func InitDB() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL не установлена")
	}

	var err error
	DB, err = sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("ошибка подключения к базе данных: %v", err)
	}

	DB.SetMaxOpenConns(20)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("ошибка проверки соединения с базой данных: %v", err)
	}
	log.Println("Успешное подключение к базе данных.")

	createTablesSQL := `
        CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL,
            user_id BIGINT NOT NULL,
            username TEXT,
            name TEXT,
            phone TEXT,
            problem TEXT,
            media_files TEXT,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
        );
        CREATE TABLE IF NOT EXISTS counters (
            id INTEGER PRIMARY KEY,
            last_order_number INTEGER,
            last_reset_date TEXT
        );
    `
	if _, err = DB.Exec(createTablesSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %v", err)
	}
	log.Println("Создание таблиц (если не существуют) завершено.")

	if err = migrateDBSchema(); err != nil {
		return fmt.Errorf("ошибка выполнения миграции схемы: %v", err)
	}

	if err = seedCounter(); err != nil {
		return fmt.Errorf("ошибка инициализации счетчика заявок: %v", err)
	}

	createIndexesSQL := `
        CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
        CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
    `
	if _, err = DB.Exec(createIndexesSQL); err != nil {
		log.Printf("Предупреждение: ошибка при создании индексов: %v", err)
	}

	log.Println("Инициализация базы данных успешно завершена.")
	return nil
}

// migrateDBSchema выполняет необходимые миграции схемы базы данных.
// Функция идемпотентна: столбцы tech_type и language добавлялись позже первой версии схемы.
func migrateDBSchema() error {
	migrations := []struct {
		name string
		sql  string
	}{
		{
			name: "orders.tech_type",
			sql:  `ALTER TABLE orders ADD COLUMN IF NOT EXISTS tech_type TEXT;`,
		},
		{
			name: "orders.language",
			sql:  `ALTER TABLE orders ADD COLUMN IF NOT EXISTS language TEXT;`,
		},
	}

	for _, migration := range migrations {
		if _, err := DB.Exec(migration.sql); err != nil {
			return fmt.Errorf("ошибка миграции схемы ('%s'): %v", migration.name, err)
		}
	}

	log.Println("Миграция схемы базы данных успешно выполнена (или не требовалась).")
	return nil
}

// seedCounter создает единственную запись счетчика, если ее еще нет.
func seedCounter() error {
	currentDate := time.Now().In(constants.MoscowTZ).Format("2006-01-02")
	_, err := DB.Exec(`
        INSERT INTO counters (id, last_order_number, last_reset_date)
        VALUES (1, 0, $1)
        ON CONFLICT (id) DO NOTHING`, currentDate)
	return err
}

// CloseDB закрывает соединение с базой данных.
func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Соединение с базой данных закрыто.")
	}
}

package models

import (
	"time"
)

// Order представляет заявку на ремонт, созданную по завершении диалога.
// После записи в БД не изменяется.
type Order struct {
	ID          int64
	OrderNumber string
	UserChatID  int64
	Username    string
	Name        string
	Phone       string
	TechType    string
	Problem     string
	MediaFiles  []string
	Language    string
	CreatedAt   time.Time
}

// Counter представляет единственную запись счетчика для посуточной нумерации заявок.
// LastResetDate хранится как YYYY-MM-DD в опорном часовом поясе.
type Counter struct {
	LastOrderNumber int
	LastResetDate   string
}

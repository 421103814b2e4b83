package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

// jsonResponse - вспомогательная структура для стандартного ответа API
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload jsonResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("writeJSON: Ошибка кодирования ответа: %v", err)
	}
}

// HealthHandler отвечает хостингу и мониторингу, что бот жив.
func (deps ApiDependencies) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("✅ Bot is alive and running!"))
}

// listParams разбирает общие параметры выборки заявок.
// from/to в формате 2006-01-02; to трактуется как конец указанного дня.
func listParams(r *http.Request) (from, to time.Time, limit, offset int, err error) {
	limit = 50
	query := r.URL.Query()

	if s := query.Get("from"); s != "" {
		from, err = time.Parse("2006-01-02", s)
		if err != nil {
			return
		}
	}
	if s := query.Get("to"); s != "" {
		to, err = time.Parse("2006-01-02", s)
		if err != nil {
			return
		}
		to = to.AddDate(0, 0, 1)
	}
	if s := query.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit <= 0 {
			limit = 50
			err = nil
		}
		if limit > 500 {
			limit = 500
		}
	}
	if s := query.Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil || offset < 0 {
			offset = 0
			err = nil
		}
	}
	return
}

// GetOrdersHandler возвращает заявки за период в JSON.
func (deps ApiDependencies) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	from, to, limit, offset, err := listParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, jsonResponse{
			Status:  "error",
			Message: "Некорректный формат даты. Ожидается ГГГГ-ММ-ДД.",
		})
		return
	}

	orders, err := deps.Orders.ListOrders(from, to, limit, offset)
	if err != nil {
		log.Printf("GetOrdersHandler: Ошибка получения заявок: %v", err)
		writeJSON(w, http.StatusInternalServerError, jsonResponse{
			Status:  "error",
			Message: "Не удалось получить список заявок.",
		})
		return
	}

	writeJSON(w, http.StatusOK, jsonResponse{
		Status:  "success",
		Message: "Список заявок получен.",
		Data:    orders,
	})
}

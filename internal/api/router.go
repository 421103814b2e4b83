package api

import (
	"time"

	"github.com/go-chi/chi/v5"

	"zorservice/internal/config"
	"zorservice/internal/models"
	"zorservice/internal/session"
)

// OrderLister отдает заявки за период для API и выгрузки в Excel.
type OrderLister interface {
	ListOrders(from, to time.Time, limit, offset int) ([]models.Order, error)
}

// ApiDependencies содержит зависимости для обработчиков API.
type ApiDependencies struct {
	Config   *config.Config
	Orders   OrderLister
	Sessions *session.SessionManager
}

// SetupRoutes настраивает все маршруты для API.
func SetupRoutes(r *chi.Mux, deps ApiDependencies) {
	// Корень отвечает на проверки хостинга, что процесс жив.
	r.Get("/", deps.HealthHandler)
	r.Get("/health", deps.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", deps.GetOrdersHandler)
		r.Get("/orders/export", deps.ExportOrdersHandler)
	})
}

package main

import (
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"zorservice/internal/api"
	"zorservice/internal/config"
	"zorservice/internal/constants"
	"zorservice/internal/db"
	"zorservice/internal/handlers"
	"zorservice/internal/media"
	"zorservice/internal/pipeline"
	"zorservice/internal/sequencer"
	"zorservice/internal/session"
	"zorservice/internal/telegram_api"
	"zorservice/internal/webhook"
)

func main() {
	// --- Блок инициализации ---
	err := godotenv.Load()
	if err != nil {
		log.Println("Предупреждение: не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось загрузить конфигурацию: %v", err)
	}

	if err := db.InitDB(); err != nil {
		log.Fatalf("Критическая ошибка: не удалось инициализировать базу данных: %v", err)
	}
	defer db.CloseDB()

	err = telegram_api.InitBot(cfg.TelegramToken, cfg.AppEnv == "dev")
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось инициализировать Telegram бота: %v", err)
	}

	if telegram_api.Client == nil || telegram_api.Client.GetAPI() == nil {
		log.Fatalf("Критическая ошибка: Telegram API клиент не был корректно инициализирован.")
	}
	botAPI := telegram_api.Client.GetAPI()

	// --- Сборка компонентов бота ---
	sessionManager := session.NewSessionManager()

	mediaStore, err := media.NewDiskStore(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось подготовить каталог вложений '%s': %v", cfg.MediaDir, err)
	}
	collector := media.NewCollector(mediaStore, telegram_api.Client)

	orderSequencer := sequencer.New(db.NewCounterStore())
	relay := webhook.NewRelay(cfg.WebhookURL)
	notifier := handlers.NewOperatorNotifier(telegram_api.Client, mediaStore, cfg.AdminChatID)
	orderPipeline := pipeline.New(orderSequencer, db.NewOrderStore(), relay, notifier, collector, sessionManager)

	botHandler := handlers.NewBotHandler(handlers.HandlerDependencies{
		Config:         cfg,
		BotClient:      telegram_api.Client,
		SessionManager: sessionManager,
		Collector:      collector,
		Pipeline:       orderPipeline,
	})

	// Простаивающие диалоги убираются вместе с их вложениями.
	if cfg.SessionTTLMinutes > 0 {
		sessionManager.StartReaper(time.Duration(cfg.SessionTTLMinutes)*time.Minute, func(sess session.Session) {
			collector.Cleanup(sess.Media)
		})
	}

	// --- Настройка роутера и Middleware ---
	apiRouter := chi.NewRouter()

	apiRouter.Use(middleware.Logger)
	apiRouter.Use(middleware.Recoverer)
	apiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.SetupRoutes(apiRouter, api.ApiDependencies{
		Config:   cfg,
		Orders:   db.NewOrderStore(),
		Sessions: sessionManager,
	})

	apiRouter.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	go func() {
		log.Printf("Запуск HTTP-сервера на порту %s", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, apiRouter); err != nil {
			log.Fatalf("КРИТИЧЕСКАЯ ОШИБКА: не удалось запустить HTTP-сервер: %v", err)
		}
	}()

	// Ежедневная чистка каталога вложений: к 23:00 по Москве все завершенные
	// диалоги уже отправили свои файлы оператору, остатки никому не нужны.
	go runDailyMediaSweep(mediaStore)

	// --- Запуск самого бота ---
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	log.Println("Бот и API-сервер запущены и готовы к работе...")

	for update := range updates {
		if update.Message != nil {
			if update.Message.From != nil {
				log.Printf("[%s] %s", update.Message.From.UserName, update.Message.Text)
			}
			go botHandler.HandleMessage(update)
		} else if update.CallbackQuery != nil {
			if update.CallbackQuery.From != nil {
				log.Printf("Callback от %s: %s", update.CallbackQuery.From.UserName, update.CallbackQuery.Data)
			}
			go botHandler.HandleCallback(update)
		}
	}
}

// runDailyMediaSweep раз в сутки в 23:00 по Москве удаляет все файлы из
// каталога вложений.
func runDailyMediaSweep(store *media.DiskStore) {
	for {
		now := time.Now().In(constants.MoscowTZ)
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, constants.MoscowTZ)
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		time.Sleep(next.Sub(now))
		store.Sweep()
	}
}

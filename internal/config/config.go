// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	TelegramToken     string
	DatabaseURL       string
	AppEnv            string
	BotUsername       string
	AdminChatID       int64
	WebhookURL        string
	Port              string
	MediaDir          string
	SessionTTLMinutes int
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AppEnv:        os.Getenv("ENV"),
		BotUsername:   os.Getenv("BOT_USERNAME"),
		WebhookURL:    os.Getenv("MAKE_WEBHOOK_URL"),
		Port:          os.Getenv("PORT"),
		MediaDir:      os.Getenv("MEDIA_DIR"),
	}

	var err error
	cfg.AdminChatID, err = strconv.ParseInt(os.Getenv("ADMIN_CHAT_ID"), 10, 64)
	if err != nil {
		log.Printf("Предупреждение: не удалось прочитать ADMIN_CHAT_ID: %v. Установлено в 0, уведомления оператору работать не будут.", err)
		cfg.AdminChatID = 0
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "user_media"
	}

	ttlStr := os.Getenv("SESSION_TTL_MINUTES")
	if ttlStr != "" {
		ttl, errParse := strconv.Atoi(ttlStr)
		if errParse != nil || ttl < 0 {
			log.Printf("Предупреждение: некорректное значение SESSION_TTL_MINUTES ('%s'): %v. TTL сессий отключен.", ttlStr, errParse)
		} else {
			cfg.SessionTTLMinutes = ttl
		}
	}

	if cfg.TelegramToken == "" {
		log.Println("Критическая ошибка: TELEGRAM_APITOKEN не установлен.")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Критическая ошибка: DATABASE_URL не установлен.")
	}
	if cfg.WebhookURL == "" {
		log.Println("Предупреждение: MAKE_WEBHOOK_URL не установлен. Заявки не будут передаваться во внешнюю автоматизацию.")
	}
	if cfg.BotUsername == "" {
		log.Println("Предупреждение: BOT_USERNAME не установлен.")
	}

	log.Println("Конфигурация загружена.")
	return cfg, nil
}

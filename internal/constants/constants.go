package constants

import (
	"log"
	"time"
)

// Состояния диалога оформления заявки.
// Порядок шагов фиксирован: язык -> имя -> телефон -> тип техники -> проблема -> медиа -> подтверждение.
const (
	STATE_IDLE      = "idle"
	STATE_LANGUAGE  = "intake_language"
	STATE_NAME      = "intake_name"
	STATE_PHONE     = "intake_phone"
	STATE_TECH_TYPE = "intake_tech_type"
	STATE_PROBLEM   = "intake_problem"
	STATE_MEDIA     = "intake_media"
	STATE_CONFIRM   = "intake_confirm"
)

// Поддерживаемые языки
const (
	LANG_RU = "ru"
	LANG_UZ = "uz"
)

// Ограничения на медиа
const (
	MAX_MEDIA_FILES = 10
	MAX_PHOTO_SIZE  = 20 * 1024 * 1024 // 20MB
	MAX_VIDEO_SIZE  = 50 * 1024 * 1024 // 50MB
)

// Префиксы данных обратного вызова
const (
	CALLBACK_PREFIX_LANGUAGE = "lang" // lang_ru, lang_uz
)

// Метка источника для внешнего вебхука и заполнитель для пустых полей
const (
	WebhookSource     = "telegram_bot"
	ValueNotSpecified = "Не указано"
)

// MoscowTZ задает опорный часовой пояс для нумерации заявок и отметок времени.
var MoscowTZ *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		log.Printf("Предупреждение: не удалось загрузить часовой пояс Europe/Moscow: %v. Используется фиксированный MSK (+3).", err)
		loc = time.FixedZone("MSK", 3*60*60)
	}
	MoscowTZ = loc
}

// TechTypes содержит списки типов техники для клавиатуры выбора, по языкам.
// Выбор не валидируется строго: произвольный текст на этом шаге тоже принимается.
var TechTypes = map[string][]string{
	LANG_RU: {
		"Стиральная машина",
		"Духовка",
		"Электроплита",
		"Холодильник",
		"Посудомойка",
		"Кофемашина",
		"Робот-пылесос",
	},
	LANG_UZ: {
		"Kir yuvish mashinasi",
		"Pech",
		"Elektroplita",
		"Muzlatgich",
		"Idish yuvish mashinasi",
		"Kofe mashinasi",
		"Changyutgich robot",
	},
}

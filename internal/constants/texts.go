package constants

// Тексты интерфейса по языкам. Ключи единые для всех языков.
var Texts = map[string]map[string]string{
	LANG_RU: {
		"select_language":  "Выберите язык:",
		"enter_name":       "Пожалуйста, введите ваше имя:",
		"enter_phone":      "Пожалуйста, введите ваш номер телефона или нажмите кнопку ниже:",
		"select_tech":      "Выберите тип техники:",
		"describe_problem": "Опишите проблему подробно:",
		"add_media":        "📸 Пришлите фото/видео неисправности (макс. 10 файлов):\n• Фото до 20MB\n• Видео до 50MB",
		"confirm":          "📋 Ваша заявка:\n\n👤 Имя: %s\n📞 Телефон: %s\n🛠 Тип техники: %s\n❗ Проблема: %s\n\nВсё верно?",
		"confirm_yes":      "✅ Да, всё верно",
		"confirm_no":       "❌ Нет, изменить данные",
		"success":          "✅ Заявка #%s отправлена!\n\nМы получили вашу заявку и уже начали работу.\nМастер свяжется с вами в ближайшее время.",
		"error":            "❌ Произошла ошибка при обработке вашей заявки. Пожалуйста, попробуйте позже.",
		"back":             "↩️ Назад",
		"skip":             "⏭ Пропустить",
		"cancel":           "❌ Действие отменено. Чем ещё могу помочь?",
		"send_contact":     "📱 Отправить мой номер",
		"file_saved":       "📌 Файл сохранён. Можно отправить ещё %d файлов или продолжить:",
		"file_limit":       "📌 Достигнут лимит вложений (10 файлов). Нажмите «Пропустить», чтобы продолжить:",
		"file_too_big":     "⚠ Файл слишком большой. Максимальный размер: %s",
		"file_save_error":  "❌ Не удалось сохранить файл. Попробуйте отправить другой файл:",
		"about":            "🔧 О нашем сервисе:\n\n• Профессиональный ремонт бытовой техники\n• Официальная гарантия до 2 лет\n• Выезд мастера в день обращения\n• Оригинальные запчасти\n\n⏰ Часы работы: Пн-Пт 9:00-18:00",
		"contacts":         "📞 Наши контакты:\n\n📍 Адрес: г. Ташкент, ул. Олтин тепа 233\n☎ Телефон: +998884792901\n📧 Email: fixservise@sbk.ru\n🌐 Сайт: zorservice.uz\n\n🚗 Бесплатная парковка для клиентов",
	},
	LANG_UZ: {
		"select_language":  "Tilni tanlang:",
		"enter_name":       "Iltimos, ismingizni kiriting:",
		"enter_phone":      "Iltimos, telefon raqamingizni kiriting yoki quyidagi tugmani bosing:",
		"select_tech":      "Texnika turini tanlang:",
		"describe_problem": "Muammoni batafsil bayon qiling:",
		"add_media":        "📸 Nosozlikning foto/video suratini yuboring (maks. 10 fayl):\n• Foto 20MB gacha\n• Video 50MB gacha",
		"confirm":          "📋 Arizangiz:\n\n👤 Ism: %s\n📞 Telefon: %s\n🛠 Texnika turi: %s\n❗ Muammo: %s\n\nHammasi to'g'rimi?",
		"confirm_yes":      "✅ Ha, hammasi to'g'ri",
		"confirm_no":       "❌ Yo'q, o'zgartirmoqchiman",
		"success":          "✅ #%s raqamli ariza jo'natildi!\n\nArizangiz qabul qilindi va ish boshlandi.\nTez orada usta siz bilan bog'lanadi.",
		"error":            "❌ Arizangizni qayta ishlashda xatolik yuz berdi. Iltimos, keyinroq urinib ko'ring.",
		"back":             "↩️ Orqaga",
		"skip":             "⏭ O'tkazish",
		"cancel":           "❌ Harakat bekor qilindi. Yana qanday yordam bera olaman?",
		"send_contact":     "📱 Mening raqamimni yuborish",
		"file_saved":       "📌 Fayl saqlandi. Yana %d fayl yuborishingiz yoki davom etishingiz mumkin:",
		"file_limit":       "📌 Fayllar limiti to'ldi (10 fayl). Davom etish uchun «O'tkazish» tugmasini bosing:",
		"file_too_big":     "⚠ Fayl juda katta. Maksimal hajm: %s",
		"file_save_error":  "❌ Faylni saqlab bo'lmadi. Boshqa fayl yuborib ko'ring:",
		"about":            "🔧 Bizning xizmatimiz haqida:\n\n• Maishiy texnikani professional ta'mirlash\n• 2 yilgacha rasmiy kafolat\n• Masterning xizmat kuni ichida kelishi\n• Original ehtiyot qismlar\n\n⏰ Ish vaqti: Dush-Jum 9:00-18:00",
		"contacts":         "📞 Bizning kontaktlarimiz:\n\n📍 Manzil: Toshkent sh., Oltin tepa ko'chasi 233\n☎ Telefon: +998884792901\n📧 Email: fixservise@sbk.ru\n🌐 Vebsayt: zorservice.uz\n\n🚗 Mijozlar uchun bepul avtoturargoh",
	},
}

// Text возвращает локализованную строку по ключу.
// Неизвестный язык откатывается на русский, неизвестный ключ возвращается как есть.
func Text(lang, key string) string {
	langTexts, ok := Texts[lang]
	if !ok {
		langTexts = Texts[LANG_RU]
	}
	if t, ok := langTexts[key]; ok {
		return t
	}
	return key
}

// Кнопки разделов, доступных вне диалога заявки.
const (
	ButtonAboutRU    = "ℹ️ О сервисе"
	ButtonAboutUZ    = "ℹ️ Xizmat haqida"
	ButtonContactsRU = "📞 Контакты"
	ButtonContactsUZ = "📞 Kontaktlar"
)

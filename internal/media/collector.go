package media

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"zorservice/internal/constants"
	"zorservice/internal/session"
)

// Виды вложений, которые принимает сборщик.
const (
	KindPhoto = "photo"
	KindVideo = "video"
)

// ErrLimitReached означает, что в сессии уже MAX_MEDIA_FILES вложений; новые игнорируются.
var ErrLimitReached = errors.New("достигнут лимит вложений")

// SizeError означает, что вложение превышает потолок для своего вида. Файл к этому
// моменту уже удален из хранилища.
type SizeError struct {
	Kind  string
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("файл типа %s слишком большой: %d байт при лимите %d", e.Kind, e.Size, e.Limit)
}

// LimitLabel возвращает человекочитаемый лимит для сообщения пользователю.
func (e *SizeError) LimitLabel() string {
	if e.Kind == KindVideo {
		return "50MB"
	}
	return "20MB"
}

// Downloader выкачивает файл Telegram по его идентификатору.
type Downloader interface {
	Download(fileID string) (io.ReadCloser, error)
}

// Incoming описывает входящее вложение из сообщения пользователя.
type Incoming struct {
	FileID string
	Kind   string // KindPhoto или KindVideo
}

// Ack подтверждает принятое вложение.
type Ack struct {
	Filename  string
	Remaining int // сколько файлов еще можно прислать
}

// Collector проверяет и складывает вложения в хранилище, соблюдая политику
// по размеру и количеству.
type Collector struct {
	store      Store
	downloader Downloader
}

func NewCollector(store Store, downloader Downloader) *Collector {
	return &Collector{store: store, downloader: downloader}
}

// Add скачивает вложение, проверяет размер и дописывает имя файла в сессию.
// Сессия не меняется ни при каком отказе; файл с превышением размера или
// недокачанный файл в хранилище не остается.
func (c *Collector) Add(sess *session.Session, in Incoming) (Ack, error) {
	if len(sess.Media) >= constants.MAX_MEDIA_FILES {
		return Ack{}, ErrLimitReached
	}

	ext := "jpg"
	limit := int64(constants.MAX_PHOTO_SIZE)
	if in.Kind == KindVideo {
		ext = "mp4"
		limit = int64(constants.MAX_VIDEO_SIZE)
	}

	// Метка времени плюс короткий uuid: два файла одного пользователя в одну
	// секунду не должны затирать друг друга.
	filename := fmt.Sprintf("%d_%s_%s.%s",
		sess.ChatID, time.Now().Format("20060102150405"), uuid.New().String()[:8], ext)

	body, err := c.downloader.Download(in.FileID)
	if err != nil {
		log.Printf("Collector.Add: Ошибка скачивания файла %s (chatID %d): %v", in.FileID, sess.ChatID, err)
		return Ack{}, fmt.Errorf("скачивание вложения: %w", err)
	}
	defer body.Close()

	size, err := c.store.Save(filename, body)
	if err != nil {
		log.Printf("Collector.Add: Ошибка сохранения файла %s (chatID %d): %v", filename, sess.ChatID, err)
		return Ack{}, fmt.Errorf("сохранение вложения: %w", err)
	}

	if size > limit {
		if delErr := c.store.Delete(filename); delErr != nil {
			log.Printf("Collector.Add: Ошибка удаления слишком большого файла %s: %v", filename, delErr)
		}
		return Ack{}, &SizeError{Kind: in.Kind, Size: size, Limit: limit}
	}

	sess.Media = append(sess.Media, filename)
	log.Printf("Collector.Add: Сохранен файл %s (%.1fKB) для chatID %d. Всего вложений: %d.",
		filename, float64(size)/1024, sess.ChatID, len(sess.Media))

	return Ack{Filename: filename, Remaining: constants.MAX_MEDIA_FILES - len(sess.Media)}, nil
}

// Cleanup физически удаляет перечисленные вложения. Вызывается на каждом
// завершении диалога независимо от исхода; ошибки удаления только логируются.
func (c *Collector) Cleanup(files []string) {
	for _, filename := range files {
		if err := c.store.Delete(filename); err != nil {
			log.Printf("Collector.Cleanup: Ошибка удаления файла %s: %v", filename, err)
		} else {
			log.Printf("Collector.Cleanup: Удален файл %s", filename)
		}
	}
}

// Path возвращает путь к сохраненному вложению.
func (c *Collector) Path(filename string) string {
	return c.store.Path(filename)
}

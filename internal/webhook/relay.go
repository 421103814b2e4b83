// Пакет webhook передает завершенные заявки во внешнюю автоматизацию (Make).
// Передача выполняется не более одного раза и никогда не влияет на исход
// пользовательского сценария: ошибки только логируются.
package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"zorservice/internal/constants"
	"zorservice/internal/models"
)

// Payload задает плоское представление заявки для вебхука. Все значения строковые,
// кроме chat_id и media_count; пустые поля заменяются явным заполнителем.
type Payload struct {
	ChatID      int64  `json:"chat_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	TechType    string `json:"tech_type"`
	Problem     string `json:"problem"`
	Language    string `json:"language"`
	OrderNumber string `json:"order_number"`
	MediaCount  int    `json:"media_count"`
	Source      string `json:"source"`
}

// BuildPayload превращает заявку в полезную нагрузку вебхука.
func BuildPayload(order models.Order) Payload {
	orDefault := func(s string) string {
		if s == "" {
			return constants.ValueNotSpecified
		}
		return s
	}
	language := order.Language
	if language == "" {
		language = constants.LANG_RU
	}
	return Payload{
		ChatID:      order.UserChatID,
		Username:    orDefault(order.Username),
		Name:        orDefault(order.Name),
		Phone:       orDefault(order.Phone),
		TechType:    orDefault(order.TechType),
		Problem:     orDefault(order.Problem),
		Language:    language,
		OrderNumber: orDefault(order.OrderNumber),
		MediaCount:  len(order.MediaFiles),
		Source:      constants.WebhookSource,
	}
}

// Relay инкапсулирует HTTP-клиент вебхука с фиксированным таймаутом.
type Relay struct {
	url    string
	client *http.Client
}

func NewRelay(url string) *Relay {
	return &Relay{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send отправляет заявку на вебхук. Ответ кроме статуса не интересует.
func (r *Relay) Send(order models.Order) error {
	if r.url == "" {
		log.Printf("Relay.Send: URL вебхука не настроен, заявка %s не передана.", order.OrderNumber)
		return nil
	}

	payload := BuildPayload(order)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("сериализация данных заявки %s: %w", order.OrderNumber, err)
	}

	req, err := http.NewRequest(http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("создание запроса вебхука: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", uuid.New().String())

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("отправка заявки %s на вебхук: %w", order.OrderNumber, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("вебхук вернул статус %d для заявки %s", resp.StatusCode, order.OrderNumber)
	}

	log.Printf("Relay.Send: Данные заявки %s успешно переданы на вебхук.", order.OrderNumber)
	return nil
}

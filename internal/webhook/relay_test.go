package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zorservice/internal/constants"
	"zorservice/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderNumber: "15032024-0008",
		UserChatID:  777,
		Username:    "ivan",
		Name:        "Иван",
		Phone:       "+79990001122",
		TechType:    "Холодильник",
		Problem:     "Не морозит",
		MediaFiles:  []string{"777_a.jpg", "777_b.mp4"},
		Language:    constants.LANG_RU,
	}
}

// Полезная нагрузка уходит плоской, с числовыми chat_id и media_count.
func TestSendDeliversFlattenedPayload(t *testing.T) {
	var got Payload
	var idempotenceKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		idempotenceKey = r.Header.Get("Idempotence-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewRelay(srv.URL).Send(sampleOrder())

	require.NoError(t, err)
	assert.Equal(t, int64(777), got.ChatID)
	assert.Equal(t, "ivan", got.Username)
	assert.Equal(t, "Холодильник", got.TechType)
	assert.Equal(t, "15032024-0008", got.OrderNumber)
	assert.Equal(t, 2, got.MediaCount)
	assert.Equal(t, constants.WebhookSource, got.Source)
	assert.NotEmpty(t, idempotenceKey)
}

// Пустые поля заменяются заполнителем, а не null.
func TestBuildPayloadSubstitutesPlaceholders(t *testing.T) {
	payload := BuildPayload(models.Order{UserChatID: 5, OrderNumber: "x"})

	assert.Equal(t, constants.ValueNotSpecified, payload.Username)
	assert.Equal(t, constants.ValueNotSpecified, payload.Name)
	assert.Equal(t, constants.ValueNotSpecified, payload.Phone)
	assert.Equal(t, constants.ValueNotSpecified, payload.TechType)
	assert.Equal(t, constants.ValueNotSpecified, payload.Problem)
	assert.Equal(t, constants.LANG_RU, payload.Language)
	assert.Equal(t, 0, payload.MediaCount)
}

// Не-2xx ответ считается ошибкой для лога, но решение о ее проглатывании за конвейером.
func TestSendReportsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRelay(srv.URL).Send(sampleOrder())

	assert.ErrorContains(t, err, "статус 500")
}

// Без настроенного URL отправка тихо пропускается.
func TestSendSkipsWhenURLEmpty(t *testing.T) {
	assert.NoError(t, NewRelay("").Send(sampleOrder()))
}

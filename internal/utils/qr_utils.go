// internal/utils/qr_utils.go
package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateLinkQR генерирует QR-код для ссылки (например, на сайт сервиса).
// qrcode.Medium задает уровень коррекции ошибок, 256 размер в пикселях.
func GenerateLinkQR(link string) ([]byte, error) {
	if link == "" {
		return nil, fmt.Errorf("ссылка для QR-кода пуста")
	}
	qrBytes, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("генерация QR-кода для '%s': %w", link, err)
	}
	return qrBytes, nil
}

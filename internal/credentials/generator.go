// Package credentials генерация пары токен/PIN для выдачи бронирования.
// Пара предъявляется при получении места; это не security-учётка,
// поэтому криптографическая стойкость не требуется.
package credentials

import (
	"math/rand/v2"
	"strings"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// Generator генератор пары токен/PIN
type Generator struct{}

// NewGenerator создает генератор учетных пар
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate возвращает токен (6 символов A-Z0-9) и PIN (4 цифры).
// Уникальность токена обеспечивает вызывающая сторона
// (проверка по журналу с ограниченным перебросом).
func (g *Generator) Generate() (token string, pin string) {
	return randomString(domain.TokenAlphabet, domain.TokenLength),
		randomString(domain.PinAlphabet, domain.PinLength)
}

func randomString(alphabet string, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return sb.String()
}

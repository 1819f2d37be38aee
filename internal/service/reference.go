package service

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTransferReference возвращает референс перевода вида TRF + 12 hex
// символов в верхнем регистре. Уникальность вероятностная, без проверки по БД.
func GenerateTransferReference() string {
	return "TRF" + randomHex(6)
}

// GenerateTransactionReference возвращает референс строки леджера вида
// TXN + 12 hex символов в верхнем регистре.
func GenerateTransactionReference() string {
	return "TXN" + randomHex(6)
}

// GenerateAuditReference возвращает референс записи аудита в отдельном
// неймспейсе: TXN_<unix-мс>_<6 случайных base36 символов>.
func GenerateAuditReference() string {
	var sb strings.Builder
	sb.WriteString("TXN_")
	sb.WriteString(big.NewInt(time.Now().UnixMilli()).String())
	sb.WriteString("_")
	for range 6 {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			// crypto/rand на поддерживаемых платформах не возвращает ошибок
			panic(err)
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return sb.String()
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}

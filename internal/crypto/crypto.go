// crypto реализует шифрование чувствительных полей на уровне значений.
//
// Формат конверта: nonce (12 байт) ‖ ciphertext ‖ тег аутентификации (16 байт),
// целиком закодированный в base64. Шифрование недетерминировано: на каждый
// вызов генерируется свежий случайный nonce, поэтому одинаковые открытые
// тексты дают разные конверты.
//
// Контракт ошибок:
//   - nil на входе — «значения нет», на выходе nil;
//   - пустая строка не шифруется и проходит как есть (маркер «пусто»
//     не секретен, а конверт выдал бы его длиной);
//   - любой сбой дешифрования (мусор, чужой ключ, подмена) превращается
//     в nil — повреждённое поле деградирует до «неизвестно», а не роняет
//     обработку запроса.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	keyLen   = 32
	nonceLen = 12
)

// ErrKeyTooShort — мастер-ключ задан, но короче 256 бит.
// Ошибка конструирования фатальна на старте процесса.
var ErrKeyTooShort = errors.New("master key must be at least 32 bytes")

// Cipher — AES-256-GCM шифратор полей. Безопасен для конкурентного
// использования: состояние после конструирования не изменяется.
type Cipher struct {
	aead cipher.AEAD
}

// New создаёт шифратор из base64-закодированного мастер-ключа.
//
// Пустой ключ допустим для нештатной/локальной эксплуатации: генерируется
// случайный ключ на время жизни процесса с громким предупреждением в лог —
// зашифрованные в этом режиме данные не переживут рестарт.
func New(masterKeyBase64 string) (*Cipher, error) {
	const op = "crypto.New"

	var key []byte

	trimmed := strings.TrimSpace(masterKeyBase64)
	if trimmed == "" {
		key = make([]byte, keyLen)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		slog.Warn("CRYPTO_MASTER_KEY is not set; using a random process-lifetime key — " +
			"encrypted data will NOT survive a restart; set CRYPTO_MASTER_KEY in production")
	} else {
		decoded, err := base64.StdEncoding.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if len(decoded) < keyLen {
			return nil, fmt.Errorf("%s: %w", op, ErrKeyTooShort)
		}

		key = decoded[:keyLen]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt шифрует открытый текст в base64-конверт nonce‖ciphertext‖tag.
// nil и пустая строка проходят без изменений.
func (c *Cipher) Encrypt(plain *string) (*string, error) {
	const op = "crypto.Encrypt"

	if plain == nil {
		return nil, nil
	}

	if *plain == "" {
		empty := ""
		return &empty, nil
	}

	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Seal дописывает ciphertext и тег сразу после nonce.
	sealed := c.aead.Seal(nonce, nonce, []byte(*plain), nil)
	envelope := base64.StdEncoding.EncodeToString(sealed)

	return &envelope, nil
}

// Decrypt расшифровывает конверт, созданный Encrypt.
//
// Возвращает nil для nil/пустого входа и для любого конверта, который
// не удаётся расшифровать; криптографические ошибки наружу не выходят.
func (c *Cipher) Decrypt(envelope *string) *string {
	if envelope == nil || strings.TrimSpace(*envelope) == "" {
		return nil
	}

	combined, err := base64.StdEncoding.DecodeString(*envelope)
	if err != nil {
		return nil
	}

	if len(combined) <= nonceLen {
		return nil
	}

	plain, err := c.aead.Open(nil, combined[:nonceLen], combined[nonceLen:], nil)
	if err != nil {
		return nil
	}

	result := string(plain)

	return &result
}

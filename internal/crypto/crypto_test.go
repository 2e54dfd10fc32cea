package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

// Юнит-тесты шифратора полей:
// - round-trip и недетерминизм конвертов;
// - passthrough для nil/пустой строки;
// - деградация дешифрования до nil (мусор, чужой ключ, подмена байт);
// - валидация мастер-ключа в конструкторе.

func testKey(t *testing.T, fill byte) string {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = fill
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func newCipher(t *testing.T, fill byte) *Cipher {
	t.Helper()
	c, err := New(testKey(t, fill))
	require.NoError(t, err)
	return c
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	plain := "+7 (900) 123-45-67"
	env, err := c.Encrypt(&plain)
	require.NoError(t, err)
	require.NotNil(t, env)
	require.NotEqual(t, plain, *env)

	// Конверт — валидный base64, длиннее nonce+tag.
	raw, err := base64.StdEncoding.DecodeString(*env)
	require.NoError(t, err)
	require.Greater(t, len(raw), 12+16)

	got := c.Decrypt(env)
	require.NotNil(t, got)
	require.Equal(t, plain, *got)
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	plain := "same plaintext"
	a, err := c.Encrypt(&plain)
	require.NoError(t, err)
	b, err := c.Encrypt(&plain)
	require.NoError(t, err)

	// Свежий nonce на каждый вызов: конверты различаются.
	require.NotEqual(t, *a, *b)

	gotA := c.Decrypt(a)
	gotB := c.Decrypt(b)
	require.Equal(t, plain, *gotA)
	require.Equal(t, plain, *gotB)
}

func TestEncrypt_NilAndEmptyPassthrough(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	got, err := c.Encrypt(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	empty := ""
	got, err = c.Encrypt(&empty)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "", *got)
}

func TestDecrypt_NilAndBlank(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	require.Nil(t, c.Decrypt(nil))

	blank := "   "
	require.Nil(t, c.Decrypt(&blank))
}

func TestDecrypt_GarbageInput(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	// Не base64.
	garbage := "%%% not base64 %%%"
	require.Nil(t, c.Decrypt(&garbage))

	// Валидный base64, но короче nonce.
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	require.Nil(t, c.Decrypt(&short))
}

func TestDecrypt_WrongKey(t *testing.T) {
	t.Parallel()

	a := newCipher(t, 0x01)
	b := newCipher(t, 0x02)

	plain := "secret note"
	env, err := a.Encrypt(&plain)
	require.NoError(t, err)

	require.Nil(t, b.Decrypt(env))
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	t.Parallel()

	c := newCipher(t, 0x01)

	plain := "secret note"
	env, err := c.Encrypt(&plain)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(*env)
	require.NoError(t, err)

	// Переворачиваем один бит в ciphertext.
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	require.Nil(t, c.Decrypt(&tampered))
}

func TestNew_EmptyKey_RandomProcessKey(t *testing.T) {
	t.Parallel()

	// Без ключа конструктор не падает, а работает на случайном ключе.
	c, err := New("")
	require.NoError(t, err)

	plain := "works without configured key"
	env, err := c.Encrypt(&plain)
	require.NoError(t, err)

	got := c.Decrypt(env)
	require.NotNil(t, got)
	require.Equal(t, plain, *got)
}

func TestNew_KeyTooShort(t *testing.T) {
	t.Parallel()

	short := base64.StdEncoding.EncodeToString([]byte("only-16-bytes!!!"))
	_, err := New(short)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrKeyTooShort)
}

func TestNew_InvalidBase64(t *testing.T) {
	t.Parallel()

	_, err := New("*** definitely not base64 ***")
	require.Error(t, err)
}

func TestNew_LongerKeyTruncated(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 48)
	for i := range raw {
		raw[i] = byte(i)
	}
	c, err := New(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	plain := "long key material"
	env, err := c.Encrypt(&plain)
	require.NoError(t, err)
	require.Equal(t, plain, *c.Decrypt(env))
}

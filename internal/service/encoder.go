package service

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/sqids/sqids-go"
)

const (
	encoderAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	saltChars       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Encoder - обратимый кодировщик числовых идентификаторов в короткие
// URL-safe коды. Соль детерминированно перемешивает алфавит, поэтому
// одинаковая соль дает одинаковые коды, а чужую соль нельзя угадать
// по выданным кодам. Соль обязана оставаться стабильной, пока живут
// выданные коды - она сохраняется в хранилище при первом старте.
type Encoder struct {
	sq *sqids.Sqids
}

// Предел минимальной длины кода, продиктованный типом sqids.Options.MinLength
const maxMinCodeLength = 255

// NewEncoder создает кодировщик с заданной солью и минимальной длиной кода
func NewEncoder(salt string, minLength int) (*Encoder, error) {
	if minLength < 0 || minLength > maxMinCodeLength {
		return nil, fmt.Errorf("min code length %d is out of range [0, %d]", minLength, maxMinCodeLength)
	}

	sq, err := sqids.New(sqids.Options{
		Alphabet:  saltedAlphabet(salt),
		MinLength: uint8(minLength),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init encoder: %w", err)
	}

	return &Encoder{sq: sq}, nil
}

// Encode кодирует числовой идентификатор в короткий код
func (e *Encoder) Encode(id int64) (string, error) {
	code, err := e.sq.Encode([]uint64{uint64(id)})
	if err != nil {
		return "", fmt.Errorf("failed to encode id %d: %w", id, err)
	}
	return code, nil
}

// Decode восстанавливает числовой идентификатор из кода.
// Возвращает false, если код не декодируется в один идентификатор
func (e *Encoder) Decode(code string) (int64, bool) {
	ids := e.sq.Decode(code)
	if len(ids) != 1 {
		return 0, false
	}
	return int64(ids[0]), true
}

// saltedAlphabet детерминированно перемешивает базовый алфавит
// генератором, засеянным хэшем соли
func saltedAlphabet(salt string) string {
	h := fnv.New64a()
	h.Write([]byte(salt))

	random := rand.New(rand.NewSource(int64(h.Sum64())))
	letters := []byte(encoderAlphabet)
	random.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	return string(letters)
}

// GenerateSalt генерирует случайную алфавитно-цифровую соль.
// Вызывается один раз при первом старте; дальше соль берется из хранилища
func GenerateSalt(length int) string {
	result := make([]byte, length)

	for i := range result {
		result[i] = saltChars[rand.Intn(len(saltChars))]
	}

	return string(result)
}

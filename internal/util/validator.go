package util

import (
	"crypto/subtle"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxNameLength é o limite de caracteres para nome e sobrenome.
const MaxNameLength = 50

// ValidateName verifica se um nome não está vazio, é UTF-8 e tem no máximo MaxNameLength caracteres.
func ValidateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidf(EmptyInput, field, "%s must not be empty", field)
	}
	if !utf8.ValidString(value) {
		return invalidf(InvalidFormat, field, "%s must be valid UTF-8", field)
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return invalidf(LengthExceeded, field, "%s must be at most %d chars", field, MaxNameLength)
	}
	return nil
}

// ParseInt32 lê o primeiro token da linha como inteiro de 32 bits; o resto da linha é ignorado.
func ParseInt32(field, line string) (int32, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return 0, invalidf(InvalidFormat, field, "Invalid number")
	}
	n, err := strconv.ParseInt(tokens[0], 10, 32)
	if err != nil {
		return 0, invalidf(InvalidFormat, field, "Invalid number")
	}
	return int32(n), nil
}

// WillAddOverflow informa se x+y sai do intervalo int32, sem fazer a soma.
func WillAddOverflow(x, y int32) bool {
	return (y > 0 && x > math.MaxInt32-y) || (y < 0 && x < math.MinInt32-y)
}

// ValidateSum rejeita pares cuja soma estoura int32.
func ValidateSum(x, y int32) error {
	if WillAddOverflow(x, y) {
		return invalidf(OverflowDetected, "numbers", "Numbers too large")
	}
	return nil
}

// ValidatePasswordMatch exige que a confirmação seja idêntica à senha.
func ValidatePasswordMatch(password, confirmation string) error {
	if len(password) != len(confirmation) ||
		subtle.ConstantTimeCompare([]byte(password), []byte(confirmation)) != 1 {
		return invalidf(Mismatch, "password", "Passwords do not match")
	}
	return nil
}

// RequireString garante string não vazia.
func RequireString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return invalidf(EmptyInput, field, "%s is required", field)
	}
	return nil
}

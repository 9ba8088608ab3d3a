package apod

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// DateValue проверяет, что входная строка - дата в формате YYYY-MM-DD
func DateValue(input string) (string, error) {
	if _, err := time.Parse(dateLayout, input); err != nil {
		return "", fmt.Errorf("%w: incorrect date format, should be YYYY-MM-DD", ErrValidation)
	}
	return input, nil
}

// OptionalDate пропускает отсутствующее значение без ошибки,
// но по-прежнему валидирует непустое. Отсутствие и невалидность -
// разные исходы
func OptionalDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return DateValue(input)
}

// IntValue проверяет, что входная строка - целое число
func IntValue(input string) (int, error) {
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: expected an integer", ErrValidation)
	}
	return value, nil
}

// OptionalInt пропускает отсутствующее значение без ошибки
func OptionalInt(input string) (*int, error) {
	if input == "" {
		return nil, nil
	}
	value, err := IntValue(input)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// FloatValue проверяет, что входная строка - число с плавающей точкой
func FloatValue(input string) (float64, error) {
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a float", ErrValidation)
	}
	return value, nil
}

// OptionalFloat пропускает отсутствующее значение без ошибки
func OptionalFloat(input string) (*float64, error) {
	if input == "" {
		return nil, nil
	}
	value, err := FloatValue(input)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

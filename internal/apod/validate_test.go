package apod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDateValue проверяет валидацию формата даты
func TestDateValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid date", input: "2024-01-09", wantErr: false},
		{name: "Valid leap day", input: "2024-02-29", wantErr: false},
		{name: "Wrong separator", input: "2024/01/09", wantErr: true},
		{name: "Reversed order", input: "09-01-2024", wantErr: true},
		{name: "Month out of range", input: "2024-13-01", wantErr: true},
		{name: "Day out of range", input: "2024-01-32", wantErr: true},
		{name: "Not a date at all", input: "yesterday", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := DateValue(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Empty(t, value)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, value)
			}
		})
	}
}

// TestOptionalDate проверяет, что отсутствие значения и невалидное
// значение - разные исходы
func TestOptionalDate(t *testing.T) {
	t.Run("Absent value is not an error", func(t *testing.T) {
		value, err := OptionalDate("")

		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Present value is still validated", func(t *testing.T) {
		_, err := OptionalDate("not-a-date")

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Valid value passes through", func(t *testing.T) {
		value, err := OptionalDate("2023-06-15")

		require.NoError(t, err)
		assert.Equal(t, "2023-06-15", value)
	})
}

// TestIntValue проверяет валидацию целых чисел
func TestIntValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "Positive integer", input: "42", want: 42},
		{name: "Negative integer", input: "-7", want: -7},
		{name: "Zero", input: "0", want: 0},
		{name: "Float is not an integer", input: "1.5", wantErr: true},
		{name: "Text", input: "ten", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := IntValue(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, value)
			}
		})
	}
}

// TestOptionalInt проверяет опциональную валидацию целых чисел
func TestOptionalInt(t *testing.T) {
	t.Run("Absent value is not an error", func(t *testing.T) {
		value, err := OptionalInt("")

		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Present value is still validated", func(t *testing.T) {
		_, err := OptionalInt("one")

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Valid value passes through", func(t *testing.T) {
		value, err := OptionalInt("5")

		require.NoError(t, err)
		require.NotNil(t, value)
		assert.Equal(t, 5, *value)
	})
}

// TestFloatValue проверяет валидацию чисел с плавающей точкой
func TestFloatValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "Float", input: "3.14", want: 3.14},
		{name: "Integer is a valid float", input: "2", want: 2},
		{name: "Negative float", input: "-0.5", want: -0.5},
		{name: "Text", input: "pi", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := FloatValue(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
				assert.InDelta(t, tt.want, value, 1e-9)
			}
		})
	}
}

// TestOptionalFloat проверяет опциональную валидацию чисел с плавающей точкой
func TestOptionalFloat(t *testing.T) {
	t.Run("Absent value is not an error", func(t *testing.T) {
		value, err := OptionalFloat("")

		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("Present value is still validated", func(t *testing.T) {
		_, err := OptionalFloat("almost-three")

		assert.ErrorIs(t, err, ErrValidation)
	})
}

package sequence

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failWriter всегда возвращает ошибку записи
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("диск переполнен")
}

func TestPrint(t *testing.T) {

	tests := []struct {
		name     string
		input    []int
		length   int
		expected string
	}{
		{name: "весь слайс", input: []int{1, 2, 3, 4, 5, 6}, length: 6, expected: "1 2 3 4 5 6 \n"},
		{name: "только первые элементы", input: []int{1, 2, 3, 4, 5, 6}, length: 2, expected: "1 2 \n"},
		{name: "нулевая длина", input: []int{1, 2, 3}, length: 0, expected: "\n"},
		{name: "пустой слайс", input: nil, length: 0, expected: "\n"},
		{name: "отрицательные числа", input: []int{-1, 0, 1}, length: 3, expected: "-1 0 1 \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Print(&buf, tt.input, tt.length))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrintErrors(t *testing.T) {

	t.Run("length больше длины слайса", func(t *testing.T) {
		var buf bytes.Buffer
		err := Print(&buf, []int{1, 2, 3}, 4)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, buf.String())
	})

	t.Run("отрицательный length", func(t *testing.T) {
		var buf bytes.Buffer
		err := Print(&buf, []int{1, 2, 3}, -1)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, buf.String())
	})

	t.Run("ошибка записи", func(t *testing.T) {
		err := Print(failWriter{}, []int{1}, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "диск переполнен")
	})
}

func TestPrintDoesNotMutate(t *testing.T) {

	seq := []int{3, 1, 2}
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, seq, len(seq)))
	assert.Equal(t, []int{3, 1, 2}, seq)
}

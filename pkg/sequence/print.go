package sequence

import (
	"fmt"
	"io"
	"strings"
)

// Print пишет в w первые length элементов seq через пробел (с пробелом после каждого) и перевод строки
func Print[E any](w io.Writer, seq []E, length int) error {

	if length < 0 || length > len(seq) {
		return fmt.Errorf("%w: length=%d при длине последовательности %d", ErrInvalidArgument, length, len(seq))
	}

	// собираем строку целиком, чтобы писать в w одним вызовом
	var b strings.Builder
	for _, v := range seq[:length] {
		fmt.Fprintf(&b, "%v ", v)
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("ошибка вывода последовательности: %w", err)
	}

	return nil
}

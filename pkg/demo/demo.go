package demo

import (
	"fmt"
	"io"

	"github.com/IPampurin/ReverseArray/pkg/sequence"
	"github.com/wb-go/wbf/logger"
)

// LabelReversed — подпись перед развёрнутой последовательностью
const LabelReversed = "Reversed array is: "

// SampleSequence возвращает новый экземпляр учебного примера
func SampleSequence() []int {

	return []int{1, 2, 3, 4, 5, 6}
}

// Run печатает seq, разворачивает её на месте, печатает подпись и результат
func Run(w io.Writer, seq []int, log logger.Logger) error {

	log.Info("демонстрация разворота", "length", len(seq))

	if err := sequence.Print(w, seq, len(seq)); err != nil {
		return fmt.Errorf("печать исходной последовательности: %w", err)
	}

	if err := sequence.Reverse(seq, 0, len(seq)-1); err != nil {
		return fmt.Errorf("разворот последовательности: %w", err)
	}

	if _, err := fmt.Fprintln(w, LabelReversed); err != nil {
		return fmt.Errorf("печать подписи: %w", err)
	}

	if err := sequence.Print(w, seq, len(seq)); err != nil {
		return fmt.Errorf("печать развёрнутой последовательности: %w", err)
	}

	return nil
}

// Package sequence разворачивает и печатает последовательности на месте, без второго массива.
package sequence

import "fmt"

// checkBounds проверяет, что start и end не выходят за границы seq.
// Вырожденный диапазон (start >= end) после проверки допустим и ничего не меняет,
// поэтому (0, -1) на пустом слайсе ошибкой не считается.
func checkBounds(length, start, end int) error {

	if start < 0 {
		return fmt.Errorf("%w: start=%d меньше нуля", ErrInvalidArgument, start)
	}
	if end >= length {
		return fmt.Errorf("%w: end=%d выходит за границы последовательности длины %d", ErrInvalidArgument, end, length)
	}

	return nil
}

// Reverse разворачивает элементы seq с индекса start по end включительно на месте
func Reverse[E any](seq []E, start, end int) error {

	if err := checkBounds(len(seq), start, end); err != nil {
		return err
	}

	// идём указателями навстречу друг другу, пока они не встретятся
	for ; start < end; start, end = start+1, end-1 {
		seq[start], seq[end] = seq[end], seq[start]
	}

	return nil
}

// ReverseAll разворачивает весь слайс целиком
func ReverseAll[E any](seq []E) {

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Reversed возвращает развёрнутую копию seq, исходный слайс не меняется
func Reversed[E any](seq []E) []E {

	if seq == nil {
		return nil
	}

	result := make([]E, len(seq))
	last := len(seq) - 1
	for i := range seq {
		result[i] = seq[last-i]
	}

	return result
}

// ReverseRecursive — рекурсивный вариант Reverse с тем же контрактом.
// Глубина рекурсии равна ⌈(end-start+1)/2⌉, для больших диапазонов лучше Reverse.
func ReverseRecursive[E any](seq []E, start, end int) error {

	if err := checkBounds(len(seq), start, end); err != nil {
		return err
	}

	reverseRec(seq, start, end)

	return nil
}

func reverseRec[E any](seq []E, start, end int) {

	if start >= end {
		return
	}
	seq[start], seq[end] = seq[end], seq[start]
	reverseRec(seq, start+1, end-1)
}

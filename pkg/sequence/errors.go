package sequence

import "errors"

// ErrInvalidArgument возвращается при выходе индексов или длины за границы последовательности
var ErrInvalidArgument = errors.New("некорректный аргумент")

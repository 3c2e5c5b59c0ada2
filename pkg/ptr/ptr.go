// Package ptr хелперы для работы с указателями на значения
package ptr

// Ptr возвращает указатель на переданное значение
func Ptr[T any](v T) *T {
	return &v
}

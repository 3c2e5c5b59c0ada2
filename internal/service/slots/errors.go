package slots

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных данных слота
	ErrInvalidInput = errors.New("service.slots: invalid input")

	// ErrOrganizationNotFound возвращается, когда организация-владелец не найдена
	ErrOrganizationNotFound = errors.New("service.slots: organization not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.slots: internal error")
)

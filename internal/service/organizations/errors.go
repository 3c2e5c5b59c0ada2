package organizations

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации на уже занятый email
	ErrEmailTaken = errors.New("service.organizations: email already registered")

	// ErrInvalidInput возвращается при невалидных данных регистрации
	ErrInvalidInput = errors.New("service.organizations: invalid input")

	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("service.organizations: organization not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.organizations: internal error")
)

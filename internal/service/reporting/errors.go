package reporting

import "errors"

var (
	// ErrOrganizationNotFound возвращается, когда организация не найдена
	ErrOrganizationNotFound = errors.New("service.reporting: organization not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.reporting: internal error")
)

package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Наружу не различаем "нет такой учётки" и "неверный пароль".
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrNoCapacity возвращается, когда у слота нет свободных мест
	// (в том числе при проигрыше гонки на декременте в момент коммита)
	ErrNoCapacity = errors.New("create_booking: no slots available")

	// ErrInvalidDateTime возвращается, когда дата/время не парсятся
	ErrInvalidDateTime = errors.New("create_booking: invalid start or end datetime")

	// ErrInvalidRange возвращается, когда конец окна не позже начала
	ErrInvalidRange = errors.New("create_booking: end datetime must be after start datetime")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package domain

// Token/PIN generation constants
const (
	TokenLength   = 6
	TokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	PinLength     = 4
	PinAlphabet   = "0123456789"

	// MaxTokenAttempts максимальное количество попыток генерации уникального токена
	MaxTokenAttempts = 5
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeFormat     = "15:04"            // HH:MM
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Business validation constants
const (
	MaxNameLength     = 255
	MaxLocationLength = 100
	MaxFeatures       = 20
)

// ActiveStatuses список статусов, учитываемых при подсчёте активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
}

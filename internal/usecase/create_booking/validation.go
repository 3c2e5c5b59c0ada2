package create_booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
)

// parseWindow разбирает окно бронирования с точностью до минуты.
// Любая ошибка разбора любой из четырех компонент — ErrInvalidDateTime.
func parseWindow(req *Request) (start, end time.Time, err error) {
	start, err = parseDateTime(req.StartDate, req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start: %v", ErrInvalidDateTime, err)
	}

	end, err = parseDateTime(req.EndDate, req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end: %v", ErrInvalidDateTime, err)
	}

	return start, end, nil
}

func parseDateTime(date, clock string) (time.Time, error) {
	combined := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	return time.Parse(domain.DateTimeFormat, combined)
}

// parseTotalCost разбирает стоимость из опциональной строки.
// Отсутствие, мусор и отрицательные значения дают 0 — это не причина
// для отказа в бронировании.
func parseTotalCost(raw *string) float64 {
	if raw == nil {
		return 0
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || cost < 0 {
		return 0
	}

	return cost
}

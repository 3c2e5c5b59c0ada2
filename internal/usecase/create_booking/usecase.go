package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PMS-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/slot"
)

// UseCase процедура допуска бронирования: валидация запроса и атомарный
// переход {декремент инвентаря + запись в журнал}
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	credGen     CredentialGenerator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	credGen CredentialGenerator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		credGen:     credGen,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет допуск бронирования.
//
// Порядок проверок фиксирован и наблюдаем снаружи (каждая — свой отказ):
// слот существует -> есть свободные места -> даты парсятся -> конец позже
// начала. Стоимость не проверяется: мусор и отсутствие дают 0.
//
// Декремент счётчика и вставка в журнал выполняются в одной сериализуемой
// транзакции. Предварительная проверка available_slots > 0 — только
// быстрый отказ по прочитанному значению; решающим является условный
// декремент внутри транзакции, проигрыш гонки на котором коллапсирует
// в тот же ErrNoCapacity без следов в журнале.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, customer=%s, window=%s %s - %s %s",
		req.SlotID, req.CustomerName, req.StartDate, req.StartTime, req.EndDate, req.EndTime)

	// 1. Слот должен существовать
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
	}

	// 2. Быстрый отказ при исчерпанном инвентаре
	if slot.IsExhausted() {
		uc.logger.Warn("CreateBooking: slot id=%d has no capacity", req.SlotID)
		return nil, ErrNoCapacity
	}

	// 3-4. Разбор окна бронирования и проверка порядка границ
	start, end, err := parseWindow(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: datetime validation failed: %v", err)
		return nil, err
	}

	if !end.After(start) {
		uc.logger.Warn("CreateBooking: inverted window %s >= %s", start, end)
		return nil, ErrInvalidRange
	}

	// 5. Стоимость: снисходительный разбор, по умолчанию 0
	cost := parseTotalCost(req.TotalCost)

	// Конкурентная вставка того же токена (23505) абортирует сериализуемую
	// транзакцию целиком, поэтому переброс выполняется здесь: новая попытка —
	// новая транзакция и новый токен
	var result *domain.Booking
	for attempt := 1; attempt <= domain.MaxTokenAttempts; attempt++ {
		result, err = uc.admit(ctx, req, start, end, cost)
		if errors.Is(err, bookingRepo.ErrDuplicateToken) {
			uc.logger.Warn("CreateBooking: token collision on insert, attempt %d/%d",
				attempt, domain.MaxTokenAttempts)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateToken) {
			return nil, fmt.Errorf("%w: token attempts exhausted", ErrInternal)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d admitted, token=%s, slot=%d",
		result.ID, result.Token, result.SlotID)

	return responseFromBooking(result), nil
}

// admit одна попытка допуска: сериализуемая транзакция с декрементом
// инвентаря и вставкой в журнал. Коллизия токена на вставке возвращается
// как ErrDuplicateToken репозитория — откатом и перебросом управляет Execute.
func (uc *UseCase) admit(ctx context.Context, req *Request, start, end time.Time, cost float64) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Условный декремент — единственный арбитр ёмкости.
		// 0 затронутых строк = гонка проиграна или слот исчез.
		if err := uc.slotRepo.DecrementAvailable(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrNoCapacity) || errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrNoCapacity
			}
			return fmt.Errorf("%w: failed to decrement slot: %w", ErrInternal, err)
		}

		// Чеканим уникальный токен с ограниченным перебросом на коллизии
		token, pin, err := uc.mintCredentials(txCtx)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			SlotID:        req.SlotID,
			CustomerName:  req.CustomerName,
			PhoneNumber:   req.PhoneNumber,
			Email:         req.Email,
			VehicleType:   domain.VehicleClass(req.VehicleType),
			VehicleNumber: req.VehicleNumber,
			VehicleBrand:  req.VehicleBrand,
			StartDatetime: start,
			EndDatetime:   end,
			TotalCost:     cost,
			Token:         token,
			Pin:           pin,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateToken) {
				return err
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// mintCredentials генерирует пару токен/PIN, перебрасывая токен при
// коллизии с журналом. Ёмкость конфликтов не исчерпывает попытки:
// перебрасывается только токен.
func (uc *UseCase) mintCredentials(ctx context.Context) (string, string, error) {
	for attempt := 1; attempt <= domain.MaxTokenAttempts; attempt++ {
		token, pin := uc.credGen.Generate()

		exists, err := uc.bookingRepo.TokenExists(ctx, token)
		if err != nil {
			return "", "", fmt.Errorf("%w: failed to check token: %w", ErrInternal, err)
		}

		if !exists {
			return token, pin, nil
		}

		uc.logger.Warn("CreateBooking: token collision %q, attempt %d/%d",
			token, attempt, domain.MaxTokenAttempts)
	}

	return "", "", fmt.Errorf("%w: token attempts exhausted", ErrInternal)
}

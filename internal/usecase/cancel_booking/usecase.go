package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/PMS-ReservationService/internal/infra/storage/booking"
)

// UseCase отмена бронирования по паре токен/PIN с возвратом единицы
// ёмкости слота. Обратная операция к допуску: смена статуса и
// ограниченный инкремент коммитятся как единое целое.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute отменяет бронирование.
// Повторная отмена не возвращает ёмкость второй раз: условный апдейт
// статуса срабатывает только из состояния confirmed.
func (uc *UseCase) Execute(ctx context.Context, token, pin string) error {
	uc.logger.Info("CancelBooking: token=%s", token)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByTokenAndPin(txCtx, token, pin)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !b.CanBeCancelled() {
			return ErrAlreadyCancelled
		}

		if err := uc.bookingRepo.Cancel(txCtx, b.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				return ErrAlreadyCancelled
			}
			return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
		}

		// Подтвержденное бронирование держит ровно одну единицу ёмкости,
		// поэтому инкремент обязан пройти; отказ означает рассинхронизацию
		// счётчика и журнала — транзакция откатывается
		if err := uc.slotRepo.IncrementAvailable(txCtx, b.SlotID); err != nil {
			return fmt.Errorf("%w: failed to release capacity for slot=%d: %w", ErrInternal, b.SlotID, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: token=%s cancelled, capacity released", token)
	return nil
}

package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда парковочный слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrNoCapacity возвращается, когда available_slots уже 0
	// (или слот исчез) в момент условного декремента
	ErrNoCapacity = errors.New("slot.repository: no capacity available")

	// ErrCapacityFull возвращается, когда available_slots уже равен total_slots
	// в момент условного инкремента
	ErrCapacityFull = errors.New("slot.repository: capacity already at total")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)

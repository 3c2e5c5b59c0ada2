package simpletxmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PMS-ReservationService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTransactionManager(db), mock
}

func serializationConflict() *pq.Error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

// decrement имитирует репозиторий: выполняет апдейт через исполнитель из
// контекста и оборачивает ошибку драйвера, сохраняя её в цепочке
func decrement(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, nil)
	if _, err := executor.ExecContext(ctx, "UPDATE parking_slots SET available_slots = available_slots - 1"); err != nil {
		return fmt.Errorf("storage: failed to execute query: %w", err)
	}
	return nil
}

func TestDoSerializable_Commit(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE parking_slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := m.DoSerializable(context.Background(), decrement)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesStatementConflict(t *testing.T) {
	m, mock := newManager(t)

	// проигравший гонку стейтмент получает 40001: откат и повтор
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE parking_slots").WillReturnError(serializationConflict())
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE parking_slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return decrement(ctx)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesCommitConflict(t *testing.T) {
	m, mock := newManager(t)

	// конфликт сериализации может проявиться и на COMMIT
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(serializationConflict())

	mock.ExpectBegin()
	mock.ExpectCommit()

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesExhausted(t *testing.T) {
	m, mock := newManager(t)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE parking_slots").WillReturnError(serializationConflict())
		mock.ExpectRollback()
	}

	err := m.DoSerializable(context.Background(), decrement)

	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NoRetryOnPlainError(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

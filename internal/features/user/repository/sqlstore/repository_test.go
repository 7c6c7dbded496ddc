package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlite")
	return &Repository{db: db}, mock
}

func userRows(id int64, wallet, xProfile string, points int64) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "wallet_address", "x_profile", "points", "last_boost_time", "created_at"}).
		AddRow(id, wallet, xProfile, points, nil, time.Now())
}

func TestUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("0xABC", "@meme").
		WillReturnRows(userRows(1, "0xABC", "@meme", 0))

	user, err := repo.Upsert(context.Background(), "0xABC", "@meme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "0xABC", user.WalletAddress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByWallet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE wallet_address").
		WithArgs("0xABC").
		WillReturnRows(userRows(7, "0xABC", "@meme", 30))

	user, err := repo.GetByWallet(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.Equal(t, int64(30), user.Points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(222))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 222, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordBoost(t *testing.T) {
	repo, mock := newMockRepo(t)

	at := time.Now()
	mock.ExpectQuery("UPDATE users SET points = points \\+ 1").
		WithArgs(at, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(5))

	points, err := repo.RecordBoost(context.Background(), 1, at)
	require.NoError(t, err)
	assert.Equal(t, int64(5), points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddPointsUnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE users SET points = points \\+ \\?").
		WithArgs(int64(10), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"points"}))

	_, err := repo.AddPoints(context.Background(), 42, 10)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec("DELETE FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 1)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrorWrapped(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").
		WillReturnError(assert.AnError)

	_, err := repo.List(context.Background())
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository_test

import (
	"context"
	"database/sql"
	"pms/infras/otel/mocks"
	"pms/infras/postgres"
	"pms/shared"
	"pms/shared/dto"
	"pms/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRow struct {
	ID       string `db:"id"`
	RoomNo   string `db:"room_no"`
	TypeName string `db:"room_type_name" table:"room_types" column:"name"`
}

func (roomRow) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}

func newRepository(t *testing.T) (repository.Repository[roomRow], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"), 0, sql.LevelDefault)

	return repository.NewRepository[roomRow]("room", "rooms", "id", conn, mocks.NewOtel()), mock
}

func TestRepository_InsertQuery(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"id", "room_no"}, repo.InsertColumns)
	assert.Equal(t, "INSERT INTO rooms (id, room_no) VALUES (:id, :room_no)", repo.InsertQuery(""))
	assert.Equal(t, "INSERT INTO rooms (id, room_no) VALUES (:id, :room_no) ON CONFLICT DO NOTHING", repo.InsertQuery("ON CONFLICT DO NOTHING"))
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET is_dirty = $1, room_no = $2 WHERE (rooms.id = $3)")).
		WithArgs(false, "101", "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"room_no": "101", "is_dirty": false}, shared.FilterByID("r-1", "id", "rooms"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_SameColumnInFilter(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET room_no = $1 WHERE (rooms.room_no = $2)")).
		WithArgs("102", "101").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"room_no": "102"}, shared.FilterByID("101", "room_no", "rooms"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RefusesUnfilteredWrites(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, map[string]any{"is_dirty": true}, dto.FilterGroup{}), repository.ErrRequiredFilter)
	assert.ErrorIs(t, repo.Update(ctx, map[string]any{}, shared.FilterByID("r-1", "id", "rooms")), repository.ErrNoFields)
	assert.ErrorIs(t, repo.Delete(ctx, dto.FilterGroup{}), repository.ErrRequiredFilter)

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, repository.ErrRequiredFilter)
}

func TestRepository_Get(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		expected roomRow
	}{
		{
			name:     "found with joined column",
			rows:     sqlmock.NewRows([]string{"id", "room_no", "room_type_name"}).AddRow("r-1", "101", "Deluxe"),
			expected: roomRow{ID: "r-1", RoomNo: "101", TypeName: "Deluxe"},
		},
		{
			name: "missing row yields zero value",
			rows: sqlmock.NewRows([]string{"id", "room_no", "room_type_name"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectPrepare(regexp.QuoteMeta("SELECT rooms.id, rooms.room_no, room_types.name AS room_type_name FROM rooms LEFT JOIN room_types")).
				ExpectQuery().
				WithArgs("r-1").
				WillReturnRows(tt.rows)

			room, err := repo.Get(context.Background(), shared.FilterByID("r-1", "id", "rooms"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, room)
		})
	}
}

func TestRepository_GetAll_Paginates(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY room_no ASC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_no", "room_type_name"}).
			AddRow("r-11", "111", "Suite").
			AddRow("r-12", "112", "Suite"))

	rooms, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "room_no", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func taskRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "priority", "status", "created_at"})
	for i, id := range ids {
		rows.AddRow(id, "user-1", "task "+id, "medium", "pending", time.Now().Add(time.Duration(i)*time.Minute))
	}
	return rows
}

func TestGormTaskRepository_FindByID(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `tasks` WHERE id = (.+)").
		WillReturnRows(taskRows("task-1"))

	task, err := repo.FindByID("task-1")
	require.NoError(t, err)
	require.Equal(t, "task-1", task.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `tasks` WHERE id = (.+)").
		WillReturnRows(taskRows())

	_, err := repo.FindByID("missing")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_ListByUserID_OrdersByCreation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `tasks` WHERE user_id = (.+) ORDER BY created_at ASC").
		WillReturnRows(taskRows("task-1", "task-2"))

	tasks, err := repo.ListByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "task-1", tasks[0].ID)
	require.Equal(t, "task-2", tasks[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_Delete_IssuesHardDelete(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `tasks` WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete("task-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

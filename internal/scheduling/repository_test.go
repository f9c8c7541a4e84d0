package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajFruit/Hospital-Managment-System/pkg/database"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

func setupTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	repo := &Repository{
		db:     &database.DB{DB: sqlDB},
		logger: logger.New("error"),
	}
	return repo, mock
}

func TestRepositoryCreateAppointment(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(
			"APT7F3A21C4", "PAT11112222", "DOC33334444", "2024-03-20", "10:30",
			"Follow-up", types.AppointmentStatusScheduled, "", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAppointment(context.Background(), &types.Appointment{
		AppointmentID: "APT7F3A21C4",
		PatientID:     "PAT11112222",
		DoctorID:      "DOC33334444",
		Date:          "2024-03-20",
		Time:          "10:30",
		Reason:        "Follow-up",
		Status:        types.AppointmentStatusScheduled,
		CreatedAt:     time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateAppointmentDuplicateID(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "appointments_appointment_id_key"})

	err := repo.CreateAppointment(context.Background(), &types.Appointment{
		AppointmentID: "APT7F3A21C4",
		PatientID:     "PAT11112222",
		DoctorID:      "DOC33334444",
	})

	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
	assert.Equal(t, types.ErrCodeDuplicateID, types.ErrorCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCountAppointmentsOnDate(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments`).
		WithArgs("2024-03-20").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountAppointmentsOnDate(context.Background(), "2024-03-20")

	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package registry

import (
	"context"
	"database/sql"
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

func TestRepositoryCreatePatient(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("INSERT INTO patients").
		WithArgs(
			"PAT11112222", "John Smith", 45, "Male", "12 Hill Road", "555-0101",
			"john@example.com", "O+", "555-0102", "2024-03-15", "2024-03-15",
			"", "", "", "Active", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePatient(context.Background(), &types.Patient{
		PatientID:        "PAT11112222",
		Name:             "John Smith",
		Age:              45,
		Gender:           "Male",
		Address:          "12 Hill Road",
		Phone:            "555-0101",
		Email:            "john@example.com",
		BloodGroup:       "O+",
		EmergencyContact: "555-0102",
		RegistrationDate: "2024-03-15",
		LastVisit:        "2024-03-15",
		Status:           "Active",
		CreatedAt:        time.Now(),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreatePatientDuplicateID(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("INSERT INTO patients").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "patients_patient_id_key"})

	err := repo.CreatePatient(context.Background(), &types.Patient{
		PatientID: "PAT11112222",
		Name:      "John Smith",
		Phone:     "555-0101",
	})

	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.ErrorTypeConflict))
	assert.Equal(t, types.ErrCodeDuplicateID, types.ErrorCode(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetPatientByIDNotFound(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectQuery("FROM patients").
		WithArgs("PATMISSING1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPatientByID(context.Background(), "PATMISSING1")

	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySearchPatientsTerm(t *testing.T) {
	repo, mock := setupTestRepository(t)

	// the one wildcard-wrapped term matches id, name and phone
	mock.ExpectQuery("patient_id ILIKE").
		WithArgs("%smith%").
		WillReturnRows(sqlmock.NewRows([]string{
			"patient_id", "name", "age", "gender", "address", "phone", "email",
			"blood_group", "emergency_contact", "registration_date", "last_visit",
			"medical_history", "allergies", "insurance_info", "status", "created_at",
		}).AddRow(
			"PAT11112222", "John Smith", 45, "Male", "", "555-0101", "",
			"", "", "2024-03-15", "2024-03-15", "", "", "", "Active", time.Now(),
		))

	patients, err := repo.SearchPatients(context.Background(), "smith")

	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "John Smith", patients[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteDoctorNotFound(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("DELETE FROM doctors").
		WithArgs("DOCMISSING9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDoctor(context.Background(), "DOCMISSING9")

	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package salaryrecord_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/salaryrecord"
	salaryrecorderrors "go-payroll/internal/salaryrecord/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeSalaryRecordRepository struct {
	createFn         func(ctx context.Context, record *salaryrecord.SalaryRecord) error
	findByEmployeeFn func(ctx context.Context, employeeID string) ([]salaryrecord.SalaryRecord, error)
	findCurrentFn    func(ctx context.Context, employeeID string, asOf string) (*salaryrecord.SalaryRecord, error)
	employeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
	deleteFn         func(ctx context.Context, id string) error
	findByIDFn       func(ctx context.Context, id string) (*salaryrecord.SalaryRecord, error)
}

func (f *fakeSalaryRecordRepository) WithTx(tx *sql.Tx) salaryrecord.Repository {
	return f
}

func (f *fakeSalaryRecordRepository) Create(ctx context.Context, record *salaryrecord.SalaryRecord) error {
	if f.createFn != nil {
		return f.createFn(ctx, record)
	}
	return nil
}

func (f *fakeSalaryRecordRepository) FindByEmployee(ctx context.Context, employeeID string) ([]salaryrecord.SalaryRecord, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeSalaryRecordRepository) FindCurrent(ctx context.Context, employeeID string, asOf string) (*salaryrecord.SalaryRecord, error) {
	if f.findCurrentFn != nil {
		return f.findCurrentFn(ctx, employeeID, asOf)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRecordRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func (f *fakeSalaryRecordRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeSalaryRecordRepository) FindByID(ctx context.Context, id string) (*salaryrecord.SalaryRecord, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func setupSalaryRecordServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, salaryrecord.Service, *fakeSalaryRecordRepository) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRecordRepository{}
	svc := salaryrecord.NewService(db, repo, zap.NewNop())

	return db, sqlMock, svc, repo
}

func TestSalaryRecordService_Create(t *testing.T) {
	ctx := context.Background()
	db, sqlMock, svc, repo := setupSalaryRecordServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	employeeID := uuid.New()
	var created *salaryrecord.SalaryRecord
	repo.createFn = func(ctx context.Context, record *salaryrecord.SalaryRecord) error {
		created = record
		return nil
	}

	resp, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    employeeID.String(),
		BaseSalary:    "50000",
		EffectiveDate: "2026-01-01",
		Notes:         "annual review",
	})

	assert.NoError(t, err)
	assert.Equal(t, "50000.00", resp.BaseSalary)
	assert.Equal(t, "2026-01-01", resp.EffectiveDate)
	assert.NotNil(t, created)
	assert.Equal(t, employeeID, created.EmployeeID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSalaryRecordService_Create_NegativeSalary(t *testing.T) {
	ctx := context.Background()
	db, _, svc, _ := setupSalaryRecordServiceTest(t)
	defer db.Close()

	_, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    uuid.New().String(),
		BaseSalary:    "-100",
		EffectiveDate: "2026-01-01",
	})

	assert.ErrorIs(t, err, salaryrecorderrors.ErrNegativeSalary)
}

func TestSalaryRecordService_Create_InvalidSalary(t *testing.T) {
	ctx := context.Background()
	db, _, svc, _ := setupSalaryRecordServiceTest(t)
	defer db.Close()

	_, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    uuid.New().String(),
		BaseSalary:    "fifty thousand",
		EffectiveDate: "2026-01-01",
	})

	assert.ErrorIs(t, err, salaryrecorderrors.ErrInvalidSalary)
}

func TestSalaryRecordService_Create_InvalidEffectiveDate(t *testing.T) {
	ctx := context.Background()
	db, _, svc, _ := setupSalaryRecordServiceTest(t)
	defer db.Close()

	_, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    uuid.New().String(),
		BaseSalary:    "50000",
		EffectiveDate: "01/01/2026",
	})

	assert.ErrorIs(t, err, salaryrecorderrors.ErrInvalidEffectiveDate)
}

func TestSalaryRecordService_Create_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	db, sqlMock, svc, repo := setupSalaryRecordServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) {
		return false, nil
	}

	_, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    uuid.New().String(),
		BaseSalary:    "50000",
		EffectiveDate: "2026-01-01",
	})

	assert.ErrorIs(t, err, salaryrecorderrors.ErrEmployeeNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSalaryRecordService_Create_DuplicateEffectiveDate(t *testing.T) {
	ctx := context.Background()
	db, sqlMock, svc, repo := setupSalaryRecordServiceTest(t)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo.createFn = func(ctx context.Context, record *salaryrecord.SalaryRecord) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_record_effective"}
	}

	_, err := svc.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
		EmployeeID:    uuid.New().String(),
		BaseSalary:    "50000",
		EffectiveDate: "2026-01-01",
	})

	assert.ErrorIs(t, err, salaryrecorderrors.ErrDuplicateEffectiveDate)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSalaryRecordService_GetCurrent(t *testing.T) {
	ctx := context.Background()
	db, _, svc, repo := setupSalaryRecordServiceTest(t)
	defer db.Close()

	employeeID := uuid.New()
	repo.findCurrentFn = func(ctx context.Context, id string, asOf string) (*salaryrecord.SalaryRecord, error) {
		assert.Equal(t, "2026-02-28", asOf)
		return &salaryrecord.SalaryRecord{
			ID:            uuid.New(),
			EmployeeID:    employeeID,
			BaseSalary:    decimal.RequireFromString("47500"),
			EffectiveDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	resp, err := svc.GetCurrent(ctx, employeeID.String(), time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Equal(t, "47500.00", resp.BaseSalary)
	assert.Equal(t, "2026-01-15", resp.EffectiveDate)
}

func TestSalaryRecordService_GetCurrent_NoHistory(t *testing.T) {
	ctx := context.Background()
	db, _, svc, _ := setupSalaryRecordServiceTest(t)
	defer db.Close()

	_, err := svc.GetCurrent(ctx, uuid.New().String(), time.Now())

	assert.ErrorIs(t, err, salaryrecorderrors.ErrSalaryRecordNotFound)
}

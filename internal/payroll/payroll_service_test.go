package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
	outbox  *fakeOutboxRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	outbox := &fakeOutboxRepository{}
	svc := payroll.NewService(db, repo, outbox, zap.NewNop())

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// salaried configures the fake repo so every employee resolves a clean
// calculation with the given base salary and a flat 10% service bonus.
func salaried(repo *fakePayrollRepository, base string) {
	repo.findCurrentBaseSalaryFn = func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
		return dec(base), nil
	}
	repo.findBracketPercentageFn = func(ctx context.Context, years int) (decimal.Decimal, error) {
		return dec("10"), nil
	}
	repo.findThresholdAdjustmentFn = func(ctx context.Context, days int) (decimal.Decimal, error) {
		return dec("0"), nil
	}
	repo.findDepartmentNameFn = func(ctx context.Context, departmentID string) (string, error) {
		return "Engineering", nil
	}
}

func TestPayrollService_Preview(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC))

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	salaried(deps.repo, "50000")
	incentive := dec("5")
	deps.repo.findDepartmentIncentiveFn = func(ctx context.Context, departmentID string) (*decimal.Decimal, error) {
		return &incentive, nil
	}
	deps.repo.findAbsenceDaysFn = func(ctx context.Context, employeeID string, year, month int) (int, error) {
		return 4, nil
	}
	deps.repo.findThresholdAdjustmentFn = func(ctx context.Context, days int) (decimal.Decimal, error) {
		return dec("-2"), nil
	}
	deps.repo.findEmployeeByIDFn = func(ctx context.Context, id string) (*payroll.SnapshotEmployee, error) {
		return &employee, nil
	}

	resp, err := deps.service.Preview(ctx, employee.ID.String(), 2026, 7)

	assert.NoError(t, err)
	assert.Equal(t, "2500.00", resp.IncentiveAmount)
	assert.Equal(t, "5000.00", resp.BracketAmount)
	assert.Equal(t, "-1000.00", resp.AdjustmentAmount)
	assert.Equal(t, "56500.00", resp.GrossPay)
	assert.Equal(t, "Engineering", resp.DepartmentName)
}

func TestPayrollService_Preview_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findEmployeeByIDFn = func(ctx context.Context, id string) (*payroll.SnapshotEmployee, error) {
		return nil, gorm.ErrRecordNotFound
	}

	_, err := deps.service.Preview(ctx, uuid.New().String(), 2026, 7)

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestPayrollService_Preview_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC))
	employee.EmploymentStatus = "DELETED"

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findEmployeeByIDFn = func(ctx context.Context, id string) (*payroll.SnapshotEmployee, error) {
		return &employee, nil
	}

	_, err := deps.service.Preview(ctx, employee.ID.String(), 2026, 7)

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotActive)
}

func TestPayrollService_Preview_InvalidPeriod(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.Preview(ctx, uuid.New().String(), 2026, 13)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)

	_, err = deps.service.Preview(ctx, uuid.New().String(), 1999, 1)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
}

func TestPayrollService_PreviewAll_SkipAndContinue(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	healthy := activeEmployee(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	noSalary := activeEmployee(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))

	salaried(deps.repo, "20000")
	deps.repo.findActiveEmployeesFn = func(ctx context.Context) ([]payroll.SnapshotEmployee, error) {
		return []payroll.SnapshotEmployee{healthy, noSalary}, nil
	}
	deps.repo.findCurrentBaseSalaryFn = func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
		if employeeID == noSalary.ID.String() {
			return decimal.Zero, gorm.ErrRecordNotFound
		}
		return dec("20000"), nil
	}

	resp, err := deps.service.PreviewAll(ctx, 2026, 5)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Computed)
	assert.Len(t, resp.Results, 1)
	assert.Len(t, resp.Failures, 1)
	assert.Equal(t, noSalary.ID.String(), resp.Failures[0].EmployeeID)
}

func TestPayrollService_Generate_MajoritySuccess(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	employees := make([]payroll.SnapshotEmployee, 0, 10)
	broken := make(map[string]bool)
	for i := 0; i < 10; i++ {
		e := activeEmployee(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
		if i >= 6 {
			broken[e.ID.String()] = true
		}
		employees = append(employees, e)
	}

	salaried(deps.repo, "10000")
	deps.repo.findActiveEmployeesFn = func(ctx context.Context) ([]payroll.SnapshotEmployee, error) {
		return employees, nil
	}
	deps.repo.findCurrentBaseSalaryFn = func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
		if broken[employeeID] {
			return decimal.Zero, gorm.ErrRecordNotFound
		}
		return dec("10000"), nil
	}

	upserts := 0
	deps.repo.upsertSnapshotFn = func(ctx context.Context, snapshot *payroll.PayrollSnapshot) error {
		upserts++
		assert.Equal(t, 2026, snapshot.Year)
		assert.Equal(t, 2, snapshot.Month)
		assert.Equal(t, "11000.00", snapshot.GrossPay.StringFixed(2))
		return nil
	}

	var published *events.PayrollSnapshotsGeneratedEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		assert.Equal(t, events.PayrollSnapshotsGeneratedTopic, event.Topic)
		var e events.PayrollSnapshotsGeneratedEvent
		assert.NoError(t, json.Unmarshal(event.Payload, &e))
		published = &e
		return nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Generate(ctx, payroll.GenerateRequest{Year: 2026, Month: 2}, "admin-1")

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.Total)
	assert.Equal(t, 6, resp.Succeeded)
	assert.Equal(t, 4, resp.Failed)
	assert.True(t, resp.Success)
	assert.Equal(t, 6, upserts)
	assert.NotNil(t, published)
	assert.Equal(t, 6, published.Succeeded)
	assert.Equal(t, 4, published.Failed)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_MinoritySuccessStillPersists(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	employees := make([]payroll.SnapshotEmployee, 0, 5)
	broken := make(map[string]bool)
	for i := 0; i < 5; i++ {
		e := activeEmployee(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
		if i >= 2 {
			broken[e.ID.String()] = true
		}
		employees = append(employees, e)
	}

	salaried(deps.repo, "10000")
	deps.repo.findActiveEmployeesFn = func(ctx context.Context) ([]payroll.SnapshotEmployee, error) {
		return employees, nil
	}
	deps.repo.findCurrentBaseSalaryFn = func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
		if broken[employeeID] {
			return decimal.Zero, gorm.ErrRecordNotFound
		}
		return dec("10000"), nil
	}

	upserts := 0
	deps.repo.upsertSnapshotFn = func(ctx context.Context, snapshot *payroll.PayrollSnapshot) error {
		upserts++
		return nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Generate(ctx, payroll.GenerateRequest{Year: 2026, Month: 3}, "admin-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 3, resp.Failed)
	assert.False(t, resp.Success)
	assert.Equal(t, 2, upserts)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_NoEmployees(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findActiveEmployeesFn = func(ctx context.Context) ([]payroll.SnapshotEmployee, error) {
		return nil, nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.Generate(ctx, payroll.GenerateRequest{Year: 2026, Month: 4}, "admin-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	// Zero employees can never reach a strict majority.
	assert.False(t, resp.Success)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GetSnapshot_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetSnapshot(ctx, uuid.New().String(), 2026, 1)

	assert.ErrorIs(t, err, payrollerrors.ErrSnapshotNotFound)
}

func TestPayrollService_ExportPeriodCSV(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findSnapshotsByPeriodFn = func(ctx context.Context, year, month int) ([]payroll.PayrollSnapshot, error) {
		return []payroll.PayrollSnapshot{
			{
				ID:             uuid.New(),
				EmployeeID:     uuid.New(),
				Year:           2026,
				Month:          2,
				EmployeeName:   "Ayu Lestari",
				EmployeeNumber: "EMP-000001",
				BaseSalary:     dec("50000"),
				GrossPay:       dec("56500"),
				GeneratedAt:    time.Now().UTC(),
			},
		}, nil
	}

	data, err := deps.service.ExportPeriodCSV(ctx, 2026, 2)

	assert.NoError(t, err)
	assert.Contains(t, string(data), "employee_number,employee_name")
	assert.Contains(t, string(data), "EMP-000001,Ayu Lestari")
	assert.Contains(t, string(data), "56500.00")
}

func TestPayrollService_Payslip(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.findSnapshotFn = func(ctx context.Context, id string, year, month int) (*payroll.PayrollSnapshot, error) {
		return &payroll.PayrollSnapshot{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			Year:           year,
			Month:          month,
			EmployeeName:   "Ayu Lestari",
			EmployeeNumber: "EMP-000001",
			BaseSalary:     dec("50000"),
			GrossPay:       dec("56500"),
			GeneratedAt:    time.Now().UTC(),
		}, nil
	}

	data, err := deps.service.Payslip(ctx, employeeID.String(), 2026, 2)

	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF-1.4", string(data[:8]))
}

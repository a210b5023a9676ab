package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, employeeID string, year, month int) (ComputationResponse, error)
	PreviewAll(ctx context.Context, year, month int) (BatchPreviewResponse, error)
	Generate(ctx context.Context, req GenerateRequest, generatedBy string) (GenerateResponse, error)
	GetSnapshot(ctx context.Context, employeeID string, year, month int) (SnapshotResponse, error)
	GetSnapshotsByPeriod(ctx context.Context, year, month int) ([]SnapshotResponse, error)
	GetSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]SnapshotResponse, error)
	ExportPeriodCSV(ctx context.Context, year, month int) ([]byte, error)
	Payslip(ctx context.Context, employeeID string, year, month int) ([]byte, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	calculator *Calculator
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger *zap.Logger,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		calculator: NewCalculator(repo),
		outbox:     outboxRepo,
		logger:     logger.Named("payroll.service"),
	}
}

func validPeriod(year, month int) bool {
	return year >= 2000 && year <= 2100 && month >= 1 && month <= 12
}

func (s *service) Preview(
	ctx context.Context,
	employeeID string,
	year, month int,
) (ComputationResponse, error) {

	if !validPeriod(year, month) {
		return ComputationResponse{}, payrollerrors.ErrInvalidPeriod
	}

	employee, err := s.repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComputationResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return ComputationResponse{}, err
	}
	if employee.EmploymentStatus != "ACTIVE" {
		return ComputationResponse{}, payrollerrors.ErrEmployeeNotActive
	}

	comp, err := s.calculator.Calculate(ctx, *employee, year, month)
	if err != nil {
		return ComputationResponse{}, err
	}

	return s.mapComputation(ctx, comp), nil
}

func (s *service) PreviewAll(ctx context.Context, year, month int) (BatchPreviewResponse, error) {
	if !validPeriod(year, month) {
		return BatchPreviewResponse{}, payrollerrors.ErrInvalidPeriod
	}

	employees, err := s.repo.FindActiveEmployees(ctx)
	if err != nil {
		return BatchPreviewResponse{}, err
	}

	resp := BatchPreviewResponse{
		Year:     year,
		Month:    month,
		Total:    len(employees),
		Results:  make([]ComputationResponse, 0, len(employees)),
		Failures: make([]ComputationFailure, 0),
	}

	for _, employee := range employees {
		comp, err := s.calculator.Calculate(ctx, employee, year, month)
		if err != nil {
			resp.Failures = append(resp.Failures, failureFor(employee, err))
			continue
		}
		resp.Results = append(resp.Results, s.mapComputation(ctx, comp))
	}

	resp.Computed = len(resp.Results)
	return resp, nil
}

// Generate calculates every active employee and persists one snapshot per
// success. A failing employee is skipped, never the whole run. The run is
// reported successful when a strict majority of employees succeeded.
func (s *service) Generate(
	ctx context.Context,
	req GenerateRequest,
	generatedBy string,
) (GenerateResponse, error) {

	if !validPeriod(req.Year, req.Month) {
		return GenerateResponse{}, payrollerrors.ErrInvalidPeriod
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Info("payroll generation started",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	employees, err := s.repo.FindActiveEmployees(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}

	resp := GenerateResponse{
		Year:     req.Year,
		Month:    req.Month,
		Total:    len(employees),
		Results:  make([]ComputationResponse, 0, len(employees)),
		Failures: make([]ComputationFailure, 0),
	}

	computations := make([]Computation, 0, len(employees))
	for _, employee := range employees {
		comp, err := s.calculator.Calculate(ctx, employee, req.Year, req.Month)
		if err != nil {
			s.logger.Warn("employee skipped during payroll generation",
				zap.String("request_id", rid),
				zap.String("employee_id", employee.ID.String()),
				zap.Error(err),
			)
			resp.Failures = append(resp.Failures, failureFor(employee, err))
			continue
		}
		computations = append(computations, comp)
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	for _, comp := range computations {
		snapshot := snapshotFrom(comp, generatedBy, now)
		snapshot.DepartmentName = s.departmentName(ctx, comp.Employee)
		if err := qtx.UpsertSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("persist payroll snapshot failed",
				zap.String("request_id", rid),
				zap.String("employee_id", comp.Employee.ID.String()),
				zap.Error(err),
			)
			return GenerateResponse{}, err
		}
		resp.Results = append(resp.Results, s.mapComputation(ctx, comp))
	}

	resp.Succeeded = len(resp.Results)
	resp.Failed = len(resp.Failures)
	resp.Success = resp.Succeeded*2 > resp.Total

	if s.outbox != nil {
		event := events.PayrollSnapshotsGeneratedEvent{
			EventType:   "payroll_snapshots_generated",
			RequestID:   rid,
			Year:        req.Year,
			Month:       req.Month,
			Succeeded:   resp.Succeeded,
			Failed:      resp.Failed,
			GeneratedBy: generatedBy,
			OccurredAt:  now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return GenerateResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_period",
			AggregateID:   fmt.Sprintf("%04d-%02d", req.Year, req.Month),
			EventType:     event.EventType,
			Topic:         events.PayrollSnapshotsGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("payroll generation outbox persist failed",
				zap.String("request_id", rid),
				zap.Error(err),
			)
			return GenerateResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return GenerateResponse{}, err
	}

	s.logger.Info("payroll generation finished",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("succeeded", resp.Succeeded),
		zap.Int("failed", resp.Failed),
		zap.Bool("success", resp.Success),
	)

	return resp, nil
}

func (s *service) GetSnapshot(
	ctx context.Context,
	employeeID string,
	year, month int,
) (SnapshotResponse, error) {

	snapshot, err := s.repo.FindSnapshot(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SnapshotResponse{}, payrollerrors.ErrSnapshotNotFound
		}
		return SnapshotResponse{}, err
	}

	return mapSnapshot(*snapshot), nil
}

func (s *service) GetSnapshotsByPeriod(ctx context.Context, year, month int) ([]SnapshotResponse, error) {
	if !validPeriod(year, month) {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	snapshots, err := s.repo.FindSnapshotsByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	res := make([]SnapshotResponse, len(snapshots))
	for i, snap := range snapshots {
		res[i] = mapSnapshot(snap)
	}
	return res, nil
}

func (s *service) GetSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]SnapshotResponse, error) {
	snapshots, err := s.repo.FindSnapshotsByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	res := make([]SnapshotResponse, len(snapshots))
	for i, snap := range snapshots {
		res[i] = mapSnapshot(snap)
	}
	return res, nil
}

func failureFor(employee SnapshotEmployee, err error) ComputationFailure {
	reason := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		reason = appErr.Message
	}
	return ComputationFailure{
		EmployeeID:   employee.ID.String(),
		EmployeeName: employee.FullName,
		Reason:       reason,
	}
}

func snapshotFrom(comp Computation, generatedBy string, generatedAt time.Time) *PayrollSnapshot {
	return &PayrollSnapshot{
		ID:                   uuid.New(),
		EmployeeID:           comp.Employee.ID,
		Year:                 comp.Year,
		Month:                comp.Month,
		EmployeeName:         comp.Employee.FullName,
		EmployeeNumber:       comp.Employee.EmployeeNumber,
		BaseSalary:           comp.BaseSalary,
		YearsOfService:       comp.YearsOfService,
		IncentivePercentage:  comp.IncentivePercentage,
		IncentiveAmount:      comp.IncentiveAmount,
		BracketPercentage:    comp.BracketPercentage,
		BracketAmount:        comp.BracketAmount,
		AbsenceDays:          comp.AbsenceDays,
		AdjustmentPercentage: comp.AdjustmentPercentage,
		AdjustmentAmount:     comp.AdjustmentAmount,
		GrossPay:             comp.GrossPay,
		GeneratedBy:          generatedBy,
		GeneratedAt:          generatedAt,
	}
}

// Best effort: a missing department only blanks the display name.
func (s *service) departmentName(ctx context.Context, employee SnapshotEmployee) string {
	if employee.DepartmentID == nil {
		return ""
	}

	name, err := s.repo.FindDepartmentName(ctx, employee.DepartmentID.String())
	if err != nil {
		return ""
	}
	return name
}

func (s *service) mapComputation(ctx context.Context, comp Computation) ComputationResponse {
	return ComputationResponse{
		EmployeeID:           comp.Employee.ID.String(),
		EmployeeName:         comp.Employee.FullName,
		EmployeeNumber:       comp.Employee.EmployeeNumber,
		DepartmentName:       s.departmentName(ctx, comp.Employee),
		Year:                 comp.Year,
		Month:                comp.Month,
		BaseSalary:           comp.BaseSalary.StringFixed(2),
		YearsOfService:       comp.YearsOfService,
		IncentivePercentage:  comp.IncentivePercentage.StringFixed(2),
		IncentiveAmount:      comp.IncentiveAmount.StringFixed(2),
		BracketPercentage:    comp.BracketPercentage.StringFixed(2),
		BracketAmount:        comp.BracketAmount.StringFixed(2),
		AbsenceDays:          comp.AbsenceDays,
		AdjustmentPercentage: comp.AdjustmentPercentage.StringFixed(2),
		AdjustmentAmount:     comp.AdjustmentAmount.StringFixed(2),
		GrossPay:             comp.GrossPay.StringFixed(2),
	}
}

func mapSnapshot(snap PayrollSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID: snap.ID.String(),
		ComputationResponse: ComputationResponse{
			EmployeeID:           snap.EmployeeID.String(),
			EmployeeName:         snap.EmployeeName,
			EmployeeNumber:       snap.EmployeeNumber,
			DepartmentName:       snap.DepartmentName,
			Year:                 snap.Year,
			Month:                snap.Month,
			BaseSalary:           snap.BaseSalary.StringFixed(2),
			YearsOfService:       snap.YearsOfService,
			IncentivePercentage:  snap.IncentivePercentage.StringFixed(2),
			IncentiveAmount:      snap.IncentiveAmount.StringFixed(2),
			BracketPercentage:    snap.BracketPercentage.StringFixed(2),
			BracketAmount:        snap.BracketAmount.StringFixed(2),
			AbsenceDays:          snap.AbsenceDays,
			AdjustmentPercentage: snap.AdjustmentPercentage.StringFixed(2),
			AdjustmentAmount:     snap.AdjustmentAmount.StringFixed(2),
			GrossPay:             snap.GrossPay.StringFixed(2),
		},
		GeneratedBy: snap.GeneratedBy,
		GeneratedAt: snap.GeneratedAt.Format(time.RFC3339),
	}
}

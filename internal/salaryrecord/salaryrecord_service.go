package salaryrecord

import (
	"context"
	"database/sql"
	"errors"
	"time"

	salaryrecorderrors "go-payroll/internal/salaryrecord/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryrecord_service.go -destination=mock/salaryrecord_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRecordRequest) (SalaryRecordResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error)
	GetCurrent(ctx context.Context, employeeID string, asOf time.Time) (SalaryRecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger *zap.Logger) Service {
	return &service{
		db:     db,
		repo:   repo,
		logger: logger.Named("salaryrecord_service"),
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalaryRecordRequest,
) (SalaryRecordResponse, error) {

	baseSalary, err := decimal.NewFromString(req.BaseSalary)
	if err != nil {
		return SalaryRecordResponse{}, salaryrecorderrors.ErrInvalidSalary
	}
	if baseSalary.IsNegative() {
		return SalaryRecordResponse{}, salaryrecorderrors.ErrNegativeSalary
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return SalaryRecordResponse{}, salaryrecorderrors.ErrInvalidEffectiveDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	if !exists {
		return SalaryRecordResponse{}, salaryrecorderrors.ErrEmployeeNotFound
	}

	record := &SalaryRecord{
		ID:            uuid.New(),
		EmployeeID:    uuid.MustParse(req.EmployeeID),
		BaseSalary:    baseSalary,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
	}

	if err := qtx.Create(ctx, record); err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryRecordResponse{}, err
	}

	s.logger.Info("salary record created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("effective_date", req.EffectiveDate),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error) {
	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetCurrent(
	ctx context.Context,
	employeeID string,
	asOf time.Time,
) (SalaryRecordResponse, error) {

	record, err := s.repo.FindCurrent(ctx, employeeID, asOf.Format("2006-01-02"))
	if err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryrecorderrors.ErrSalaryRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return salaryrecorderrors.ErrDuplicateEffectiveDate
	}

	return err
}

func mapToResponse(record SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:            record.ID.String(),
		EmployeeID:    record.EmployeeID.String(),
		BaseSalary:    record.BaseSalary.StringFixed(2),
		EffectiveDate: record.EffectiveDate.Format("2006-01-02"),
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
	}
}

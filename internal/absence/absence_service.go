package absence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	absenceerrors "go-payroll/internal/absence/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordAbsenceRequest) (AbsenceRecordResponse, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (AbsenceRecordResponse, error)
	GetByEmployee(ctx context.Context, employeeID string, year int) ([]AbsenceRecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Record(
	ctx context.Context,
	req RecordAbsenceRequest,
) (AbsenceRecordResponse, error) {

	if req.Days > daysInMonth(req.Year, req.Month) {
		return AbsenceRecordResponse{}, absenceerrors.ErrDaysExceedMonth
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AbsenceRecordResponse{}, err
	}
	if !exists {
		return AbsenceRecordResponse{}, absenceerrors.ErrEmployeeNotFound
	}

	record := &AbsenceRecord{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Year:       req.Year,
		Month:      req.Month,
		Days:       req.Days,
	}

	if err := qtx.Upsert(ctx, record); err != nil {
		return AbsenceRecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AbsenceRecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetByEmployeeAndPeriod(
	ctx context.Context,
	employeeID string,
	year, month int,
) (AbsenceRecordResponse, error) {

	record, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, year, month)
	if err != nil {
		return AbsenceRecordResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*record), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string, year int) ([]AbsenceRecordResponse, error) {
	records, err := s.repo.FindByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AbsenceRecordResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res, nil
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

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceNotFound
	}

	return err
}

func mapToResponse(record AbsenceRecord) AbsenceRecordResponse {
	return AbsenceRecordResponse{
		ID:         record.ID.String(),
		EmployeeID: record.EmployeeID.String(),
		Year:       record.Year,
		Month:      record.Month,
		Days:       record.Days,
		UpdatedAt:  record.UpdatedAt.Format(time.RFC3339),
	}
}

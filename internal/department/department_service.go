package department

import (
	"context"
	"database/sql"
	"errors"
	"time"

	departmenterrors "go-payroll/internal/department/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	SetIncentive(ctx context.Context, id string, req SetIncentiveRequest) (DepartmentResponse, error)
	GetIncentiveHistory(ctx context.Context, id string) ([]IncentiveHistoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = req.Name

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

// SetIncentive updates the department incentive percentage and records the
// change in the append-only history within the same transaction.
func (s *service) SetIncentive(
	ctx context.Context,
	id string,
	req SetIncentiveRequest,
) (DepartmentResponse, error) {

	pct, err := decimal.NewFromString(req.IncentivePercentage)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidIncentive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	dept.IncentivePercentage = &pct
	dept.IncentiveSetDate = &now

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := qtx.AppendIncentiveHistory(ctx, &IncentiveHistory{
		ID:                  uuid.New(),
		DepartmentID:        dept.ID,
		IncentivePercentage: pct,
		SetDate:             now,
	}); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetIncentiveHistory(ctx context.Context, id string) ([]IncentiveHistoryResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	entries, err := s.repo.FindIncentiveHistory(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]IncentiveHistoryResponse, len(entries))
	for i, e := range entries {
		res[i] = IncentiveHistoryResponse{
			ID:                  e.ID.String(),
			DepartmentID:        e.DepartmentID.String(),
			IncentivePercentage: e.IncentivePercentage.StringFixed(2),
			SetDate:             e.SetDate.Format("2006-01-02"),
		}
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

	hasEmployees, err := qtx.HasEmployees(ctx, id)
	if err != nil {
		return err
	}
	if hasEmployees {
		return departmenterrors.ErrDepartmentHasEmployees
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
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return departmenterrors.ErrDepartmentNameTaken
	}

	return err
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:        dept.ID.String(),
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt: dept.UpdatedAt.Format(time.RFC3339),
	}
	if dept.IncentivePercentage != nil {
		resp.IncentivePercentage = dept.IncentivePercentage.StringFixed(2)
	}
	if dept.IncentiveSetDate != nil {
		resp.IncentiveSetDate = dept.IncentiveSetDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}

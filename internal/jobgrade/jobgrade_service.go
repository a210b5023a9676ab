package jobgrade

import (
	"context"
	"database/sql"
	"errors"
	"time"

	jobgradeerrors "go-payroll/internal/jobgrade/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=jobgrade_service.go -destination=mock/jobgrade_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobGradeRequest) (JobGradeResponse, error)
	GetAll(ctx context.Context) ([]JobGradeResponse, error)
	GetByID(ctx context.Context, id string) (JobGradeResponse, error)
	Update(ctx context.Context, id string, req UpdateJobGradeRequest) (JobGradeResponse, error)
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
	req CreateJobGradeRequest,
) (JobGradeResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobGradeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	grade := &JobGrade{
		ID:    uuid.New(),
		Code:  req.Code,
		Name:  req.Name,
		Level: req.Level,
	}

	if err := qtx.Create(ctx, grade); err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobGradeResponse{}, err
	}

	return mapToResponse(*grade), nil
}

func (s *service) GetAll(ctx context.Context) ([]JobGradeResponse, error) {
	grades, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]JobGradeResponse, len(grades))
	for i, g := range grades {
		res[i] = mapToResponse(g)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (JobGradeResponse, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*grade), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateJobGradeRequest,
) (JobGradeResponse, error) {

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobGradeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	grade, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	grade.Name = req.Name
	grade.Level = req.Level

	if err := qtx.Update(ctx, grade); err != nil {
		return JobGradeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return JobGradeResponse{}, err
	}

	return mapToResponse(*grade), nil
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
		return jobgradeerrors.ErrJobGradeHasEmployees
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
		return jobgradeerrors.ErrJobGradeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return jobgradeerrors.ErrJobGradeCodeTaken
	}

	return err
}

func mapToResponse(grade JobGrade) JobGradeResponse {
	return JobGradeResponse{
		ID:        grade.ID.String(),
		Code:      grade.Code,
		Name:      grade.Name,
		Level:     grade.Level,
		CreatedAt: grade.CreatedAt.Format(time.RFC3339),
		UpdatedAt: grade.UpdatedAt.Format(time.RFC3339),
	}
}

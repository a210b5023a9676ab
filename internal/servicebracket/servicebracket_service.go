package servicebracket

import (
	"context"
	"database/sql"
	"errors"
	"time"

	servicebracketerrors "go-payroll/internal/servicebracket/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=servicebracket_service.go -destination=mock/servicebracket_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateServiceBracketRequest) (ServiceBracketResponse, error)
	GetAll(ctx context.Context) ([]ServiceBracketResponse, error)
	GetByID(ctx context.Context, id string) (ServiceBracketResponse, error)
	Update(ctx context.Context, id string, req UpdateServiceBracketRequest) (ServiceBracketResponse, error)
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
	req CreateServiceBracketRequest,
) (ServiceBracketResponse, error) {

	pct, err := decimal.NewFromString(req.Percentage)
	if err != nil {
		return ServiceBracketResponse{}, servicebracketerrors.ErrInvalidPercentage
	}
	if req.MaxYears != nil && *req.MaxYears < req.MinYears {
		return ServiceBracketResponse{}, servicebracketerrors.ErrInvalidRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	bracket := &ServiceBracket{
		ID:         uuid.New(),
		MinYears:   req.MinYears,
		MaxYears:   req.MaxYears,
		Percentage: pct,
		IsActive:   true,
	}

	if err := s.rejectOverlap(ctx, qtx, *bracket); err != nil {
		return ServiceBracketResponse{}, err
	}

	if err := qtx.Create(ctx, bracket); err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ServiceBracketResponse{}, err
	}

	return mapToResponse(*bracket), nil
}

func (s *service) GetAll(ctx context.Context) ([]ServiceBracketResponse, error) {
	brackets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]ServiceBracketResponse, len(brackets))
	for i, b := range brackets {
		res[i] = mapToResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceBracketResponse, error) {
	bracket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*bracket), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateServiceBracketRequest,
) (ServiceBracketResponse, error) {

	pct, err := decimal.NewFromString(req.Percentage)
	if err != nil {
		return ServiceBracketResponse{}, servicebracketerrors.ErrInvalidPercentage
	}
	if req.MaxYears != nil && *req.MaxYears < req.MinYears {
		return ServiceBracketResponse{}, servicebracketerrors.ErrInvalidRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceBracketResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	bracket, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	bracket.MinYears = req.MinYears
	bracket.MaxYears = req.MaxYears
	bracket.Percentage = pct
	if req.IsActive != nil {
		bracket.IsActive = *req.IsActive
	}

	if bracket.IsActive {
		if err := s.rejectOverlap(ctx, qtx, *bracket); err != nil {
			return ServiceBracketResponse{}, err
		}
	}

	if err := qtx.Update(ctx, bracket); err != nil {
		return ServiceBracketResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ServiceBracketResponse{}, err
	}

	return mapToResponse(*bracket), nil
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

// rejectOverlap enforces at write time that active brackets never share a
// year, so payroll resolution always finds at most one match.
func (s *service) rejectOverlap(ctx context.Context, repo Repository, candidate ServiceBracket) error {
	active, err := repo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	for _, existing := range active {
		if existing.ID == candidate.ID {
			continue
		}
		if existing.Overlaps(candidate) {
			return servicebracketerrors.ErrOverlappingBracket
		}
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return servicebracketerrors.ErrBracketNotFound
	}

	return err
}

func mapToResponse(bracket ServiceBracket) ServiceBracketResponse {
	return ServiceBracketResponse{
		ID:         bracket.ID.String(),
		MinYears:   bracket.MinYears,
		MaxYears:   bracket.MaxYears,
		Percentage: bracket.Percentage.StringFixed(2),
		IsActive:   bracket.IsActive,
		CreatedAt:  bracket.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  bracket.UpdatedAt.Format(time.RFC3339),
	}
}

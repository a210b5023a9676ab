package absencethreshold

import (
	"context"
	"database/sql"
	"errors"
	"time"

	absencethresholderrors "go-payroll/internal/absencethreshold/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=absencethreshold_service.go -destination=mock/absencethreshold_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAbsenceThresholdRequest) (AbsenceThresholdResponse, error)
	GetAll(ctx context.Context) ([]AbsenceThresholdResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceThresholdResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceThresholdRequest) (AbsenceThresholdResponse, error)
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
	req CreateAbsenceThresholdRequest,
) (AbsenceThresholdResponse, error) {

	pct, err := decimal.NewFromString(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceThresholdResponse{}, absencethresholderrors.ErrInvalidPercentage
	}
	if req.MaxDays != nil && *req.MaxDays < req.MinDays {
		return AbsenceThresholdResponse{}, absencethresholderrors.ErrInvalidRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	threshold := &AbsenceThreshold{
		ID:                   uuid.New(),
		MinDays:              req.MinDays,
		MaxDays:              req.MaxDays,
		AdjustmentPercentage: pct,
		IsActive:             true,
	}

	if err := s.rejectOverlap(ctx, qtx, *threshold); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	if err := qtx.Create(ctx, threshold); err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	return mapToResponse(*threshold), nil
}

func (s *service) GetAll(ctx context.Context) ([]AbsenceThresholdResponse, error) {
	thresholds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AbsenceThresholdResponse, len(thresholds))
	for i, t := range thresholds {
		res[i] = mapToResponse(t)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceThresholdResponse, error) {
	threshold, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*threshold), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAbsenceThresholdRequest,
) (AbsenceThresholdResponse, error) {

	pct, err := decimal.NewFromString(req.AdjustmentPercentage)
	if err != nil {
		return AbsenceThresholdResponse{}, absencethresholderrors.ErrInvalidPercentage
	}
	if req.MaxDays != nil && *req.MaxDays < req.MinDays {
		return AbsenceThresholdResponse{}, absencethresholderrors.ErrInvalidRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceThresholdResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	threshold, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	threshold.MinDays = req.MinDays
	threshold.MaxDays = req.MaxDays
	threshold.AdjustmentPercentage = pct
	if req.IsActive != nil {
		threshold.IsActive = *req.IsActive
	}

	if threshold.IsActive {
		if err := s.rejectOverlap(ctx, qtx, *threshold); err != nil {
			return AbsenceThresholdResponse{}, err
		}
	}

	if err := qtx.Update(ctx, threshold); err != nil {
		return AbsenceThresholdResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceThresholdResponse{}, err
	}

	return mapToResponse(*threshold), nil
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

func (s *service) rejectOverlap(ctx context.Context, repo Repository, candidate AbsenceThreshold) error {
	active, err := repo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	for _, existing := range active {
		if existing.ID == candidate.ID {
			continue
		}
		if existing.Overlaps(candidate) {
			return absencethresholderrors.ErrOverlappingThreshold
		}
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absencethresholderrors.ErrThresholdNotFound
	}

	return err
}

func mapToResponse(threshold AbsenceThreshold) AbsenceThresholdResponse {
	return AbsenceThresholdResponse{
		ID:                   threshold.ID.String(),
		MinDays:              threshold.MinDays,
		MaxDays:              threshold.MaxDays,
		AdjustmentPercentage: threshold.AdjustmentPercentage.StringFixed(2),
		IsActive:             threshold.IsActive,
		CreatedAt:            threshold.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            threshold.UpdatedAt.Format(time.RFC3339),
	}
}

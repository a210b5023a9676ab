package absencethreshold

import (
	"context"
	"database/sql"

	"go-payroll/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absencethreshold_repo.go -destination=mock/absencethreshold_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, threshold *AbsenceThreshold) error
	FindAll(ctx context.Context) ([]AbsenceThreshold, error)
	FindAllActive(ctx context.Context) ([]AbsenceThreshold, error)
	FindByID(ctx context.Context, id string) (*AbsenceThreshold, error)
	Update(ctx context.Context, threshold *AbsenceThreshold) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, threshold *AbsenceThreshold) error {
	return r.db.WithContext(ctx).Create(threshold).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AbsenceThreshold, error) {
	var thresholds []AbsenceThreshold
	err := r.db.WithContext(ctx).
		Order("min_days ASC").
		Find(&thresholds).Error
	return thresholds, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]AbsenceThreshold, error) {
	var thresholds []AbsenceThreshold
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Order("min_days ASC").
		Find(&thresholds).Error
	return thresholds, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceThreshold, error) {
	var threshold AbsenceThreshold
	err := r.db.WithContext(ctx).
		First(&threshold, "id = ?", id).Error
	return &threshold, err
}

func (r *repository) Update(ctx context.Context, threshold *AbsenceThreshold) error {
	return r.db.WithContext(ctx).Save(threshold).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&AbsenceThreshold{}, "id = ?", id).Error
}

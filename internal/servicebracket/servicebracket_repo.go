package servicebracket

import (
	"context"
	"database/sql"

	"go-payroll/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=servicebracket_repo.go -destination=mock/servicebracket_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, bracket *ServiceBracket) error
	FindAll(ctx context.Context) ([]ServiceBracket, error)
	FindAllActive(ctx context.Context) ([]ServiceBracket, error)
	FindByID(ctx context.Context, id string) (*ServiceBracket, error)
	Update(ctx context.Context, bracket *ServiceBracket) error
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

func (r *repository) Create(ctx context.Context, bracket *ServiceBracket) error {
	return r.db.WithContext(ctx).Create(bracket).Error
}

func (r *repository) FindAll(ctx context.Context) ([]ServiceBracket, error) {
	var brackets []ServiceBracket
	err := r.db.WithContext(ctx).
		Order("min_years ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]ServiceBracket, error) {
	var brackets []ServiceBracket
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Order("min_years ASC").
		Find(&brackets).Error
	return brackets, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ServiceBracket, error) {
	var bracket ServiceBracket
	err := r.db.WithContext(ctx).
		First(&bracket, "id = ?", id).Error
	return &bracket, err
}

func (r *repository) Update(ctx context.Context, bracket *ServiceBracket) error {
	return r.db.WithContext(ctx).Save(bracket).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&ServiceBracket{}, "id = ?", id).Error
}

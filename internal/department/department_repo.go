package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	HasEmployees(ctx context.Context, id string) (bool, error)
	AppendIncentiveHistory(ctx context.Context, entry *IncentiveHistory) error
	FindIncentiveHistory(ctx context.Context, departmentID string) ([]IncentiveHistory, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) HasEmployees(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Where("employment_status = ?", "ACTIVE").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AppendIncentiveHistory(ctx context.Context, entry *IncentiveHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindIncentiveHistory(ctx context.Context, departmentID string) ([]IncentiveHistory, error) {
	var entries []IncentiveHistory
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("set_date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

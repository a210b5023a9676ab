package jobgrade

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobgrade_repo.go -destination=mock/jobgrade_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, grade *JobGrade) error
	FindAll(ctx context.Context) ([]JobGrade, error)
	FindByID(ctx context.Context, id string) (*JobGrade, error)
	Update(ctx context.Context, grade *JobGrade) error
	Delete(ctx context.Context, id string) error
	HasEmployees(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, grade *JobGrade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobGrade, error) {
	var grades []JobGrade
	err := r.db.WithContext(ctx).
		Order("level ASC, code ASC").
		Find(&grades).Error
	return grades, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobGrade, error) {
	var grade JobGrade
	err := r.db.WithContext(ctx).
		First(&grade, "id = ?", id).Error
	return &grade, err
}

func (r *repository) Update(ctx context.Context, grade *JobGrade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&JobGrade{}, "id = ?", id).Error
}

func (r *repository) HasEmployees(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("job_grade_id = ?", id).
		Where("employment_status = ?", "ACTIVE").
		Count(&count).Error
	return count > 0, err
}

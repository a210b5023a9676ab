package salaryrecord

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryrecord_repo.go -destination=mock/salaryrecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
	// FindCurrent returns the record with the latest effective date not after
	// asOf, or gorm.ErrRecordNotFound when none exists yet.
	FindCurrent(ctx context.Context, employeeID string, asOf string) (*SalaryRecord, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindCurrent(ctx context.Context, employeeID string, asOf string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", asOf).
		Order("effective_date DESC").
		First(&record).Error
	return &record, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&SalaryRecord{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

package absence

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Upsert inserts the record or replaces the day count when a row for the
	// same (employee, year, month) already exists.
	Upsert(ctx context.Context, record *AbsenceRecord) error
	FindByEmployeeAndPeriod(ctx context.Context, employeeID string, year, month int) (*AbsenceRecord, error)
	FindByPeriod(ctx context.Context, year, month int) ([]AbsenceRecord, error)
	FindByEmployee(ctx context.Context, employeeID string, year int) ([]AbsenceRecord, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*AbsenceRecord, error)
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

func (r *repository) Upsert(ctx context.Context, record *AbsenceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "year"},
				{Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
		}).
		Create(record).Error
}

func (r *repository) FindByEmployeeAndPeriod(
	ctx context.Context,
	employeeID string,
	year, month int,
) (*AbsenceRecord, error) {
	var record AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Where("month = ?", month).
		First(&record).Error
	return &record, err
}

func (r *repository) FindByPeriod(ctx context.Context, year, month int) ([]AbsenceRecord, error) {
	var records []AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, year int) ([]AbsenceRecord, error) {
	var records []AbsenceRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("month ASC").
		Find(&records).Error
	return records, err
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
		Delete(&AbsenceRecord{}, "id = ?", id).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*AbsenceRecord, error) {
	var record AbsenceRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

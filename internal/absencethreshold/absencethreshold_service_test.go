package absencethreshold_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payroll/internal/absencethreshold"
	absencethresholderrors "go-payroll/internal/absencethreshold/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeThresholdRepository struct {
	createFn        func(ctx context.Context, threshold *absencethreshold.AbsenceThreshold) error
	findAllActiveFn func(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error)
	findByIDFn      func(ctx context.Context, id string) (*absencethreshold.AbsenceThreshold, error)
}

func (f *fakeThresholdRepository) WithTx(tx *sql.Tx) absencethreshold.Repository {
	return f
}

func (f *fakeThresholdRepository) Create(ctx context.Context, threshold *absencethreshold.AbsenceThreshold) error {
	if f.createFn != nil {
		return f.createFn(ctx, threshold)
	}
	return nil
}

func (f *fakeThresholdRepository) FindAll(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error) {
	return nil, nil
}

func (f *fakeThresholdRepository) FindAllActive(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error) {
	if f.findAllActiveFn != nil {
		return f.findAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeThresholdRepository) FindByID(ctx context.Context, id string) (*absencethreshold.AbsenceThreshold, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeThresholdRepository) Update(ctx context.Context, threshold *absencethreshold.AbsenceThreshold) error {
	return nil
}

func (f *fakeThresholdRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func intPtr(v int) *int {
	return &v
}

func TestThresholdService_Create_AllowsNegativeAdjustment(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	repo := &fakeThresholdRepository{}
	svc := absencethreshold.NewService(db, repo)

	resp, err := svc.Create(ctx, absencethreshold.CreateAbsenceThresholdRequest{
		MinDays:              4,
		MaxDays:              intPtr(7),
		AdjustmentPercentage: "-2.5",
	})

	assert.NoError(t, err)
	assert.Equal(t, "-2.50", resp.AdjustmentPercentage)
	assert.True(t, resp.IsActive)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestThresholdService_Create_RejectsOverlap(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo := &fakeThresholdRepository{
		findAllActiveFn: func(ctx context.Context) ([]absencethreshold.AbsenceThreshold, error) {
			return []absencethreshold.AbsenceThreshold{{
				ID:                   uuid.New(),
				MinDays:              8,
				MaxDays:              nil,
				AdjustmentPercentage: decimal.RequireFromString("-5"),
				IsActive:             true,
			}}, nil
		},
	}
	svc := absencethreshold.NewService(db, repo)

	_, err = svc.Create(ctx, absencethreshold.CreateAbsenceThresholdRequest{
		MinDays:              5,
		MaxDays:              intPtr(10),
		AdjustmentPercentage: "-2",
	})

	assert.ErrorIs(t, err, absencethresholderrors.ErrOverlappingThreshold)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestThresholdService_Create_InvalidRange(t *testing.T) {
	ctx := context.Background()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	svc := absencethreshold.NewService(db, &fakeThresholdRepository{})

	_, err = svc.Create(ctx, absencethreshold.CreateAbsenceThresholdRequest{
		MinDays:              10,
		MaxDays:              intPtr(3),
		AdjustmentPercentage: "-2",
	})

	assert.ErrorIs(t, err, absencethresholderrors.ErrInvalidRange)
}

func TestAbsenceThreshold_Contains(t *testing.T) {
	open := absencethreshold.AbsenceThreshold{MinDays: 8}
	assert.True(t, open.Contains(8))
	assert.True(t, open.Contains(31))
	assert.False(t, open.Contains(7))

	bounded := absencethreshold.AbsenceThreshold{MinDays: 0, MaxDays: intPtr(3)}
	assert.True(t, bounded.Contains(0))
	assert.True(t, bounded.Contains(3))
	assert.False(t, bounded.Contains(4))
}

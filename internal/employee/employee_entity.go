package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "ACTIVE"
	StatusDeleted = "DELETED"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index"`
	JobGradeID     *uuid.UUID `gorm:"type:uuid;index"`
	FullName       string     `gorm:"size:255;not null"`
	Email          string     `gorm:"uniqueIndex"`
	Phone          string     `gorm:"size:30"`
	EmployeeNumber string     `gorm:"size:30;uniqueIndex"`
	HireDate       time.Time  `gorm:"type:date;not null"`
	// Soft delete is a status flip, never a row removal. Payroll iteration
	// must only ever see ACTIVE rows.
	EmploymentStatus string `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID"`
	JobGrade   *JobGradeRef   `gorm:"foreignKey:JobGradeID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}

type JobGradeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (JobGradeRef) TableName() string {
	return "job_grades"
}

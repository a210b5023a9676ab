package jobgrade

import (
	"time"

	"github.com/google/uuid"
)

type JobGrade struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"size:50;not null;uniqueIndex:idx_job_grades_code"`
	Name      string    `gorm:"size:255;not null"`
	Level     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (JobGrade) TableName() string {
	return "job_grades"
}

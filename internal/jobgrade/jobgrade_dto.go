package jobgrade

type CreateJobGradeRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"required,min=1"`
}

type UpdateJobGradeRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"required,min=1"`
}

type JobGradeResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetIncentiveRequest struct {
	IncentivePercentage string `json:"incentive_percentage" binding:"required"`
}

type DepartmentResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	IncentivePercentage string `json:"incentive_percentage,omitempty"`
	IncentiveSetDate    string `json:"incentive_set_date,omitempty"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

type IncentiveHistoryResponse struct {
	ID                  string `json:"id"`
	DepartmentID        string `json:"department_id"`
	IncentivePercentage string `json:"incentive_percentage"`
	SetDate             string `json:"set_date"`
}

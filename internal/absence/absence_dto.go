package absence

type RecordAbsenceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=2000,max=2100"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Days       int    `json:"days" binding:"min=0,max=31"`
}

type AbsenceRecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Days       int    `json:"days"`
	UpdatedAt  string `json:"updated_at"`
}

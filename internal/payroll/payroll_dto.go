package payroll

type GenerateRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// ComputationResponse is one calculated line, either previewed or persisted.
type ComputationResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeNumber string `json:"employee_number"`
	DepartmentName string `json:"department_name,omitempty"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`

	BaseSalary     string `json:"base_salary"`
	YearsOfService int    `json:"years_of_service"`

	IncentivePercentage string `json:"incentive_percentage"`
	IncentiveAmount     string `json:"incentive_amount"`

	BracketPercentage string `json:"bracket_percentage"`
	BracketAmount     string `json:"bracket_amount"`

	AbsenceDays          int    `json:"absence_days"`
	AdjustmentPercentage string `json:"adjustment_percentage"`
	AdjustmentAmount     string `json:"adjustment_amount"`

	GrossPay string `json:"gross_pay"`
}

// ComputationFailure describes why one employee was skipped in a batch run.
type ComputationFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type BatchPreviewResponse struct {
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Total    int                   `json:"total"`
	Computed int                   `json:"computed"`
	Results  []ComputationResponse `json:"results"`
	Failures []ComputationFailure  `json:"failures"`
}

type GenerateResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Success   bool                  `json:"success"`
	Results   []ComputationResponse `json:"results"`
	Failures  []ComputationFailure  `json:"failures"`
}

type SnapshotResponse struct {
	ID string `json:"id"`
	ComputationResponse
	GeneratedBy string `json:"generated_by,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	EmployeeNumber string `json:"employee_number"`
	DepartmentID   string `json:"department_id" binding:"required,uuid"`
	JobGradeID     string `json:"job_grade_id" binding:"required,uuid"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	EmployeeNumber string `json:"employee_number" binding:"required"`
	DepartmentID   string `json:"department_id" binding:"required,uuid"`
	JobGradeID     string `json:"job_grade_id" binding:"required,uuid"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeJobGradeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID               string                      `json:"id"`
	FullName         string                      `json:"full_name"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	EmployeeNumber   string                      `json:"employee_number"`
	DepartmentID     string                      `json:"department_id,omitempty"`
	JobGradeID       string                      `json:"job_grade_id,omitempty"`
	HireDate         string                      `json:"hire_date"`
	EmploymentStatus string                      `json:"employment_status"`
	Department       *EmployeeDepartmentResponse `json:"department,omitempty"`
	JobGrade         *EmployeeJobGradeResponse   `json:"job_grade,omitempty"`
}

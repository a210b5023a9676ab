package servicebracket

type CreateServiceBracketRequest struct {
	MinYears   int    `json:"min_years" binding:"min=0"`
	MaxYears   *int   `json:"max_years"`
	Percentage string `json:"percentage" binding:"required"`
}

type UpdateServiceBracketRequest struct {
	MinYears   int    `json:"min_years" binding:"min=0"`
	MaxYears   *int   `json:"max_years"`
	Percentage string `json:"percentage" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

type ServiceBracketResponse struct {
	ID         string `json:"id"`
	MinYears   int    `json:"min_years"`
	MaxYears   *int   `json:"max_years"`
	Percentage string `json:"percentage"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

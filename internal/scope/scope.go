package scope

import "gorm.io/gorm"

// ActiveEmployees filters out soft-deleted employees. Every query that
// enumerates "all employees" for payroll purposes must apply this scope.
func ActiveEmployees(db *gorm.DB) *gorm.DB {
	return db.Where("employment_status = ?", "ACTIVE")
}

// Active filters master-data rows carrying an is_active flag
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

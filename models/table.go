package models

// Table numbers are unique within a branch, not across the whole system.
type Table struct {
	Base
	Number   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tables_branch_number" json:"number"`
	Capacity int    `gorm:"not null" json:"capacity"`
	BranchID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_tables_branch_number" json:"branch_id"`
}

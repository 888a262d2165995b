package entity

import "time"

// ProductCategory agrupa productos de una empresa.
type ProductCategory struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

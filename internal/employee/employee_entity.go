package employee

import "time"

// Employee is the persisted record. The same struct is the gorm model for
// the SQL backends and the JSON document for the redis backend.
type Employee struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

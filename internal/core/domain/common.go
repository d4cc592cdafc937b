package domain

import "time"

// DocStatus is the lifecycle state of a document-style record.
type DocStatus int

const (
	Draft     DocStatus = 0
	Submitted DocStatus = 1
	Cancelled DocStatus = 2
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

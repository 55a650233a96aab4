package entity

import "time"

// SiteDocumentRowID is the primary key of the only row in site_documents.
const SiteDocumentRowID = 1

// SiteDocumentRecord stores the serialized site document in Postgres.
type SiteDocumentRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false"`
	Content   string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SiteDocumentRecord) TableName() string {
	return "site_documents"
}

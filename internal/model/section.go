package model

import "time"

// Section groups products under a browsable category. The slug is derived
// from the name and is the public identifier used in URLs.
type Section struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Slug        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time

	Products []Product `gorm:"foreignKey:SectionID"`
}

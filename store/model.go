package store

import (
	"time"

	_ "github.com/artie-nazarov/CULgebra/env"
	"gorm.io/gorm"
)

// Record is one persisted matrix. The payload is the codec frame (already
// zstd-compressed); shape and element kind are duplicated into queryable
// columns so listings never have to decode payloads.
type Record struct {
	ID        uint64    `gorm:"primarykey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	DType     string    `gorm:"not null"`
	Rank      int       `gorm:"not null"`
	DimX      int       `gorm:"not null"`
	DimY      int       `gorm:"not null"`
	DimZ      int       `gorm:"not null"`
	Quantized bool      `gorm:"not null"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index;not null"`
}

func (m *Record) BeforeCreate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *Record) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a schemaless document in the relational database, the
// payload lives in a JSONB column
type Document struct {
	ID         *uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primary_key"`
	Collection string     `gorm:"type:varchar(64);index;not null"`
	Seq        int64      `gorm:"autoIncrement;not null;index"`
	Data       string     `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time  `gorm:"not null;default:now();index"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()"`
}

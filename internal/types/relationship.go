package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RelMentorship    = "mentorship"
	RelCollaboration = "collaboration"
	RelRecognition   = "recognition"
	RelSupport       = "support"
	RelReporting     = "reporting"
)

// Relationship is a directed edge of the collaboration graph. The composite
// unique index keeps one edge per (owner, source, target, type); ingestion
// keeps the strongest when the builder emits duplicates.
type Relationship struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;column:owner_id;uniqueIndex:uq_relationship_edge" json:"-"`
	SourceID  uuid.UUID `gorm:"type:uuid;not null;column:source_id;uniqueIndex:uq_relationship_edge" json:"source_id"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;column:target_id;uniqueIndex:uq_relationship_edge" json:"target_id"`
	Type      string    `gorm:"not null;column:type;uniqueIndex:uq_relationship_edge" json:"type"`
	Strength  int       `gorm:"not null;column:strength" json:"strength"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Relationship) TableName() string {
	return "relationship"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type ParseJobStatus string

const (
	StatusQueued     ParseJobStatus = "queued"
	StatusProcessing ParseJobStatus = "processing"
	StatusCompleted  ParseJobStatus = "completed"
	StatusFailed     ParseJobStatus = "failed"
)

type ParseJob struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID   uuid.UUID      `gorm:"type:uuid;not null" json:"document_id"`
	Enrich       bool           `gorm:"not null;default:true" json:"enrich"`
	Status       ParseJobStatus `gorm:"not null;default:'queued'" json:"status"`
	Result       *string        `gorm:"type:jsonb" json:"result,omitempty"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document ResumeDocument `gorm:"foreignKey:DocumentID" json:"-"`
}

func (ParseJob) TableName() string {
	return "parse_jobs"
}

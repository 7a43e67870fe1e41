package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeDocument records an upload sitting in scratch storage. The file
// behind it is removed once a parse job has consumed it.
type ResumeDocument struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text;not null;uniqueIndex" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:varchar(32);not null" json:"file_type"`
	FilePath         string    `gorm:"type:text;not null" json:"-"`
	SizeBytes        int64     `gorm:"not null;default:0" json:"size_bytes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ResumeDocument) TableName() string {
	return "resume_documents"
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/repositories"
)

type ParseJobService interface {
	RunJob(ctx context.Context, jobID uuid.UUID) error
}

type parseJobService struct {
	jobRepo        repositories.ParseJobRepository
	docRepo        repositories.DocumentRepository
	storageService StorageService
	processor      ResumeProcessor
}

func NewParseJobService(
	jobRepo repositories.ParseJobRepository,
	docRepo repositories.DocumentRepository,
	storageService StorageService,
	processor ResumeProcessor,
) ParseJobService {
	return &parseJobService{
		jobRepo:        jobRepo,
		docRepo:        docRepo,
		storageService: storageService,
		processor:      processor,
	}
}

// RunJob processes the uploaded document behind a queued job and stores
// the record as JSON. Once the document is loaded its uploaded file is
// removed whatever the outcome.
func (s *parseJobService) RunJob(ctx context.Context, jobID uuid.UUID) error {
	claimed, err := s.jobRepo.Claim(jobID)
	if err != nil {
		return fmt.Errorf("failed to claim job: %w", err)
	}
	if !claimed {
		log.Printf("⚠️  Parse job %s is not queued, skipping\n", jobID)
		return nil
	}

	log.Printf("🔄 Starting parse job %s\n", jobID)

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		s.fail(jobID, err.Error())
		return fmt.Errorf("failed to get parse job: %w", err)
	}

	doc, err := s.docRepo.FindByID(job.DocumentID)
	if err != nil {
		s.fail(jobID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}
	defer s.discard(doc)

	// Uploads are stored under generated names; record the one the client sent.
	record, err := s.processor.ProcessFile(ctx, doc.FilePath, ProcessOptions{
		Enrich:     job.Enrich,
		SourceFile: doc.OriginalFileName,
	})
	if err != nil {
		s.fail(jobID, fmt.Sprintf("Failed to process resume: %v", err))
		return fmt.Errorf("failed to process resume: %w", err)
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		s.fail(jobID, fmt.Sprintf("Failed to encode result: %v", err))
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := s.jobRepo.UpdateResult(jobID, string(encoded)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Parse job %s completed\n", jobID)
	return nil
}

func (s *parseJobService) fail(jobID uuid.UUID, msg string) {
	if err := s.jobRepo.UpdateError(jobID, msg); err != nil {
		log.Printf("⚠️  Failed to record error for job %s: %v\n", jobID, err)
	}
}

func (s *parseJobService) discard(doc *models.ResumeDocument) {
	if err := s.storageService.DeleteFile(doc.Filename); err != nil {
		log.Printf("⚠️  Failed to remove uploaded file %s: %v\n", doc.Filename, err)
	}
}

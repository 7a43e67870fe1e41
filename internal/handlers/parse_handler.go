package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/repositories"
	"alfredoptarigan/resume-extractor/internal/services"
)

type ParseHandler struct {
	jobRepo   repositories.ParseJobRepository
	docRepo   repositories.DocumentRepository
	worker    services.Worker
	processor services.ResumeProcessor
}

func NewParseHandler(
	jobRepo repositories.ParseJobRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
	processor services.ResumeProcessor,
) *ParseHandler {
	return &ParseHandler{
		jobRepo:   jobRepo,
		docRepo:   docRepo,
		worker:    worker,
		processor: processor,
	}
}

// HandleParse handles POST /parse
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	var req models.ParseRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up resume document",
		})
	}

	job := &models.ParseJob{
		ID:         uuid.New(),
		DocumentID: docID,
		Enrich:     enrichRequested(req.Enrich),
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create parse job",
		})
	}

	h.worker.EnqueueJob(job.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ParseResponse{
		ID:     job.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleParseText handles POST /parse/text and answers with the record.
func (h *ParseHandler) HandleParseText(c *fiber.Ctx) error {
	var req models.ParseTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Markdown) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "markdown is required",
		})
	}

	record, err := h.processor.ProcessText(c.UserContext(), req.Markdown, req.SourceFile, services.ProcessOptions{
		Enrich: enrichRequested(req.Enrich),
	})
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":   "Extracted resume failed validation",
				"details": validationErr.Errors,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(record)
}

// Enrichment is on unless the client opts out.
func enrichRequested(flag *bool) bool {
	return flag == nil || *flag
}

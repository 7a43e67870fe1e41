package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"alfredoptarigan/resume-extractor/internal/metrics"
	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/parser"
)

var ErrResumeNotFound = errors.New("resume file not found")

const (
	inputPDF      = "pdf"
	inputMarkdown = "markdown"
	inputText     = "text"
)

var (
	pdfMagic     = []byte("%PDF-")
	slugStripper = regexp.MustCompile(`[^a-z0-9\-]+`)
)

type ProcessOptions struct {
	Enrich bool
	// SourceFile overrides the file name recorded as the record's source.
	SourceFile string
	// SaveMarkdownDir, when set, receives the markdown converted from PDF inputs.
	SaveMarkdownDir string
}

type ResumeProcessor interface {
	ProcessFile(ctx context.Context, path string, opts ProcessOptions) (*models.ResumeRecord, error)
	ProcessText(ctx context.Context, markdown, sourceFile string, opts ProcessOptions) (*models.ResumeRecord, error)
}

type resumeProcessor struct {
	pdfParser PDFParserService
	enricher  EnrichmentOrchestrator
}

func NewResumeProcessor(pdfParser PDFParserService, enricher EnrichmentOrchestrator) ResumeProcessor {
	return &resumeProcessor{
		pdfParser: pdfParser,
		enricher:  enricher,
	}
}

// ProcessFile reads a PDF or markdown résumé from disk and runs the
// pipeline over it. A missing file wraps ErrResumeNotFound.
func (p *resumeProcessor) ProcessFile(ctx context.Context, path string, opts ProcessOptions) (*models.ResumeRecord, error) {
	started := time.Now()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			metrics.ObserveFailure("not_found")
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, path)
		}
		metrics.ObserveFailure("unreadable")
		return nil, fmt.Errorf("failed to stat resume: %w", err)
	}

	isPDF, err := isPDFFile(path)
	if err != nil {
		metrics.ObserveFailure("unreadable")
		return nil, err
	}

	var markdown string
	input := inputMarkdown
	if isPDF {
		input = inputPDF
		log.Printf("📄 Converting PDF %s to markdown...\n", filepath.Base(path))
		content, err := p.pdfParser.ExtractMarkdown(path)
		if err != nil {
			metrics.ObserveFailure("unreadable")
			return nil, fmt.Errorf("failed to convert PDF: %w", err)
		}
		markdown = content.Markdown

		if opts.SaveMarkdownDir != "" {
			if err := saveMarkdown(opts.SaveMarkdownDir, path, markdown); err != nil {
				log.Printf("⚠️  Failed to save converted markdown: %v\n", err)
			}
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			metrics.ObserveFailure("unreadable")
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		markdown = string(data)
	}

	sourceFile := opts.SourceFile
	if sourceFile == "" {
		sourceFile = filepath.Base(path)
	}

	record, err := p.run(ctx, markdown, sourceFile, opts)
	if err != nil {
		return nil, err
	}

	metrics.ObserveProcessed(input, started)
	return record, nil
}

// ProcessText runs the pipeline over raw markdown.
func (p *resumeProcessor) ProcessText(ctx context.Context, markdown, sourceFile string, opts ProcessOptions) (*models.ResumeRecord, error) {
	started := time.Now()

	record, err := p.run(ctx, markdown, sourceFile, opts)
	if err != nil {
		return nil, err
	}

	metrics.ObserveProcessed(inputText, started)
	return record, nil
}

func (p *resumeProcessor) run(ctx context.Context, markdown, sourceFile string, opts ProcessOptions) (*models.ResumeRecord, error) {
	cleaned := parser.Clean(markdown)

	draft, err := parser.BuildDraft(cleaned, sourceFile)
	if err != nil {
		metrics.ObserveFailure("invalid_draft")
		return nil, err
	}

	if !opts.Enrich || p.enricher == nil {
		return draft, nil
	}

	record, state := p.enricher.Enrich(ctx, cleaned, draft)
	log.Printf("🔄 Enrichment %s for %q\n", state, sourceFile)
	return record, nil
}

func isPDFFile(path string) (bool, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open resume: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read resume: %w", err)
	}
	return bytes.Equal(header[:n], pdfMagic), nil
}

// Slug turns a file name into a lowercase, dash separated identifier
// without its extension.
func Slug(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(strings.ToLower(name), " ", "-")
	return slugStripper.ReplaceAllString(name, "")
}

func saveMarkdown(dir, sourcePath, markdown string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create markdown directory: %w", err)
	}

	target := filepath.Join(dir, Slug(sourcePath)+".md")
	if err := os.WriteFile(target, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}

	log.Printf("💾 Saved converted markdown to %s\n", target)
	return nil
}

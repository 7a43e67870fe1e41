package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-extractor/internal/config"
	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/services"
)

var resumeExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".txt":      true,
}

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var markdownDir string

//nolint:gochecknoglobals // Cobra boilerplate
var enrich bool

//nolint:gochecknoglobals // Cobra boilerplate
var concurrency int

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "process-resumes <file-or-dir>...",
	Short: "Extract structured records from resume files",
	Long: `Run the extraction pipeline over PDF and markdown resumes.

Directories are scanned (not recursively) for .pdf, .md, .markdown and .txt files.
Each record is written to <output-dir>/<slug>.json, or printed to stdout when
no output directory is given.

Example:
  process-resumes ./resumes --output-dir ./out --markdown-dir ./out/md
  process-resumes jane.pdf --enrich=false`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runProcess,
	SilenceUsage: true,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the JSON records (default stdout)")
	rootCmd.Flags().StringVar(&markdownDir, "markdown-dir", "", "Directory for the markdown converted from PDF inputs")
	rootCmd.Flags().BoolVar(&enrich, "enrich", true, "Run the generative enrichment step when GEMINI_API_KEY is set")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 3, "Number of resumes processed in parallel")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files found in %s", strings.Join(args, ", "))
	}

	processor, err := newProcessor(ctx)
	if err != nil {
		return err
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	log.Printf("🚀 Processing %d resumes with %d workers\n", len(files), concurrency)

	var (
		mu     sync.Mutex
		failed []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))

	for _, file := range files {
		g.Go(func() error {
			record, err := processor.ProcessFile(gctx, file, services.ProcessOptions{
				Enrich:          enrich,
				SaveMarkdownDir: markdownDir,
			})
			if err == nil {
				err = writeRecord(cmd, file, record)
			}
			if err != nil {
				log.Printf("❌ %s: %v\n", file, err)
				mu.Lock()
				failed = append(failed, file)
				mu.Unlock()
				return nil
			}

			log.Printf("✅ %s\n", file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("📊 Processed %d resumes, %d failed\n", len(files)-len(failed), len(failed))
	if len(failed) > 0 {
		return fmt.Errorf("failed to process %d resumes", len(failed))
	}

	return nil
}

func newProcessor(ctx context.Context) (services.ResumeProcessor, error) {
	cfg := config.Load()

	var normalizer services.Normalizer
	if enrich && cfg.EnrichmentAvailable() {
		geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
		}
		normalizer = services.NewGeminiNormalizer(geminiService, cfg.Gemini.Temperature)
		log.Printf("🤖 Enrichment enabled with model %s\n", cfg.Gemini.Model)
	}

	enricher := services.NewEnrichmentOrchestrator(normalizer, services.EnrichmentOptions{
		SourceCharLimit: cfg.Enrichment.SourceCharLimit,
		Timeout:         cfg.Enrichment.Timeout,
	})

	return services.NewResumeProcessor(services.NewPDFParserService(), enricher), nil
}

// collectFiles expands directories into their resume files, keeping
// explicit file arguments as given.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !resumeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				continue
			}
			files = append(files, filepath.Join(arg, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func writeRecord(cmd *cobra.Command, file string, record *models.ResumeRecord) error {
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if outputDir == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return err
	}

	target := filepath.Join(outputDir, services.Slug(file)+".json")
	if err := os.WriteFile(target, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

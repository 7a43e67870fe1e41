package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-extractor/internal/models"
	"alfredoptarigan/resume-extractor/internal/repositories"
)

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.ParseJob
}

func newFakeJobRepo(jobs ...*models.ParseJob) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[uuid.UUID]*models.ParseJob{}}
	for _, job := range jobs {
		repo.jobs[job.ID] = job
	}
	return repo
}

func (r *fakeJobRepo) Create(job *models.ParseJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(id uuid.UUID) (*models.ParseJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("parse job %s: %w", id, repositories.ErrNotFound)
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Claim(id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.Status != models.StatusQueued {
		return false, nil
	}
	job.Status = models.StatusProcessing
	return true, nil
}

func (r *fakeJobRepo) UpdateResult(id uuid.UUID, result string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := r.jobs[id]
	job.Status = models.StatusCompleted
	job.Result = &result
	return nil
}

func (r *fakeJobRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := r.jobs[id]
	job.Status = models.StatusFailed
	job.ErrorMessage = &errorMsg
	return nil
}

func (r *fakeJobRepo) FindPendingJobs(limit int) ([]models.ParseJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []models.ParseJob
	for _, job := range r.jobs {
		if job.Status == models.StatusQueued && len(pending) < limit {
			pending = append(pending, *job)
		}
	}
	return pending, nil
}

func (r *fakeJobRepo) status(id uuid.UUID) models.ParseJobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobs[id].Status
}

type fakeDocRepo struct {
	docs map[uuid.UUID]*models.ResumeDocument
}

func (r *fakeDocRepo) Create(doc *models.ResumeDocument) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocRepo) FindByID(id uuid.UUID) (*models.ResumeDocument, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, repositories.ErrNotFound)
	}
	return doc, nil
}

type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (s *fakeStorage) SaveFile(file *multipart.FileHeader, fileType string) (*StoredFile, error) {
	return nil, errors.New("not supported")
}

func (s *fakeStorage) GetFilePath(filename string) string { return filename }

func (s *fakeStorage) DeleteFile(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, filename)
	return nil
}

func (s *fakeStorage) EnsureUploadDir() error { return nil }

func (s *fakeStorage) SweepOlderThan(age time.Duration) (int, error) { return 0, nil }

type fakeProcessor struct {
	record  *models.ResumeRecord
	err     error
	gotPath string
	gotOpts ProcessOptions
}

func (p *fakeProcessor) ProcessFile(ctx context.Context, path string, opts ProcessOptions) (*models.ResumeRecord, error) {
	p.gotPath = path
	p.gotOpts = opts
	if p.err != nil {
		return nil, p.err
	}
	record := p.record.Clone()
	if opts.SourceFile != "" {
		record.SourceFile = models.StringPtr(opts.SourceFile)
	}
	return record, nil
}

func (p *fakeProcessor) ProcessText(ctx context.Context, markdown, sourceFile string, opts ProcessOptions) (*models.ResumeRecord, error) {
	return nil, errors.New("not supported")
}

type jobFixture struct {
	jobs      *fakeJobRepo
	docs      *fakeDocRepo
	storage   *fakeStorage
	processor *fakeProcessor
	job       *models.ParseJob
	doc       *models.ResumeDocument
}

func newJobFixture() *jobFixture {
	doc := &models.ResumeDocument{
		ID:               uuid.New(),
		Filename:         "resume_1234.pdf",
		OriginalFileName: "Jane Doe.pdf",
		FilePath:         "/uploads/resume_1234.pdf",
	}
	job := &models.ParseJob{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		Enrich:     true,
		Status:     models.StatusQueued,
	}

	record := models.NewResumeRecord()
	record.Name = models.StringPtr("Jane Doe")
	record.SourceFile = models.StringPtr("resume_1234.pdf")

	return &jobFixture{
		jobs:      newFakeJobRepo(job),
		docs:      &fakeDocRepo{docs: map[uuid.UUID]*models.ResumeDocument{doc.ID: doc}},
		storage:   &fakeStorage{},
		processor: &fakeProcessor{record: record},
		job:       job,
		doc:       doc,
	}
}

func (f *jobFixture) service() ParseJobService {
	return NewParseJobService(f.jobs, f.docs, f.storage, f.processor)
}

func TestRunJobCompletes(t *testing.T) {
	f := newJobFixture()

	require.NoError(t, f.service().RunJob(context.Background(), f.job.ID))

	job, err := f.jobs.FindByID(f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, job.Status)
	require.NotNil(t, job.Result)

	var record models.ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(*job.Result), &record))
	assert.Equal(t, "Jane Doe", *record.Name)
	assert.Equal(t, "Jane Doe.pdf", *record.SourceFile)
	assert.Equal(t, "Jane Doe.pdf", f.processor.gotOpts.SourceFile)

	assert.Equal(t, f.doc.FilePath, f.processor.gotPath)
	assert.True(t, f.processor.gotOpts.Enrich)
	assert.Equal(t, []string{f.doc.Filename}, f.storage.deleted)
}

func TestRunJobProcessingFailure(t *testing.T) {
	f := newJobFixture()
	f.processor.err = errors.New("corrupt pdf")

	err := f.service().RunJob(context.Background(), f.job.ID)
	require.Error(t, err)

	job, err := f.jobs.FindByID(f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "corrupt pdf")
	assert.Equal(t, []string{f.doc.Filename}, f.storage.deleted)
}

func TestRunJobMissingDocument(t *testing.T) {
	f := newJobFixture()
	delete(f.docs.docs, f.doc.ID)

	err := f.service().RunJob(context.Background(), f.job.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	assert.Equal(t, models.StatusFailed, f.jobs.status(f.job.ID))
	assert.Empty(t, f.storage.deleted)
}

func TestRunJobSkipsClaimedJob(t *testing.T) {
	f := newJobFixture()
	f.job.Status = models.StatusProcessing

	require.NoError(t, f.service().RunJob(context.Background(), f.job.ID))
	assert.Empty(t, f.processor.gotPath)
	assert.Empty(t, f.storage.deleted)
}

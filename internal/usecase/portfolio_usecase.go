package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"printfolio/internal/model"
	"printfolio/internal/response"
	"printfolio/internal/service"
	"printfolio/internal/util"

	"github.com/pgvector/pgvector-go"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in the run's current state")
	ErrUnknownTemplate   = errors.New("unknown template id")
	ErrNotDeployable     = errors.New("run has no generated portfolio yet")
	ErrNoSuggestion      = errors.New("template suggestion unavailable")
)

type RunRepo interface {
	Create(run *model.PortfolioRun) error
	Update(run *model.PortfolioRun) error
	FindByID(id string) (*model.PortfolioRun, error)
	List(page, pageSize int) ([]model.PortfolioRun, *response.Pagination, error)
}

type TemplateEmbeddingRepo interface {
	Upsert(e *model.TemplateEmbedding) error
	NearestTemplate(embedding pgvector.Vector) (string, error)
}

type PortfolioUsecase struct {
	runs       RunRepo
	embeddings TemplateEmbeddingRepo
	gemini     service.GeminiServiceInterface
	extractor  service.ExtractionServiceInterface
	generator  service.GenerationServiceInterface
}

func NewPortfolioUsecase(runs RunRepo, embeddings TemplateEmbeddingRepo, gemini service.GeminiServiceInterface, extractor service.ExtractionServiceInterface, generator service.GenerationServiceInterface) *PortfolioUsecase {
	return &PortfolioUsecase{
		runs:       runs,
		embeddings: embeddings,
		gemini:     gemini,
		extractor:  extractor,
		generator:  generator,
	}
}

// Upload runs the first two pipeline stages: file-to-text extraction, then
// structured extraction. An extraction failure is fatal to this attempt and
// is recorded on the run; the AI stage is never reached in that case.
func (uc *PortfolioUsecase) Upload(ctx context.Context, filename, path string) (*model.PortfolioRun, error) {
	run := &model.PortfolioRun{
		Status:   model.RunStatusUploading,
		Filename: filename,
	}

	text, err := util.ExtractText(path, filename)
	if err != nil {
		run.Status = model.RunStatusFailed
		run.Error = err.Error()
		if createErr := uc.runs.Create(run); createErr != nil {
			log.Printf("could not persist failed run: %v", createErr)
		}
		return run, err
	}
	run.CVText = text

	result := uc.extractor.Extract(ctx, text)
	data, err := json.Marshal(result.Record)
	if err != nil {
		return nil, err
	}
	run.CVData = string(data)
	run.CVSource = result.Source
	run.Error = result.Reason
	run.Status = model.RunStatusReviewing

	if err := uc.runs.Create(run); err != nil {
		return nil, err
	}
	return run, nil
}

func (uc *PortfolioUsecase) Get(id string) (*model.PortfolioRun, error) {
	return uc.runs.FindByID(id)
}

func (uc *PortfolioUsecase) List(page, pageSize int) ([]model.PortfolioRun, *response.Pagination, error) {
	return uc.runs.List(page, pageSize)
}

// SaveCV persists the review step's edits. The record is normalized first,
// which clamps skill levels to [1,5] and fills missing item ids.
func (uc *PortfolioUsecase) SaveCV(id string, record model.CVRecord) (*model.PortfolioRun, error) {
	run, err := uc.runs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if run.Status != model.RunStatusReviewing && run.Status != model.RunStatusTemplateSelected {
		return nil, ErrInvalidTransition
	}

	record.Normalize()
	if err := record.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	run.CVData = string(data)
	if err := uc.runs.Update(run); err != nil {
		return nil, err
	}
	return run, nil
}

func (uc *PortfolioUsecase) SelectTemplate(id, templateID string) (*model.PortfolioRun, error) {
	run, err := uc.runs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if run.Status != model.RunStatusReviewing && run.Status != model.RunStatusTemplateSelected {
		return nil, ErrInvalidTransition
	}
	if _, ok := model.TemplateByID(templateID); !ok {
		return nil, ErrUnknownTemplate
	}
	run.TemplateID = templateID
	run.Status = model.RunStatusTemplateSelected
	if err := uc.runs.Update(run); err != nil {
		return nil, err
	}
	return run, nil
}

// Generate runs the final AI stage. The generation service never fails, so
// the run always reaches completed; HTMLSource records whether the document
// came from the model or the fallback.
func (uc *PortfolioUsecase) Generate(ctx context.Context, id string) (*model.PortfolioRun, error) {
	run, err := uc.runs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if run.Status != model.RunStatusTemplateSelected {
		return nil, ErrInvalidTransition
	}
	template, ok := model.TemplateByID(run.TemplateID)
	if !ok {
		return nil, ErrUnknownTemplate
	}
	record, err := uc.record(run)
	if err != nil {
		return nil, err
	}

	run.Status = model.RunStatusGenerating
	if err := uc.runs.Update(run); err != nil {
		return nil, err
	}

	result := uc.generator.Generate(ctx, record, template)
	run.HTML = result.HTML
	run.HTMLSource = result.Source
	run.Error = result.Reason
	run.Status = model.RunStatusCompleted
	if err := uc.runs.Update(run); err != nil {
		return nil, err
	}
	return run, nil
}

// Deploy fabricates the shareable URL. Hosting is simulated: nothing is
// provisioned behind the returned address.
func (uc *PortfolioUsecase) Deploy(id string) (*model.PortfolioRun, error) {
	run, err := uc.runs.FindByID(id)
	if err != nil {
		return nil, err
	}
	if run.Status != model.RunStatusCompleted {
		return nil, ErrNotDeployable
	}
	record, err := uc.record(run)
	if err != nil {
		return nil, err
	}
	run.DeployURL = DeployURL(record.PersonalInfo.Name)
	if err := uc.runs.Update(run); err != nil {
		return nil, err
	}
	return run, nil
}

// ArtifactFilename names the downloadable file after the record's subject.
func (uc *PortfolioUsecase) ArtifactFilename(run *model.PortfolioRun) (string, error) {
	record, err := uc.record(run)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("portfolio-%s.html", slugify(record.PersonalInfo.Name)), nil
}

// SuggestTemplate embeds the record's bio and skills and returns the nearest
// template from the seeded catalog embeddings.
func (uc *PortfolioUsecase) SuggestTemplate(ctx context.Context, id string) (string, error) {
	if uc.gemini == nil || uc.embeddings == nil {
		return "", ErrNoSuggestion
	}
	run, err := uc.runs.FindByID(id)
	if err != nil {
		return "", err
	}
	record, err := uc.record(run)
	if err != nil {
		return "", err
	}

	var parts []string
	if record.PersonalInfo.Bio != "" {
		parts = append(parts, record.PersonalInfo.Bio)
	}
	for _, s := range record.Skills {
		parts = append(parts, s.Name)
	}
	if len(parts) == 0 {
		return "", ErrNoSuggestion
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, strings.Join(parts, ", "))
	if err != nil {
		return "", err
	}
	return uc.embeddings.NearestTemplate(pgvector.NewVector(embedding))
}

// SeedTemplateEmbeddings embeds every catalog descriptor so suggestions can
// be served. Idempotent; meant to be triggered once after deploy.
func (uc *PortfolioUsecase) SeedTemplateEmbeddings(ctx context.Context) error {
	if uc.gemini == nil || uc.embeddings == nil {
		return ErrNoSuggestion
	}
	for _, t := range model.Templates() {
		text := fmt.Sprintf("%s. %s (%s)", t.Name, t.Description, t.Category)
		embedding, err := uc.gemini.GenerateEmbedding(ctx, text)
		if err != nil {
			return err
		}
		if err := uc.embeddings.Upsert(&model.TemplateEmbedding{
			ID:        t.ID,
			Embedding: pgvector.NewVector(embedding),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *PortfolioUsecase) record(run *model.PortfolioRun) (model.CVRecord, error) {
	var record model.CVRecord
	if err := json.Unmarshal([]byte(run.CVData), &record); err != nil {
		return model.CVRecord{}, fmt.Errorf("run %s holds corrupt CV data: %w", run.ID, err)
	}
	return record, nil
}

var whitespace = regexp.MustCompile(`\s+`)

func slugify(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// DeployURL fabricates https://<name>-<rand6>.printfolio.app.
func DeployURL(name string) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return fmt.Sprintf("https://%s-%s.printfolio.app", slugify(name), string(suffix))
}

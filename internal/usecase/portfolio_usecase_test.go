package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"printfolio/internal/model"
	"printfolio/internal/response"
	"printfolio/internal/service"
	"printfolio/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRunRepo struct {
	runs map[uuid.UUID]*model.PortfolioRun
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: map[uuid.UUID]*model.PortfolioRun{}}
}

func (r *fakeRunRepo) Create(run *model.PortfolioRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	stored := *run
	r.runs[run.ID] = &stored
	return nil
}

func (r *fakeRunRepo) Update(run *model.PortfolioRun) error {
	if _, ok := r.runs[run.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *run
	r.runs[run.ID] = &stored
	return nil
}

func (r *fakeRunRepo) FindByID(id string) (*model.PortfolioRun, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	run, ok := r.runs[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *run
	return &out, nil
}

func (r *fakeRunRepo) List(page, pageSize int) ([]model.PortfolioRun, *response.Pagination, error) {
	out := make([]model.PortfolioRun, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, *run)
	}
	return out, &response.Pagination{Page: page, PageSize: pageSize, TotalItems: int64(len(out))}, nil
}

type fakeExtractor struct {
	result service.ExtractionResult
}

func (f *fakeExtractor) Extract(ctx context.Context, text string) service.ExtractionResult {
	return f.result
}

type fakeGenerator struct {
	result service.GenerationResult
}

func (f *fakeGenerator) Generate(ctx context.Context, cv model.CVRecord, template model.PortfolioTemplate) service.GenerationResult {
	return f.result
}

func reviewRecord() model.CVRecord {
	record := model.CVRecord{
		PersonalInfo: model.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com", Bio: "Backend engineer"},
		Skills:       []model.Skill{{ID: "skill-1", Name: "Go", Category: "technical", Level: 4}},
	}
	record.Normalize()
	return record
}

func extractionResultFor(record model.CVRecord) service.ExtractionResult {
	return service.ExtractionResult{Record: record, Source: service.SourceModel}
}

func newTestUsecase(repo RunRepo, extractor service.ExtractionServiceInterface, generator service.GenerationServiceInterface) *PortfolioUsecase {
	return NewPortfolioUsecase(repo, nil, nil, extractor, generator)
}

func writeTempCV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nBackend engineer\njane@example.com"), 0o644))
	return path
}

func TestUploadReachesReviewing(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)

	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))

	require.NoError(t, err)
	assert.Equal(t, model.RunStatusReviewing, run.Status)
	assert.Equal(t, model.ContentSourceModel, run.CVSource)
	assert.Contains(t, run.CVText, "Jane Doe")
	assert.NotEqual(t, uuid.Nil, run.ID)

	var record model.CVRecord
	require.NoError(t, json.Unmarshal([]byte(run.CVData), &record))
	assert.Equal(t, "Jane Doe", record.PersonalInfo.Name)
}

func TestUploadFailsOnUnreadableFile(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{}, nil)

	run, err := uc.Upload(context.Background(), "cv.pdf", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	var extractionErr *util.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, model.RunStatusFailed, run.Status)
	assert.NotEmpty(t, run.Error)
}

type failingCreateRepo struct {
	*fakeRunRepo
}

func (r *failingCreateRepo) Create(run *model.PortfolioRun) error {
	return errors.New("db down")
}

func TestUploadExtractionFailureSurvivesPersistError(t *testing.T) {
	repo := &failingCreateRepo{newFakeRunRepo()}
	uc := newTestUsecase(repo, &fakeExtractor{}, nil)

	run, err := uc.Upload(context.Background(), "cv.pdf", filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
	var extractionErr *util.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, model.RunStatusFailed, run.Status)
}

func TestUploadRecordsFallbackProvenance(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: service.ExtractionResult{
		Record: service.FallbackCVRecord(),
		Source: service.SourceFallback,
		Reason: "quota exhausted",
	}}, nil)

	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))

	require.NoError(t, err)
	assert.Equal(t, model.RunStatusReviewing, run.Status)
	assert.Equal(t, model.ContentSourceFallback, run.CVSource)
	assert.Equal(t, "quota exhausted", run.Error)
}

func TestSaveCVClampsAndPersists(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	edited := reviewRecord()
	edited.Skills = append(edited.Skills, model.Skill{Name: "Kubernetes", Category: "technical", Level: 9})

	saved, err := uc.SaveCV(run.ID.String(), edited)
	require.NoError(t, err)

	var record model.CVRecord
	require.NoError(t, json.Unmarshal([]byte(saved.CVData), &record))
	assert.Equal(t, 5, record.Skills[1].Level)
	assert.NotEmpty(t, record.Skills[1].ID)
}

func TestSaveCVRejectsBadSchema(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	edited := reviewRecord()
	edited.Languages = []model.Language{{Name: "French", Level: "fluent-ish"}}

	_, err = uc.SaveCV(run.ID.String(), edited)
	require.Error(t, err)
}

func TestSelectTemplateUnknownID(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	_, err = uc.SelectTemplate(run.ID.String(), "brutalist")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestGenerateRequiresTemplate(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, &fakeGenerator{})
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	_, err = uc.Generate(context.Background(), run.ID.String())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFullFlowCompletes(t *testing.T) {
	repo := newFakeRunRepo()
	generator := &fakeGenerator{result: service.GenerationResult{
		HTML:   "<html><body><h1>Jane Doe</h1></body></html>",
		Source: service.SourceModel,
	}}
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, generator)

	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	run, err = uc.SelectTemplate(run.ID.String(), "modern")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusTemplateSelected, run.Status)

	run, err = uc.Generate(context.Background(), run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusCompleted, run.Status)
	assert.Contains(t, run.HTML, "Jane Doe")
	assert.Equal(t, model.ContentSourceModel, run.HTMLSource)

	run, err = uc.Deploy(run.ID.String())
	require.NoError(t, err)
	assert.Regexp(t, `^https://jane-doe-[a-z0-9]{6}\.printfolio\.app$`, run.DeployURL)

	name, err := uc.ArtifactFilename(run)
	require.NoError(t, err)
	assert.Equal(t, "portfolio-jane-doe.html", name)
}

func TestDeployRequiresCompletedRun(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	_, err = uc.Deploy(run.ID.String())
	assert.ErrorIs(t, err, ErrNotDeployable)
}

func TestGetUnknownRun(t *testing.T) {
	uc := newTestUsecase(newFakeRunRepo(), nil, nil)
	_, err := uc.Get(uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSuggestTemplateUnavailableWithoutEmbeddings(t *testing.T) {
	repo := newFakeRunRepo()
	uc := newTestUsecase(repo, &fakeExtractor{result: extractionResultFor(reviewRecord())}, nil)
	run, err := uc.Upload(context.Background(), "cv.txt", writeTempCV(t))
	require.NoError(t, err)

	_, err = uc.SuggestTemplate(context.Background(), run.ID.String())
	assert.ErrorIs(t, err, ErrNoSuggestion)
}

func TestDeployURLShape(t *testing.T) {
	assert.Regexp(t, `^https://alex-johnson-[a-z0-9]{6}\.printfolio\.app$`, DeployURL("  Alex  Johnson "))
}

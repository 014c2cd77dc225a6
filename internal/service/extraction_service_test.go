package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGeminiService struct {
	text string
	err  error
}

func (f *fakeGeminiService) GenerateContent(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func (f *fakeGeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("not implemented")
}

const sampleCVJSON = `{
  "personalInfo": {"name": "Jane Doe", "email": "jane@example.com", "phone": "+33 6 00 00 00 00", "bio": "Backend engineer"},
  "experience": [{"company": "Acme", "position": "Engineer", "startDate": "2020-01", "current": true}],
  "education": [],
  "skills": [{"name": "Go", "category": "technical", "level": 4}],
  "projects": [],
  "languages": [{"name": "English", "level": "advanced"}],
  "certifications": []
}`

func TestExtractParsesModelReply(t *testing.T) {
	svc := &ExtractionService{gemini: &fakeGeminiService{text: sampleCVJSON}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceModel, result.Source)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "Jane Doe", result.Record.PersonalInfo.Name)
	assert.Equal(t, 4, result.Record.Skills[0].Level)
	assert.NotEmpty(t, result.Record.Skills[0].ID)
	assert.NotNil(t, result.Record.Projects)
}

func TestExtractHandlesProseWrappedReply(t *testing.T) {
	wrapped := "Sure, here is the extracted data:\n```json\n" + sampleCVJSON + "\n```\nLet me know if you need anything else."
	svc := &ExtractionService{gemini: &fakeGeminiService{text: wrapped}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceModel, result.Source)
	assert.Equal(t, "jane@example.com", result.Record.PersonalInfo.Email)
}

func TestExtractFallsBackOnProviderError(t *testing.T) {
	svc := &ExtractionService{gemini: &fakeGeminiService{err: errors.New("quota exhausted")}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Reason, "quota exhausted")
	assert.Equal(t, "Alex Johnson", result.Record.PersonalInfo.Name)
}

func TestExtractFallsBackOnSchemaMismatch(t *testing.T) {
	bad := `{"personalInfo": {"name": "Jane"}, "skills": [{"name": "Go", "category": "wizardry"}]}`
	svc := &ExtractionService{gemini: &fakeGeminiService{text: bad}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Reason, "schema")
}

func TestExtractFallsBackOnNonJSONReply(t *testing.T) {
	svc := &ExtractionService{gemini: &fakeGeminiService{text: "I could not read this document."}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, "Alex Johnson", result.Record.PersonalInfo.Name)
}

func TestExtractFallsBackOnEmptyRecord(t *testing.T) {
	svc := &ExtractionService{gemini: &fakeGeminiService{text: `{"personalInfo": {}}`}, model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceFallback, result.Source)
	assert.Contains(t, result.Reason, "empty")
}

func TestExtractFallsBackWithoutClient(t *testing.T) {
	svc := &ExtractionService{model: "gemini-2.5-flash"}

	result := svc.Extract(context.Background(), "raw cv text")

	require.Equal(t, SourceFallback, result.Source)
	assert.False(t, result.Record.IsEmpty())
}

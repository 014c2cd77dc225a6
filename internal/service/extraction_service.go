package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"printfolio/internal/config"
	"printfolio/internal/model"
	"printfolio/internal/util"
)

// Content provenance of an AI-stage result, mirrored into the run row so
// callers and tests can tell real output from canned output.
const (
	SourceModel    = model.ContentSourceModel
	SourceFallback = model.ContentSourceFallback
)

type ExtractionResult struct {
	Record model.CVRecord
	Source string
	Reason string
}

type ExtractionServiceInterface interface {
	Extract(ctx context.Context, text string) ExtractionResult
}

type ExtractionService struct {
	gemini GeminiServiceInterface
	model  string
}

func NewExtractionService(gemini GeminiServiceInterface) *ExtractionService {
	return &ExtractionService{
		gemini: gemini,
		model:  config.LoadGeminiConfig().Model,
	}
}

// Extract never fails: any problem with the provider or its reply is
// absorbed and masked with the deterministic fallback record so the wizard
// can always advance to review.
func (s *ExtractionService) Extract(ctx context.Context, text string) ExtractionResult {
	record, err := s.extract(ctx, text)
	if err != nil {
		log.Printf("CV extraction failed, substituting fallback record: %v", err)
		return ExtractionResult{
			Record: FallbackCVRecord(),
			Source: SourceFallback,
			Reason: err.Error(),
		}
	}
	return ExtractionResult{Record: record, Source: SourceModel}
}

func (s *ExtractionService) extract(ctx context.Context, text string) (model.CVRecord, error) {
	if s.gemini == nil {
		return model.CVRecord{}, errors.New("gemini api key not configured")
	}

	result, err := s.gemini.GenerateContent(ctx, s.model, buildExtractionPrompt(text))
	if err != nil {
		return model.CVRecord{}, err
	}

	raw := result.Text()
	jsonStr, ok := util.FirstJSONObject(raw)
	if !ok {
		return model.CVRecord{}, errors.New("no JSON object in model response")
	}

	var record model.CVRecord
	if err := json.Unmarshal([]byte(jsonStr), &record); err != nil {
		return model.CVRecord{}, fmt.Errorf("parse model JSON: %w", err)
	}
	if err := record.Validate(); err != nil {
		return model.CVRecord{}, fmt.Errorf("model JSON does not match CV schema: %w", err)
	}
	record.Normalize()
	if record.IsEmpty() {
		return model.CVRecord{}, errors.New("model returned an empty record")
	}
	return record, nil
}

func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(`Here is the content of a CV. Analyze it and return an object that matches this JSON structure exactly:

{
  "personalInfo": {
    "name": string (required),
    "email": string (required),
    "phone": string (required),
    "location": string (optional),
    "bio": string (optional),
    "linkedin": string (optional),
    "github": string (optional),
    "website": string (optional)
  },
  "experience": [{ "id": string, "company": string, "position": string, "startDate": string, "endDate": string, "current": boolean, "description": string }],
  "education": [{ "id": string, "institution": string, "degree": string, "field": string, "startDate": string, "endDate": string, "description": string }],
  "skills": [{ "id": string, "name": string, "category": "technical"|"soft"|"language"|"certification", "level": integer 1-5 }],
  "projects": [{ "id": string, "name": string, "description": string, "technologies": string[], "url": string, "github": string }],
  "languages": [{ "id": string, "name": string, "level": "beginner"|"intermediate"|"advanced"|"native" }],
  "certifications": [{ "id": string, "name": string, "issuer": string, "date": string, "url": string }]
}

Return your answer STRICTLY as JSON with this schema, with no explanation and no code fences. Empty lists must be [], never null. Pay particular attention to the personal information. Here is the CV to analyze:

%s`, text)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"printfolio/internal/config"
	"printfolio/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type GenerationResult struct {
	HTML   string
	Source string
	Reason string
}

type GenerationServiceInterface interface {
	Generate(ctx context.Context, cv model.CVRecord, template model.PortfolioTemplate) GenerationResult
}

type GenerationService struct {
	RelayURL string
	client   *resty.Client
}

func NewGenerationService() *GenerationService {
	return &GenerationService{
		RelayURL: config.LoadRelayConfig().URL,
		client:   resty.New().SetTimeout(180 * time.Second),
	}
}

// Generate never fails: a relay error degrades to a minimal document built
// from the record's name and bio, so the wizard always has something to
// preview and download.
func (s *GenerationService) Generate(ctx context.Context, cv model.CVRecord, template model.PortfolioTemplate) GenerationResult {
	generated, err := s.generate(ctx, cv, template)
	if err != nil {
		log.Printf("portfolio generation failed, substituting fallback HTML: %v", err)
		return GenerationResult{
			HTML:   FallbackHTML(cv),
			Source: SourceFallback,
			Reason: err.Error(),
		}
	}
	return GenerationResult{HTML: generated, Source: SourceModel}
}

func (s *GenerationService) generate(ctx context.Context, cv model.CVRecord, template model.PortfolioTemplate) (string, error) {
	if s.client == nil {
		s.client = resty.New().SetTimeout(180 * time.Second)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"prompt": BuildPortfolioPrompt(cv, template)}).
		Post(s.RelayURL + "/generate-portfolio")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("relay http %d: %s", resp.StatusCode(), gjson.Get(resp.String(), "error").String())
	}

	generated := gjson.Get(resp.String(), "html").String()
	if strings.TrimSpace(generated) == "" {
		return "", fmt.Errorf("relay returned an empty html field")
	}
	return generated, nil
}

// FallbackHTML contains only the person's name and bio, styled inline.
func FallbackHTML(cv model.CVRecord) string {
	return fmt.Sprintf(
		`<div style="font-family:Arial,sans-serif;padding:2rem"><h1>%s</h1><p>%s</p></div>`,
		html.EscapeString(cv.PersonalInfo.Name),
		html.EscapeString(cv.PersonalInfo.Bio),
	)
}

// BuildPortfolioPrompt enumerates every populated CV field, names the chosen
// template with its palette, and spells out the rendering constraints. The
// reply is expected to be a single complete HTML document and nothing else.
func BuildPortfolioPrompt(cv model.CVRecord, template model.PortfolioTemplate) string {
	colors, _ := json.Marshal(template.Colors)

	var skills []string
	for _, s := range cv.Skills {
		skills = append(skills, s.Name)
	}
	var experiences []string
	for _, e := range cv.Experience {
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		experiences = append(experiences, fmt.Sprintf("%s at %s (%s - %s)", e.Position, e.Company, e.StartDate, end))
	}
	var educations []string
	for _, e := range cv.Education {
		educations = append(educations, fmt.Sprintf("%s in %s at %s (%s - %s)", e.Degree, e.Field, e.Institution, e.StartDate, e.EndDate))
	}
	var projects []string
	for _, p := range cv.Projects {
		projects = append(projects, fmt.Sprintf("%s: %s", p.Name, p.Description))
	}
	var languages []string
	for _, l := range cv.Languages {
		languages = append(languages, fmt.Sprintf("%s (%s)", l.Name, l.Level))
	}
	var certifications []string
	for _, c := range cv.Certifications {
		certifications = append(certifications, fmt.Sprintf("%s (%s, %s)", c.Name, c.Issuer, c.Date))
	}

	return fmt.Sprintf(`You are an expert in web design and front-end development. Generate a modern, responsive and visually elegant HTML portfolio based on the following data automatically extracted from a CV:
- Name: %s
- Bio: %s
- Location: %s
- Email: %s
- Phone: %s
- GitHub: %s
- LinkedIn: %s
- Website: %s
- Skills: %s
- Experience: %s
- Education: %s
- Projects: %s
- Languages: %s
- Certifications: %s
- Template: %s (color palette: %s)

Constraints and rendering requirements
Code structure: the output must be a single complete HTML file.
CSS goes in a <style> tag and JavaScript in a <script> tag, both placed in the <head> or <body> following best practices.
The HTML structure must use clean, accessible HTML5 semantics (<header>, <nav>, <main>, <footer>, <section>).
Design and aesthetics:
The design must be responsive and perfectly adapted to mobile and desktop devices, using media queries.
Use modern typography, harmonious spacing and a coherent color palette based on the provided template.
The style must be professional and visually appealing, with subtle animations (fades, slides) and hover effects on interactive elements.
Dynamic features:
Create a fixed, dynamic navbar that changes style on scroll for better readability.
Navigation links must smoothly scroll to the page's sections.
The Projects section must be presented as a gallery or interactive carousel depending on the number of projects.
The JavaScript must be concise and handled directly in the <script> tag.
Content:
Include every CV section in a clear, well-structured way: Profile, Skills, Experience, Education, Projects, Languages, Certifications.
Use professional icons through inline SVGs or Unicode codes to avoid any external dependency.
The header and footer must be impeccable and include all contact information and social links.
Important: the reply must contain only the complete HTML code, with no explanation or additional text, in a single block.`,
		cv.PersonalInfo.Name,
		cv.PersonalInfo.Bio,
		cv.PersonalInfo.Location,
		cv.PersonalInfo.Email,
		cv.PersonalInfo.Phone,
		cv.PersonalInfo.GitHub,
		cv.PersonalInfo.LinkedIn,
		cv.PersonalInfo.Website,
		strings.Join(skills, ", "),
		strings.Join(experiences, " | "),
		strings.Join(educations, " | "),
		strings.Join(projects, " | "),
		strings.Join(languages, " | "),
		strings.Join(certifications, " | "),
		template.Name,
		string(colors),
	)
}

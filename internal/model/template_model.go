package model

type TemplateColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type PortfolioTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Preview     string         `json:"preview"`
	Category    string         `json:"category"` // minimal, modern, creative, technical
	Colors      TemplateColors `json:"colors"`
}

// The template catalog is fixed: built once here, read-only afterwards.
var templates = map[string]PortfolioTemplate{}

var templateOrder = []string{"minimal", "modern", "creative", "technical"}

func init() {
	for _, t := range []PortfolioTemplate{
		{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Clean and simple design perfect for any profession",
			Preview:     "/templates/minimal-preview.jpg",
			Category:    "minimal",
			Colors: TemplateColors{
				Primary:    "#1f2937",
				Secondary:  "#6b7280",
				Accent:     "#3b82f6",
				Background: "#ffffff",
				Text:       "#111827",
			},
		},
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Contemporary design with smooth animations",
			Preview:     "/templates/modern-preview.jpg",
			Category:    "modern",
			Colors: TemplateColors{
				Primary:    "#7c3aed",
				Secondary:  "#a855f7",
				Accent:     "#06b6d4",
				Background: "#f8fafc",
				Text:       "#1e293b",
			},
		},
		{
			ID:          "creative",
			Name:        "Creative",
			Description: "Bold and colorful design for creative professionals",
			Preview:     "/templates/creative-preview.jpg",
			Category:    "creative",
			Colors: TemplateColors{
				Primary:    "#ec4899",
				Secondary:  "#f97316",
				Accent:     "#10b981",
				Background: "#fef7ff",
				Text:       "#18181b",
			},
		},
		{
			ID:          "technical",
			Name:        "Technical",
			Description: "Professional design optimized for developers and engineers",
			Preview:     "/templates/technical-preview.jpg",
			Category:    "technical",
			Colors: TemplateColors{
				Primary:    "#0f172a",
				Secondary:  "#334155",
				Accent:     "#22d3ee",
				Background: "#f1f5f9",
				Text:       "#0f172a",
			},
		},
	} {
		templates[t.ID] = t
	}
}

// TemplateByID looks up a template descriptor. Descriptors are returned by
// value so callers can never mutate the catalog.
func TemplateByID(id string) (PortfolioTemplate, bool) {
	t, ok := templates[id]
	return t, ok
}

// Templates returns the catalog in its display order.
func Templates() []PortfolioTemplate {
	out := make([]PortfolioTemplate, 0, len(templateOrder))
	for _, id := range templateOrder {
		out = append(out, templates[id])
	}
	return out
}

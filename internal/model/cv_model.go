package model

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Closed value sets for skill categories and language proficiency. Anything
// outside these sets is a schema mismatch, not something to coerce.
var (
	SkillCategories = map[string]bool{
		"technical":     true,
		"soft":          true,
		"language":      true,
		"certification": true,
	}
	LanguageLevels = map[string]bool{
		"beginner":     true,
		"intermediate": true,
		"advanced":     true,
		"native":       true,
	}
)

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Photo    string `json:"photo,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"` // kept even when Current is set
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level,omitempty"` // 1-5, 0 means unset
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Image        string   `json:"image,omitempty"`
}

type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

// CVRecord is the structured resume shared by extraction, review and
// generation. It is a plain value; every stage works on its own copy.
type CVRecord struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
}

// NewItemID builds a list-item id from a timestamp and a random suffix.
// Collisions within one list are possible in theory and accepted.
func NewItemID(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}

// ClampSkillLevel keeps a set level inside [1,5]; 0 stays 0 (unset).
func ClampSkillLevel(level int) int {
	if level == 0 {
		return 0
	}
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

// Normalize makes a model-produced or user-edited record safe to use:
// nil lists become empty, missing item ids are generated, skill levels are
// clamped. It never rejects anything, that is Validate's job.
func (r *CVRecord) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	for i := range r.Experience {
		if r.Experience[i].ID == "" {
			r.Experience[i].ID = NewItemID("exp")
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = NewItemID("edu")
		}
	}
	for i := range r.Skills {
		if r.Skills[i].ID == "" {
			r.Skills[i].ID = NewItemID("skill")
		}
		r.Skills[i].Category = strings.ToLower(strings.TrimSpace(r.Skills[i].Category))
		r.Skills[i].Level = ClampSkillLevel(r.Skills[i].Level)
	}
	for i := range r.Projects {
		if r.Projects[i].ID == "" {
			r.Projects[i].ID = NewItemID("proj")
		}
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
	for i := range r.Languages {
		if r.Languages[i].ID == "" {
			r.Languages[i].ID = NewItemID("lang")
		}
		r.Languages[i].Level = strings.ToLower(strings.TrimSpace(r.Languages[i].Level))
	}
	for i := range r.Certifications {
		if r.Certifications[i].ID == "" {
			r.Certifications[i].ID = NewItemID("cert")
		}
	}
}

// Validate checks the record against the CV schema's closed sets.
func (r *CVRecord) Validate() error {
	for _, s := range r.Skills {
		if s.Category != "" && !SkillCategories[s.Category] {
			return fmt.Errorf("unknown skill category %q", s.Category)
		}
		if s.Level < 0 || s.Level > 5 {
			return fmt.Errorf("skill level %d out of range", s.Level)
		}
	}
	for _, l := range r.Languages {
		if l.Level != "" && !LanguageLevels[l.Level] {
			return fmt.Errorf("unknown language level %q", l.Level)
		}
	}
	return nil
}

// IsEmpty reports whether the record carries no usable content at all,
// the usual symptom of a garbage model reply.
func (r *CVRecord) IsEmpty() bool {
	return strings.TrimSpace(r.PersonalInfo.Name) == "" &&
		strings.TrimSpace(r.PersonalInfo.Email) == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFillsIDsAndEmptyLists(t *testing.T) {
	record := CVRecord{
		PersonalInfo: PersonalInfo{Name: "Jane Doe"},
		Skills: []Skill{
			{Name: "Go", Category: "technical"},
			{Name: "Rust", Category: "technical"},
		},
	}

	record.Normalize()

	assert.NotNil(t, record.Experience)
	assert.NotNil(t, record.Projects)
	assert.NotNil(t, record.Certifications)
	assert.NotEmpty(t, record.Skills[0].ID)
	assert.NotEmpty(t, record.Skills[1].ID)
}

func TestNormalizeClampsSkillLevels(t *testing.T) {
	record := CVRecord{
		Skills: []Skill{
			{Name: "Go", Category: "technical", Level: 9},
			{Name: "SQL", Category: "technical", Level: -2},
			{Name: "Docker", Category: "technical", Level: 3},
			{Name: "Figma", Category: "technical"}, // unset stays unset
		},
	}

	record.Normalize()

	assert.Equal(t, 5, record.Skills[0].Level)
	assert.Equal(t, 1, record.Skills[1].Level)
	assert.Equal(t, 3, record.Skills[2].Level)
	assert.Equal(t, 0, record.Skills[3].Level)
}

func TestNormalizeLowercasesClosedSetValues(t *testing.T) {
	record := CVRecord{
		Skills:    []Skill{{Name: "Go", Category: "Technical"}},
		Languages: []Language{{Name: "French", Level: "Native"}},
	}

	record.Normalize()

	assert.Equal(t, "technical", record.Skills[0].Category)
	assert.Equal(t, "native", record.Languages[0].Level)
	assert.NoError(t, record.Validate())
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	record := CVRecord{Skills: []Skill{{Name: "Go", Category: "wizardry"}}}
	assert.Error(t, record.Validate())
}

func TestValidateRejectsUnknownLanguageLevel(t *testing.T) {
	record := CVRecord{Languages: []Language{{Name: "French", Level: "fluent-ish"}}}
	assert.Error(t, record.Validate())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&CVRecord{}).IsEmpty())
	assert.False(t, (&CVRecord{PersonalInfo: PersonalInfo{Name: "Jane"}}).IsEmpty())
	assert.False(t, (&CVRecord{Skills: []Skill{{Name: "Go"}}}).IsEmpty())
}

func TestNewItemIDHasPrefix(t *testing.T) {
	id := NewItemID("exp")
	assert.Regexp(t, `^exp-\d+-\d{4}$`, id)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeToProfile_RoundTripsFormValues(t *testing.T) {
	r := &Resume{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Education: []EducationEntry{
			{Institution: "MIT", Location: "Cambridge, MA", Degree: "B.S.", Dates: "2019 -- 2023", GPA: "3.9"},
		},
		Experience: []ExperienceEntry{
			{Role: "Engineer", Company: "Acme", Years: "2023 -- Present", Details: []string{"Built things", "Fixed things"}},
		},
		Projects: []ProjectEntry{
			{Name: "Site", Technologies: "Go", Dates: "2024", Summary: "A site"},
		},
		Skills: []SkillGroup{
			{Label: SkillGroupLanguages, Items: []string{"Go", "SQL"}},
		},
	}

	p := r.ToProfile()

	assert.Equal(t, "Jane Doe", p.Name)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "Cambridge, MA", p.Education[0].Location)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Built things\nFixed things", p.Experience[0].Details)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "A site", p.Projects[0].Summary)
	require.NotNil(t, p.Skills)
	assert.Equal(t, "Go, SQL", p.Skills.Languages)
	assert.Equal(t, "", p.Skills.Software)
}

func TestResumeToProfile_NilAndEmpty(t *testing.T) {
	var r *Resume
	assert.Equal(t, &Profile{}, r.ToProfile())

	p := (&Resume{}).ToProfile()
	assert.Nil(t, p.Skills, "no skill groups should leave skills absent")
}

func TestProfileSkillAccessors_NilSafe(t *testing.T) {
	var p *Profile
	assert.Equal(t, "", p.SkillLanguages())
	assert.Equal(t, "", p.SkillSoftware())

	p = &Profile{Skills: &Skills{Languages: "Go", Software: "Docker"}}
	assert.Equal(t, "Go", p.SkillLanguages())
	assert.Equal(t, "Docker", p.SkillSoftware())
}

func TestProfileClone_IsDeep(t *testing.T) {
	orig := &Profile{
		Name:      "A",
		Education: []Education{{Institution: "MIT"}},
		Skills:    &Skills{Languages: "Go"},
	}

	cp := orig.Clone()
	cp.Education[0].Institution = "Stanford"
	cp.Skills.Languages = "Rust"

	assert.Equal(t, "MIT", orig.Education[0].Institution)
	assert.Equal(t, "Go", orig.Skills.Languages)

	var nilProfile *Profile
	assert.Nil(t, nilProfile.Clone())
}

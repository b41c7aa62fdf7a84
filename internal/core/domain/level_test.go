package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelSuitable_Beginner(t *testing.T) {
	assert.True(t, LevelSuitable("beginner", "beginner"))
	assert.True(t, LevelSuitable("beginner", "all levels"))
	assert.True(t, LevelSuitable("beginner", ""))
	assert.False(t, LevelSuitable("beginner", "intermediate"))
	assert.False(t, LevelSuitable("beginner", "advanced"))
}

func TestLevelSuitable_Intermediate(t *testing.T) {
	assert.True(t, LevelSuitable("intermediate", "beginner"))
	assert.True(t, LevelSuitable("intermediate", "intermediate"))
	assert.True(t, LevelSuitable("intermediate", "all levels"))
	assert.False(t, LevelSuitable("intermediate", "advanced"))
}

func TestLevelSuitable_Advanced(t *testing.T) {
	assert.True(t, LevelSuitable("advanced", "beginner"))
	assert.True(t, LevelSuitable("advanced", "intermediate"))
	assert.True(t, LevelSuitable("advanced", "advanced"))
	assert.True(t, LevelSuitable("advanced", "all levels"))
}

func TestLevelSuitable_UnknownExperience(t *testing.T) {
	assert.True(t, LevelSuitable("expert", "all levels"))
	assert.True(t, LevelSuitable("", ""))
	assert.False(t, LevelSuitable("expert", "beginner"))
	assert.False(t, LevelSuitable("", "advanced"))
}

func TestLevelSuitable_CompoundLabels(t *testing.T) {
	// Compound level labels match by substring containment.
	assert.True(t, LevelSuitable("beginner", "Beginner to Advanced"))
	assert.True(t, LevelSuitable("advanced", "Intermediate Level"))
	assert.False(t, LevelSuitable("beginner", "Advanced Only"))
}

func TestLevelSuitable_CaseInsensitive(t *testing.T) {
	assert.True(t, LevelSuitable("Beginner", "All Levels"))
	assert.True(t, LevelSuitable("ADVANCED", "Advanced"))
}

func TestProfileAnalysis_Default(t *testing.T) {
	analysis := DefaultProfileAnalysis("Backend Developer")

	assert.Equal(t, "intermediate", analysis.ExperienceLevel)
	assert.Equal(t, []string{"Backend Developer"}, analysis.CareerInterests)
	assert.Equal(t, []string{"Learn Backend Developer skills"}, analysis.LearningGoals)
	assert.Empty(t, analysis.ExtractedSkills)
}

func TestProfile_Analysis(t *testing.T) {
	p := Profile{
		ProfileID:       "abc",
		Skills:          []string{"Python", "SQL"},
		ExperienceYears: "3 years",
		CareerGoal:      "Data Scientist",
		Interests:       []string{"Machine Learning"},
	}

	analysis := p.Analysis()

	assert.Equal(t, []string{"Python", "SQL"}, analysis.ExtractedSkills)
	assert.Equal(t, "intermediate", analysis.ExperienceLevel)
	assert.Equal(t, []string{"Data Scientist", "Machine Learning"}, analysis.CareerInterests)
	assert.Equal(t, []string{"Learn Data Scientist skills"}, analysis.LearningGoals)
}

func TestExperienceLevelFromYears(t *testing.T) {
	tests := []struct {
		years string
		want  string
	}{
		{"", ""},
		{"0", "beginner"},
		{"1 year", "beginner"},
		{"3+ years", "intermediate"},
		{"10", "advanced"},
		{"unknown", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, experienceLevelFromYears(tt.years), "years=%q", tt.years)
	}
}

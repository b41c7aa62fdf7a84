package domain

import "fmt"

// ProfileAnalysis is the structured summary of a learner profile used
// to bias retrieval. It is read-only input to the query composer and
// the suitability filter.
type ProfileAnalysis struct {
	// ExtractedSkills are skills found in the profile text.
	ExtractedSkills []string `json:"extracted_skills"`

	// ExperienceLevel is "beginner", "intermediate", "advanced", or "".
	ExperienceLevel string `json:"experience_level"`

	// CareerInterests are stated career directions.
	CareerInterests []string `json:"career_interests"`

	// LearningGoals are stated learning objectives.
	LearningGoals []string `json:"learning_goals"`
}

// DefaultProfileAnalysis synthesises a minimal analysis when the caller
// provides none. Recommendation must never fail for lack of a profile.
func DefaultProfileAnalysis(careerGoal string) ProfileAnalysis {
	return ProfileAnalysis{
		ExperienceLevel: "intermediate",
		CareerInterests: []string{careerGoal},
		LearningGoals:   []string{fmt.Sprintf("Learn %s skills", careerGoal)},
	}
}

// Profile is a persisted normalised learner profile, produced by the
// LLM-backed normaliser (or its deterministic fallback).
type Profile struct {
	// ProfileID identifies the profile; generated when absent.
	ProfileID string `json:"ProfileId"`

	// Name is the learner's name.
	Name string `json:"Name"`

	// ExperienceYears is the stated years of experience.
	ExperienceYears string `json:"ExperienceYears"`

	// ExperienceSummary is a short free-text summary.
	ExperienceSummary string `json:"ExperienceSummary"`

	// Education is the stated education background.
	Education string `json:"Education"`

	// Skills are the extracted skills.
	Skills []string `json:"Skills"`

	// CareerGoal is the stated career goal.
	CareerGoal string `json:"CareerGoal"`

	// Interests are additional stated interests.
	Interests []string `json:"Interests"`
}

// Analysis projects a persisted profile into the retrieval-facing view.
func (p Profile) Analysis() ProfileAnalysis {
	analysis := ProfileAnalysis{
		ExtractedSkills: p.Skills,
		ExperienceLevel: experienceLevelFromYears(p.ExperienceYears),
	}
	if p.CareerGoal != "" {
		analysis.CareerInterests = append(analysis.CareerInterests, p.CareerGoal)
	}
	analysis.CareerInterests = append(analysis.CareerInterests, p.Interests...)
	if p.CareerGoal != "" {
		analysis.LearningGoals = []string{fmt.Sprintf("Learn %s skills", p.CareerGoal)}
	}
	return analysis
}

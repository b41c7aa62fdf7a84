package services

import (
	"fmt"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/logger"
)

// fallbackCourses supplies synthetic course stubs when the index is
// unavailable or retrieval yields nothing. Similarities are fixed and
// descending so consumers that sort by similarity keep this order.
func fallbackCourses(careerGoal string) []domain.RankedCourse {
	logger.Info("Supplying fallback courses for %q", careerGoal)

	stubs := []struct {
		title      string
		text       string
		similarity float64
	}{
		{
			title: fmt.Sprintf("Complete %s Masterclass", careerGoal),
			text: fmt.Sprintf(
				"Learn everything you need to become a professional %s. "+
					"This comprehensive course covers all fundamental concepts and advanced techniques.",
				careerGoal),
			similarity: 0.9,
		},
		{
			title: fmt.Sprintf("%s Fundamentals", careerGoal),
			text: fmt.Sprintf(
				"A hands-on introduction to the core skills every %s needs, "+
					"built around practical exercises and real projects.",
				careerGoal),
			similarity: 0.8,
		},
		{
			title: fmt.Sprintf("Practical %s Projects", careerGoal),
			text: fmt.Sprintf(
				"Apply your %s skills by building a portfolio of realistic projects "+
					"from start to finish.",
				careerGoal),
			similarity: 0.7,
		},
	}

	courses := make([]domain.RankedCourse, 0, len(stubs))
	for _, stub := range stubs {
		courses = append(courses, domain.RankedCourse{
			Title:      stub.title,
			Text:       stub.text,
			Similarity: stub.similarity,
			Source:     domain.SourceFallback,
			Instructor: "Expert Instructor",
			Level:      "All Levels",
			Rating:     4.5,
			Duration:   "15 hours",
			Link:       "#",
			Price:      "Free",
		})
	}
	return courses
}

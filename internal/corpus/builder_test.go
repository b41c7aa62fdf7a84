package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DocumentAssembly(t *testing.T) {
	row := Row{
		Title:        "Complete Python Bootcamp",
		Description:  "Learn Python from zero to hero",
		Instructor:   "Jose Portilla",
		Level:        "Beginner",
		Rating:       "4.6",
		Duration:     "22 hours",
		Link:         "https://example.com/python",
		Price:        "$19.99",
		Outcomes:     "['Write Python scripts', 'Build real projects']",
		Requirements: "['A computer']",
		Audience:     "['Beginners']",
	}

	record, doc := Build(row, 7)

	assert.Equal(t, "course_7", doc.ID)
	assert.Equal(t, "Complete Python Bootcamp", record.Title)
	assert.Equal(t, []string{"python"}, record.SkillTags)

	lines := strings.Split(doc.DocumentText, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "COURSE TITLE: Complete Python Bootcamp", lines[0])
	assert.Equal(t, "DESCRIPTION: Learn Python from zero to hero", lines[1])
	assert.Equal(t, "INSTRUCTOR: Jose Portilla", lines[2])
	assert.Equal(t, "LEVEL: Beginner", lines[3])
	assert.Equal(t, "RATING: 4.6", lines[4])
	assert.Equal(t, "DURATION: 22 hours", lines[5])

	assert.Contains(t, doc.DocumentText, "LEARNING OUTCOMES:\n- Write Python scripts\n- Build real projects")
	assert.Contains(t, doc.DocumentText, "REQUIREMENTS:\n- A computer")
	assert.Contains(t, doc.DocumentText, "TARGET AUDIENCE:\n- Beginners")
}

func TestBuild_EmptySectionsOmitted(t *testing.T) {
	row := Row{
		Title:  "Minimal Course",
		Rating: "N/A",
	}

	_, doc := Build(row, 0)

	assert.NotContains(t, doc.DocumentText, "LEARNING OUTCOMES:")
	assert.NotContains(t, doc.DocumentText, "REQUIREMENTS:")
	assert.NotContains(t, doc.DocumentText, "TARGET AUDIENCE:")
	assert.Contains(t, doc.DocumentText, "RATING: 0")
}

func TestBuild_SectionCaps(t *testing.T) {
	items := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, "Outcome "+strings.Repeat("x", i+1))
	}
	row := Row{
		Title:    "Capped Course",
		Outcomes: "[" + "'" + strings.Join(items, "', '") + "'" + "]",
	}

	_, doc := Build(row, 0)

	bullets := strings.Count(doc.DocumentText, "\n- ")
	assert.Equal(t, maxOutcomes, bullets)
}

func TestBuild_MetadataDefaults(t *testing.T) {
	_, doc := Build(Row{Title: "Untitled Level Course"}, 0)

	assert.Equal(t, "all levels", doc.Metadata["level"])
	assert.Equal(t, "Free", doc.Metadata["price"])
	assert.Equal(t, 0.0, doc.Metadata["rating"])
}

func TestBuild_MetadataProjection(t *testing.T) {
	row := Row{
		Title:      "Docker and Kubernetes Mastery",
		Instructor: "Jane Doe",
		Level:      "Intermediate",
		Rating:     "4.8",
		Duration:   "12 hours",
		Link:       "https://example.com/docker",
		Price:      "$29.99",
	}

	_, doc := Build(row, 0)

	assert.Equal(t, "Docker and Kubernetes Mastery", doc.Metadata["title"])
	assert.Equal(t, "Jane Doe", doc.Metadata["instructor"])
	assert.Equal(t, "intermediate", doc.Metadata["level"])
	assert.Equal(t, 4.8, doc.Metadata["rating"])
	assert.Equal(t, "$29.99", doc.Metadata["price"])
	assert.Equal(t, "docker, kubernetes", doc.Metadata["skills"])
}

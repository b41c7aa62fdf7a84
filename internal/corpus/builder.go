package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
)

// Caps on bulleted document sections.
const (
	maxOutcomes     = 10
	maxRequirements = 5
	maxAudience     = 5
)

// Row is one raw course row as read from the corpus source. Fields may
// be empty or malformed; Build sanitises them.
type Row struct {
	Title        string
	Description  string
	Instructor   string
	Level        string
	Rating       string
	Duration     string
	Link         string
	Price        string
	Outcomes     string
	Requirements string
	Audience     string
}

// Build converts a raw row into a course record and its indexed
// document. The position becomes the document ID, stable within one
// ingestion pass.
func Build(row Row, position int) (domain.CourseRecord, domain.IndexedDocument) {
	record := domain.CourseRecord{
		Title:            CleanText(row.Title),
		Description:      CleanText(row.Description),
		Instructor:       CleanText(row.Instructor),
		Level:            CleanText(row.Level),
		Rating:           ParseRating(row.Rating),
		Duration:         CleanText(row.Duration),
		Link:             strings.TrimSpace(row.Link),
		Price:            strings.TrimSpace(row.Price),
		LearningOutcomes: ParseListField(row.Outcomes),
		Requirements:     ParseListField(row.Requirements),
		TargetAudience:   ParseListField(row.Audience),
	}
	record.SkillTags = ExtractKeywords(record.Title)

	doc := domain.IndexedDocument{
		ID:           fmt.Sprintf("course_%d", position),
		DocumentText: assembleDocumentText(record),
		Metadata:     buildMetadata(record),
	}
	return record, doc
}

// assembleDocumentText flattens a record into the searchable document
// string. Section order is fixed; sections with no items are omitted
// entirely.
func assembleDocumentText(record domain.CourseRecord) string {
	parts := []string{
		"COURSE TITLE: " + record.Title,
		"DESCRIPTION: " + record.Description,
		"INSTRUCTOR: " + record.Instructor,
		"LEVEL: " + record.Level,
		"RATING: " + strconv.FormatFloat(record.Rating, 'g', -1, 64),
		"DURATION: " + record.Duration,
	}

	parts = appendSection(parts, "LEARNING OUTCOMES:", record.LearningOutcomes, maxOutcomes)
	parts = appendSection(parts, "REQUIREMENTS:", record.Requirements, maxRequirements)
	parts = appendSection(parts, "TARGET AUDIENCE:", record.TargetAudience, maxAudience)

	return strings.Join(parts, "\n")
}

// appendSection adds a bulleted section when items exist, capped at max.
func appendSection(parts []string, header string, items []string, max int) []string {
	if len(items) == 0 {
		return parts
	}
	if len(items) > max {
		items = items[:max]
	}
	parts = append(parts, header)
	for _, item := range items {
		parts = append(parts, "- "+item)
	}
	return parts
}

// buildMetadata projects the record into the filterable metadata bundle.
func buildMetadata(record domain.CourseRecord) map[string]any {
	level := strings.ToLower(record.Level)
	if level == "" {
		level = "all levels"
	}

	price := record.Price
	if price == "" {
		price = "Free"
	}

	return map[string]any{
		"title":      record.Title,
		"instructor": record.Instructor,
		"level":      level,
		"rating":     record.Rating,
		"duration":   record.Duration,
		"link":       record.Link,
		"price":      price,
		"skills":     strings.Join(record.SkillTags, ", "),
	}
}

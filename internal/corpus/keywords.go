package corpus

import "strings"

// maxSkillTags caps the number of keyword tags per course.
const maxSkillTags = 8

// techKeywords is the fixed technology/domain vocabulary used to derive
// skill tags from course titles. Matching is a plain substring scan in
// this order; tags are not re-ranked by relevance.
var techKeywords = []string{
	"python", "javascript", "java", "react", "angular", "vue", "node", "nodejs",
	"django", "flask", "laravel", "spring", "express", "mongodb", "mysql",
	"postgresql", "html", "css", "typescript", "php", "ruby", "go", "rust",
	"docker", "kubernetes", "aws", "azure", "gcp", "machine learning", "ml",
	"artificial intelligence", "ai", "data science", "blockchain", "flutter",
	"swift", "kotlin", "android", "ios", "unity", "tensorflow", "pytorch",
	"backend", "frontend", "fullstack", "web development", "mobile development",
	"cloud", "devops", "database", "sql", "nosql",
}

// ExtractKeywords returns the vocabulary terms contained in the title,
// in vocabulary order, capped at eight.
func ExtractKeywords(title string) []string {
	if title == "" {
		return nil
	}

	titleLower := strings.ToLower(title)
	var found []string
	for _, keyword := range techKeywords {
		if strings.Contains(titleLower, keyword) {
			found = append(found, keyword)
			if len(found) == maxSkillTags {
				break
			}
		}
	}
	return found
}

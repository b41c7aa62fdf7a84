package domain

// CourseRecord is the normalised representation of one course row from
// the corpus. It is created once per ingestion pass and immutable
// afterwards; the next pass supersedes it wholesale.
type CourseRecord struct {
	// Title is the cleaned course title.
	Title string

	// Description is the cleaned long description.
	Description string

	// Instructor is the cleaned instructor name.
	Instructor string

	// Level is the course difficulty: "beginner", "intermediate",
	// "advanced", "all levels", or "".
	Level string

	// Rating is the numeric rating; 0.0 when the source value was
	// missing or unparseable.
	Rating float64

	// Duration is the free-text course length.
	Duration string

	// Link is the course URL, or "#" when unknown.
	Link string

	// Price is the display price, defaulting to "Free".
	Price string

	// LearningOutcomes are the parsed "What You'll Learn" items.
	LearningOutcomes []string

	// Requirements are the parsed prerequisite items.
	Requirements []string

	// TargetAudience are the parsed audience items.
	TargetAudience []string

	// SkillTags are technology keywords matched in the title, capped
	// at eight, in vocabulary order.
	SkillTags []string
}

// IndexedDocument is the text+metadata unit stored in the course index.
type IndexedDocument struct {
	// ID is unique and stable within one ingestion pass.
	ID string

	// DocumentText is the flattened searchable representation of the
	// course, assembled in a fixed section order to maximise lexical
	// match surface.
	DocumentText string

	// Metadata is the filterable/display projection of the course.
	// Values are scalars: title, instructor, level (lower-cased),
	// rating, duration, link, price, skills (comma-joined).
	Metadata map[string]any
}

// RankedCourse is a single recommendation returned to the caller.
type RankedCourse struct {
	// Title is the course title, unique within one response.
	Title string `json:"course_title"`

	// Text is the full document text of the matched course.
	Text string `json:"text"`

	// Similarity is the [0,1] relevance score, 1 being the best match.
	Similarity float64 `json:"similarity"`

	// Source is "index" for retrieved courses or "fallback" for
	// synthetic stubs.
	Source string `json:"source"`

	// Instructor is the course instructor, "Unknown" when absent.
	Instructor string `json:"instructor"`

	// Level is the course difficulty label, "All Levels" when absent.
	Level string `json:"level"`

	// Rating is the course rating, 4.0 when absent.
	Rating float64 `json:"rating"`

	// Duration is the course length, "Not specified" when absent.
	Duration string `json:"duration"`

	// Link is the course URL, "#" when absent.
	Link string `json:"url"`

	// Price is the display price, "Free" when absent.
	Price string `json:"price"`

	// Skills are the comma-joined keyword tags from the index metadata.
	Skills string `json:"skills,omitempty"`
}

// Course sources.
const (
	SourceIndex    = "index"
	SourceFallback = "fallback"
)

// Recommendation is the response of the recommendation operation.
// Courses is never empty: when retrieval yields nothing, fallback
// courses are substituted.
type Recommendation struct {
	Courses []RankedCourse `json:"courses"`
}

package contract

import (
	"strconv"
	"time"
)

// MaxRecommendations caps the length of RecommendResponse.Recommendations.
const MaxRecommendations = 5

// ScheduleTBA is reported for days or time when no schedule is known.
const ScheduleTBA = "TBA"

// NotFoundMessage is the summary text of a NOT_FOUND response.
const NotFoundMessage = "Student not found in the records."

type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusNotFound Status = "NOT_FOUND"
)

type RecommendErrorCode string

const ErrInvalidName RecommendErrorCode = "INVALID_NAME"

// InvalidNameMessage is shown when the requested name is blank.
const InvalidNameMessage = "please enter a valid name"

type RecommendError struct {
	Code    RecommendErrorCode
	Message string
}

func (e *RecommendError) Error() string {
	return string(e.Code) + ": " + e.Message
}

type RecommendRequest struct {
	StudentName string
	Now         *time.Time
}

func NewRecommendRequest(studentName string) RecommendRequest {
	return RecommendRequest{StudentName: studentName}
}

// GPA is a cumulative GPA as read from the history table. Available is false
// when the table has no GPA column at all; Value is nil when the column
// exists but the student's cell is empty.
type GPA struct {
	Available bool     `json:"available"`
	Value     *float64 `json:"value"`
}

func (g GPA) String() string {
	switch {
	case !g.Available:
		return "N/A"
	case g.Value == nil:
		return "not recorded"
	default:
		return strconv.FormatFloat(*g.Value, 'f', -1, 64)
	}
}

type StudentSummary struct {
	Name            string `json:"name"`
	StudentID       string `json:"student_id"`
	AcademicProgram string `json:"academic_program"`
	GPA             GPA    `json:"gpa"`
}

type SubjectTaken struct {
	Title       string `json:"title"`
	SubjectCode string `json:"subject_code"`
	Grade       string `json:"grade"`
}

type Recommendation struct {
	Title  string  `json:"title"`
	Module string  `json:"module"`
	Days   string  `json:"days"`
	Time   string  `json:"time"`
	Score  float64 `json:"score"`
}

type RecommendResponse struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	Status          Status           `json:"status"`
	Message         string           `json:"message,omitempty"`
	CatalogVersion  string           `json:"catalog_version"`
	Student         *StudentSummary  `json:"student,omitempty"`
	SubjectsTaken   []SubjectTaken   `json:"subjects_taken"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Found reports whether the student was matched.
func (r *RecommendResponse) Found() bool {
	return r.Status == StatusSuccess
}

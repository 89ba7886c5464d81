package dto

import "time"

// QuestionResponse is a single quiz question in the API response.
type QuestionResponse struct {
	ID       string   `json:"_id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	QuizType string   `json:"quizType"`
}

// QuestionsResponse is returned by GET /quiz/:category.
// @Description Question list for a quiz category
type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Category  string             `json:"category"`
	Count     int                `json:"count"`
	Questions []QuestionResponse `json:"questions"`
	Cached    bool               `json:"cached"`
	Timestamp time.Time          `json:"timestamp"`
}

// SubmitQuizRequest is the body of POST /quiz/submit.
// @Description Quiz answers submitted for recommendation
type SubmitQuizRequest struct {
	Category  string   `json:"category"`
	QuizType  string   `json:"quizType"` // legacy field name, used when Category is empty
	Responses []string `json:"responses"`
	Stream    string   `json:"stream,omitempty"`
}

// CategoryValue returns Category, falling back to the legacy QuizType field.
func (r *SubmitQuizRequest) CategoryValue() string {
	if r.Category != "" {
		return r.Category
	}
	return r.QuizType
}

// Suggestions is the normalised recommendation envelope.
type Suggestions struct {
	RecommendedStream string   `json:"recommendedStream"`
	TopCourses        []string `json:"topCourses"`
	AIInsights        string   `json:"aiInsights"`
}

// SubmitQuizResponse is returned by POST /quiz/submit.
// @Description Recommendation produced for a quiz submission
type SubmitQuizResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	AttemptID   string      `json:"attemptId,omitempty"`
	Suggestions Suggestions `json:"suggestions"`
}

// QuizAttemptSummary is one row of the caller's attempt history.
type QuizAttemptSummary struct {
	ID                string    `json:"id"`
	Category          string    `json:"category"`
	RecommendedStream *string   `json:"recommendedStream"`
	TopCourses        []string  `json:"topCourses"`
	AIInsights        string    `json:"aiInsights"`
	Answers           []string  `json:"answers"`
	SubmittedAt       time.Time `json:"submittedAt"`
}

// PaginationInfo describes the page returned.
type PaginationInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// QuizAttemptsResponse is returned by GET /quiz/attempts.
// @Description Paginated attempt history of the caller
type QuizAttemptsResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Attempts   []QuizAttemptSummary `json:"attempts"`
	Pagination PaginationInfo       `json:"pagination"`
}

// InvalidateCacheRequest is the body of POST /quiz/cache/invalidate.
type InvalidateCacheRequest struct {
	Category string `json:"category,omitempty"`
}

// QuizHealthResponse is returned by GET /quiz/health.
type QuizHealthResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Database DatabaseHealthInfo `json:"database"`
	Cache    CacheHealthInfo    `json:"cache"`
	// ReconcileFailures counts attempts whose result update failed and stayed "Processing...".
	ReconcileFailures int64 `json:"reconcileFailures"`
}

type DatabaseHealthInfo struct {
	Connected      bool   `json:"connected"`
	TotalQuestions int    `json:"totalQuestions"`
	ResponseTime   string `json:"responseTime"`
}

type CacheHealthInfo struct {
	Backend string   `json:"backend"`
	Size    int      `json:"size"`
	Keys    []string `json:"keys"`
}

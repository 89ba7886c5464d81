package service

import (
	"context"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Question, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteAllQuestions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQuizAttemptRepository ---
type MockQuizAttemptRepository struct {
	mock.Mock
}

func (m *MockQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizAttemptRepository) UpdateAttemptResult(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockQuizAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string, pagination dto.Pagination) ([]domain.QuizAttempt, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizAttempt), args.Error(1)
}

func (m *MockQuizAttemptRepository) CountAttemptsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- MockRecommendationEngine ---
type MockRecommendationEngine struct {
	mock.Mock
}

func (m *MockRecommendationEngine) RecommendFoundational(ctx context.Context, answers []string) (*domain.RecommendationOutcome, error) {
	args := m.Called(ctx, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecommendationOutcome), args.Error(1)
}

func (m *MockRecommendationEngine) RecommendStream(ctx context.Context, answers []string, currentStream string) (*domain.RecommendationOutcome, error) {
	args := m.Called(ctx, answers, currentStream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecommendationOutcome), args.Error(1)
}

// --- MockRefDataRepository ---
type MockRefDataRepository struct {
	mock.Mock
}

func (m *MockRefDataRepository) ListCourses(ctx context.Context, filter domain.CourseFilter, pagination dto.Pagination) ([]domain.Course, int, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Course), args.Int(1), args.Error(2)
}

func (m *MockRefDataRepository) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockRefDataRepository) DistinctCourseStreams(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRefDataRepository) CreateCourse(ctx context.Context, c *domain.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRefDataRepository) ListColleges(ctx context.Context, filter domain.CollegeFilter, pagination dto.Pagination) ([]domain.College, int, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.College), args.Int(1), args.Error(2)
}

func (m *MockRefDataRepository) GetCollege(ctx context.Context, id string) (*domain.College, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.College), args.Error(1)
}

func (m *MockRefDataRepository) DistinctCollegeLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRefDataRepository) DistinctCollegeTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRefDataRepository) CreateCollege(ctx context.Context, c *domain.College) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRefDataRepository) ListTimelineEvents(ctx context.Context, filter domain.TimelineFilter, pagination dto.Pagination) ([]domain.TimelineEvent, int, error) {
	args := m.Called(ctx, filter, pagination)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TimelineEvent), args.Int(1), args.Error(2)
}

func (m *MockRefDataRepository) GetTimelineEvent(ctx context.Context, id string) (*domain.TimelineEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimelineEvent), args.Error(1)
}

func (m *MockRefDataRepository) DistinctTimelineCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRefDataRepository) CreateTimelineEvent(ctx context.Context, e *domain.TimelineEvent) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRefDataRepository) DeleteAllRefData(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

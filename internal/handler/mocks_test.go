package handler_test

import (
	"context"

	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockUserService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshResponse), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) GetQuestions(ctx context.Context, category domain.Category) (*dto.QuestionsResponse, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuestionsResponse), args.Error(1)
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitQuizResponse), args.Error(1)
}

func (m *MockQuizService) GetAttempts(ctx context.Context, userID string, page, limit int) (*dto.QuizAttemptsResponse, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizAttemptsResponse), args.Error(1)
}

func (m *MockQuizService) InvalidateQuestions(ctx context.Context, rawCategory string) (*dto.MessageResponse, error) {
	args := m.Called(ctx, rawCategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockQuizService) Health(ctx context.Context) *dto.QuizHealthResponse {
	return m.Called(ctx).Get(0).(*dto.QuizHealthResponse)
}

func (m *MockQuizService) ReconcileFailures() int64 {
	return m.Called().Get(0).(int64)
}

type MockRefDataService struct {
	mock.Mock
}

func (m *MockRefDataService) ListCourses(ctx context.Context, stream string, page, limit int) (*dto.CourseListResponse, error) {
	res := m.Called(ctx, stream, page, limit)
	resp, _ := res.Get(0).(*dto.CourseListResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) SearchCourses(ctx context.Context, term string, page, limit int) (*dto.CourseListResponse, error) {
	res := m.Called(ctx, term, page, limit)
	resp, _ := res.Get(0).(*dto.CourseListResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) GetCourse(ctx context.Context, id string) (*dto.CourseDetailResponse, error) {
	res := m.Called(ctx, id)
	resp, _ := res.Get(0).(*dto.CourseDetailResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) CourseStreams(ctx context.Context) (*dto.FacetResponse, error) {
	res := m.Called(ctx)
	resp, _ := res.Get(0).(*dto.FacetResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) ListColleges(ctx context.Context, location, collegeType string, page, limit int) (*dto.CollegeListResponse, error) {
	res := m.Called(ctx, location, collegeType, page, limit)
	resp, _ := res.Get(0).(*dto.CollegeListResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) GetCollege(ctx context.Context, id string) (*dto.CollegeDetailResponse, error) {
	res := m.Called(ctx, id)
	resp, _ := res.Get(0).(*dto.CollegeDetailResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) CollegeLocations(ctx context.Context) (*dto.FacetResponse, error) {
	res := m.Called(ctx)
	resp, _ := res.Get(0).(*dto.FacetResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) CollegeTypes(ctx context.Context) (*dto.FacetResponse, error) {
	res := m.Called(ctx)
	resp, _ := res.Get(0).(*dto.FacetResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) ListTimeline(ctx context.Context, category string, upcoming bool, page, limit int) (*dto.TimelineListResponse, error) {
	res := m.Called(ctx, category, upcoming, page, limit)
	resp, _ := res.Get(0).(*dto.TimelineListResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) UpcomingTimeline(ctx context.Context, limit int) (*dto.TimelineListResponse, error) {
	res := m.Called(ctx, limit)
	resp, _ := res.Get(0).(*dto.TimelineListResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) GetTimelineEvent(ctx context.Context, id string) (*dto.TimelineEventDetailResponse, error) {
	res := m.Called(ctx, id)
	resp, _ := res.Get(0).(*dto.TimelineEventDetailResponse)
	return resp, res.Error(1)
}

func (m *MockRefDataService) TimelineCategories(ctx context.Context) (*dto.FacetResponse, error) {
	res := m.Called(ctx)
	resp, _ := res.Get(0).(*dto.FacetResponse)
	return resp, res.Error(1)
}

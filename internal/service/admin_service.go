package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/api"
	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
	"github.com/edusphere/lms-client/pkg/labels"
)

type adminAPI interface {
	AdminOverview(ctx context.Context) (*dto.OverviewResponse, error)
	AdminUsers(ctx context.Context, query api.PageQuery) (*dto.AdminUsersResponse, error)
	AdminUser(ctx context.Context, userID int) (*dto.UserResponse, error)
	AdminCreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.UserResponse, error)
	AdminUpdateUser(ctx context.Context, userID int, req dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	AdminDeleteUser(ctx context.Context, userID int) error
	AdminCourses(ctx context.Context, query api.PageQuery) (*dto.AdminCoursesResponse, error)
	AdminCourse(ctx context.Context, courseID int) (*dto.CourseResponse, error)
	AdminCreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	AdminUpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	AdminDeleteCourse(ctx context.Context, courseID int) error
	AdminCourseStudents(ctx context.Context, courseID int) (*dto.CourseStudentsResponse, error)
	AdminAddStudent(ctx context.Context, courseID, studentID int) error
	AdminRemoveStudent(ctx context.Context, courseID, studentID int) error
}

// AdminService orchestrates the admin console workflows. Listing workflows
// degrade to an empty page on failure so the console renders rather than
// hangs; mutating workflows re-fetch the affected listing after success.
type AdminService struct {
	api       adminAPI
	store     *store.Admin
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(apiClient adminAPI, st *store.Admin, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{api: apiClient, store: st, validator: validate, logger: logger}
}

// FetchOverview loads the console overview, degrading to a zero snapshot on
// failure.
func (s *AdminService) FetchOverview(ctx context.Context) (*models.SystemOverview, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminOverview(ctx)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load system overview"))
		s.store.SetOverview(emptyOverview())
		s.logger.Warn("admin overview fetch failed", zap.Error(err))
		return nil, err
	}
	data := resp.Data
	data.ActivityTypeDistribution = labels.RelabelDistribution(data.ActivityTypeDistribution)
	s.store.SetOverview(data)
	return &data, nil
}

// FetchUsers loads one page of users. A failed page resolves to an empty
// listing for the requested page.
func (s *AdminService) FetchUsers(ctx context.Context, query api.PageQuery) ([]models.User, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.AdminUsers(ctx, query)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load users"))
		s.store.SetUsers(token, nil, models.Pagination{CurrentPage: query.Page})
		return nil, err
	}
	s.store.SetUsers(token, resp.Users, resp.Pagination())
	return resp.Users, nil
}

// FetchUserDetail loads one user record.
func (s *AdminService) FetchUserDetail(ctx context.Context, userID int) (*models.User, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminUser(ctx, userID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load user detail"))
		return nil, err
	}
	s.store.SetCurrentUser(resp.User)
	user := resp.User
	return &user, nil
}

// CreateUser creates an account and refreshes the first user page.
func (s *AdminService) CreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminCreateUser(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to create user"))
		return nil, err
	}
	s.refreshUsers(ctx)
	user := resp.User
	return &user, nil
}

// UpdateUser patches an account and refreshes its detail record.
func (s *AdminService) UpdateUser(ctx context.Context, userID int, req dto.AdminUpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminUpdateUser(ctx, userID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update user"))
		return nil, err
	}
	s.store.SetCurrentUser(resp.User)
	user := resp.User
	return &user, nil
}

// DeleteUser removes an account and refreshes the user page.
func (s *AdminService) DeleteUser(ctx context.Context, userID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.AdminDeleteUser(ctx, userID); err != nil {
		s.store.SetError(failMessage(err, "failed to delete user"))
		return err
	}
	s.refreshUsers(ctx)
	return nil
}

// FetchCourses loads one page of courses, degrading to an empty page on
// failure.
func (s *AdminService) FetchCourses(ctx context.Context, query api.PageQuery) ([]models.Course, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.AdminCourses(ctx, query)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load courses"))
		s.store.SetCourses(token, nil, models.Pagination{CurrentPage: query.Page})
		return nil, err
	}
	s.store.SetCourses(token, resp.Courses, resp.Pagination())
	return resp.Courses, nil
}

// FetchCourseDetail loads one course record.
func (s *AdminService) FetchCourseDetail(ctx context.Context, courseID int) (*models.Course, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminCourse(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course detail"))
		return nil, err
	}
	s.store.SetCurrentCourse(resp.Course)
	course := resp.Course
	return &course, nil
}

// CreateCourse creates a course on behalf of an instructor and refreshes the
// course page.
func (s *AdminService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminCreateCourse(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to create course"))
		return nil, err
	}
	s.refreshCourses(ctx)
	course := resp.Course
	return &course, nil
}

// UpdateCourse patches a course and refreshes its detail record.
func (s *AdminService) UpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.AdminUpdateCourse(ctx, courseID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update course"))
		return nil, err
	}
	s.store.SetCurrentCourse(resp.Course)
	course := resp.Course
	return &course, nil
}

// DeleteCourse removes a course and refreshes the course page.
func (s *AdminService) DeleteCourse(ctx context.Context, courseID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.AdminDeleteCourse(ctx, courseID); err != nil {
		s.store.SetError(failMessage(err, "failed to delete course"))
		return err
	}
	s.refreshCourses(ctx)
	return nil
}

// FetchCourseStudents loads the roster of the managed course.
func (s *AdminService) FetchCourseStudents(ctx context.Context, courseID int) ([]models.User, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.AdminCourseStudents(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course students"))
		return nil, err
	}
	s.store.SetStudents(token, courseID, resp.Students)
	return resp.Students, nil
}

// AddStudentToCourse enrolls a student and re-fetches the roster.
func (s *AdminService) AddStudentToCourse(ctx context.Context, courseID, studentID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.AdminAddStudent(ctx, courseID, studentID); err != nil {
		s.store.SetError(failMessage(err, "failed to add student to course"))
		return err
	}
	return s.refreshStudents(ctx, courseID)
}

// RemoveStudentFromCourse drops a student and re-fetches the roster.
func (s *AdminService) RemoveStudentFromCourse(ctx context.Context, courseID, studentID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.AdminRemoveStudent(ctx, courseID, studentID); err != nil {
		s.store.SetError(failMessage(err, "failed to remove student from course"))
		return err
	}
	return s.refreshStudents(ctx, courseID)
}

func (s *AdminService) refreshUsers(ctx context.Context) {
	token := s.store.Begin()
	resp, err := s.api.AdminUsers(ctx, api.PageQuery{})
	if err != nil {
		s.logger.Warn("user list refresh failed", zap.Error(err))
		return
	}
	s.store.SetUsers(token, resp.Users, resp.Pagination())
}

func (s *AdminService) refreshCourses(ctx context.Context) {
	token := s.store.Begin()
	resp, err := s.api.AdminCourses(ctx, api.PageQuery{})
	if err != nil {
		s.logger.Warn("course list refresh failed", zap.Error(err))
		return
	}
	s.store.SetCourses(token, resp.Courses, resp.Pagination())
}

func (s *AdminService) refreshStudents(ctx context.Context, courseID int) error {
	token := s.store.Begin()
	resp, err := s.api.AdminCourseStudents(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to refresh course students"))
		return err
	}
	s.store.SetStudents(token, courseID, resp.Students)
	return nil
}

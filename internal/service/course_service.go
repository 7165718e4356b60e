package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type courseAPI interface {
	Courses(ctx context.Context) (*dto.CoursesResponse, error)
	Course(ctx context.Context, courseID int) (*dto.CourseResponse, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseID int) error
	EnrollStudent(ctx context.Context, courseID, userID int) error
	DropStudent(ctx context.Context, courseID, userID int) error
	EnrolledCourses(ctx context.Context, userID int) (*dto.CoursesResponse, error)
	CourseStudents(ctx context.Context, courseID int) (*dto.CourseStudentsResponse, error)
	CourseProgress(ctx context.Context, userID, courseID int) (*dto.CourseProgressResponse, error)
	UpdateCourseProgress(ctx context.Context, userID, courseID int, req dto.UpdateProgressRequest) (*dto.CourseProgressResponse, error)
}

// viewerSource exposes the logged-in user to workflows that need a viewer
// context. Reads may race with login/logout; callers tolerate a stale viewer.
type viewerSource interface {
	UserID() int
}

// CourseService orchestrates the course workflows.
type CourseService struct {
	api       courseAPI
	store     *store.Courses
	viewer    viewerSource
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(api courseAPI, st *store.Courses, viewer viewerSource, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{api: api, store: st, viewer: viewer, validator: validate, logger: logger}
}

// FetchAllCourses refreshes the canonical course list.
func (s *CourseService) FetchAllCourses(ctx context.Context) ([]models.Course, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.Courses(ctx)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load courses"))
		return nil, err
	}
	s.store.SetViewer(s.viewer.UserID())
	s.store.SetAll(token, resp.Courses)
	return resp.Courses, nil
}

// FetchTeachingCourses refreshes the canonical list and returns the viewer's
// teaching projection.
func (s *CourseService) FetchTeachingCourses(ctx context.Context) ([]models.Course, error) {
	if _, err := s.FetchAllCourses(ctx); err != nil {
		return nil, err
	}
	return s.store.Teaching(), nil
}

// FetchEnrolledCourses loads the viewer's enrolled courses. Enrollment is
// only materialised server-side, so this is a dedicated round trip.
func (s *CourseService) FetchEnrolledCourses(ctx context.Context) ([]models.Course, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	viewerID := s.viewer.UserID()
	token := s.store.Begin()
	resp, err := s.api.EnrolledCourses(ctx, viewerID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load enrolled courses"))
		return nil, err
	}
	s.store.SetViewer(viewerID)
	s.store.SetEnrolled(token, viewerID, resp.Courses)
	return resp.Courses, nil
}

// FetchAvailableCourses refreshes the canonical list and returns the joinable
// projection computed against the current enrolled set.
func (s *CourseService) FetchAvailableCourses(ctx context.Context) ([]models.Course, error) {
	if _, err := s.FetchAllCourses(ctx); err != nil {
		return nil, err
	}
	return s.store.Available(), nil
}

// FetchCourse loads one course's detail record.
func (s *CourseService) FetchCourse(ctx context.Context, courseID int) (*models.Course, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.Course(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course"))
		return nil, err
	}
	s.store.SetCurrent(resp.Course)
	course := resp.Course
	return &course, nil
}

// CreateCourse creates a course and appends it to the canonical list. The
// teaching projection picks it up on its next read since the instructor is
// already known.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.CreateCourse(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to create course"))
		return nil, err
	}
	s.store.Add(resp.Course)
	course := resp.Course
	return &course, nil
}

// UpdateCourse patches a course and propagates the server's record to every
// list holding the id.
func (s *CourseService) UpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UpdateCourse(ctx, courseID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update course"))
		return nil, err
	}
	s.store.Update(resp.Course)
	course := resp.Course
	return &course, nil
}

// DeleteCourse removes a course everywhere.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.DeleteCourse(ctx, courseID); err != nil {
		s.store.SetError(failMessage(err, "failed to delete course"))
		return err
	}
	s.store.Remove(courseID)
	return nil
}

// FetchCourseStudents loads the roster of one course.
func (s *CourseService) FetchCourseStudents(ctx context.Context, courseID int) ([]models.User, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.CourseStudents(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course students"))
		return nil, err
	}
	s.store.SetStudents(token, courseID, resp.Students)
	return resp.Students, nil
}

// EnrollStudent enrolls a user, then re-fetches the roster and the enrolled
// list rather than computing membership locally.
func (s *CourseService) EnrollStudent(ctx context.Context, courseID, userID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.EnrollStudent(ctx, courseID, userID); err != nil {
		s.store.SetError(failMessage(err, "failed to enroll student"))
		return err
	}
	return s.refreshMembership(ctx, courseID, userID)
}

// DropStudent removes a user from a course, then re-fetches the affected
// lists.
func (s *CourseService) DropStudent(ctx context.Context, courseID, userID int) error {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	if err := s.api.DropStudent(ctx, courseID, userID); err != nil {
		s.store.SetError(failMessage(err, "failed to drop student"))
		return err
	}
	return s.refreshMembership(ctx, courseID, userID)
}

func (s *CourseService) refreshMembership(ctx context.Context, courseID, userID int) error {
	token := s.store.Begin()
	students, err := s.api.CourseStudents(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to refresh course students"))
		return err
	}
	s.store.SetStudents(token, courseID, students.Students)

	// Only the affected user's own enrolled projection can change.
	if userID == s.viewer.UserID() {
		token = s.store.Begin()
		enrolled, err := s.api.EnrolledCourses(ctx, userID)
		if err != nil {
			s.store.SetError(failMessage(err, "failed to refresh enrolled courses"))
			return err
		}
		s.store.SetEnrolled(token, userID, enrolled.Courses)
	}
	return nil
}

// FetchCourseProgress loads the viewer's completion percentage for one course
// and reflects it on every held course record.
func (s *CourseService) FetchCourseProgress(ctx context.Context, courseID int) (*models.CourseProgress, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.CourseProgress(ctx, s.viewer.UserID(), courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load progress"))
		return nil, err
	}
	s.store.SetProgress(courseID, resp.Progress.ProgressPercent)
	progress := resp.Progress
	return &progress, nil
}

// UpdateCourseProgress syncs the viewer's completion percentage and reflects
// it on every held course record.
func (s *CourseService) UpdateCourseProgress(ctx context.Context, courseID int, req dto.UpdateProgressRequest) (*models.CourseProgress, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid progress payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UpdateCourseProgress(ctx, s.viewer.UserID(), courseID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update progress"))
		return nil, err
	}
	s.store.SetProgress(courseID, resp.Progress.ProgressPercent)
	progress := resp.Progress
	return &progress, nil
}

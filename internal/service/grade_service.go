package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type gradeAPI interface {
	GradeSettings(ctx context.Context, courseID int) (*dto.GradeSettingsResponse, error)
	UpdateGradeSettings(ctx context.Context, courseID int, req dto.UpdateGradeSettingsRequest) (*dto.GradeSettingsResponse, error)
	CourseGrades(ctx context.Context, courseID int) (*dto.CourseGradesResponse, error)
	UpdateStudentGrade(ctx context.Context, courseID, studentID int, req dto.UpdateStudentGradeRequest) (*dto.StudentGradeResponse, error)
	BatchUpdateGrades(ctx context.Context, courseID int, req dto.BatchUpdateGradesRequest) (*dto.BatchGradesResponse, error)
	UserGrades(ctx context.Context, userID int) (*dto.UserGradesResponse, error)
}

// weightSumTolerance absorbs float drift when fractional weights are summed
// against 100.
const weightSumTolerance = 1e-6

// GradeService orchestrates gradebook workflows.
type GradeService struct {
	api       gradeAPI
	store     *store.Grades
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(api gradeAPI, st *store.Grades, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{api: api, store: st, validator: validate, logger: logger}
}

// FetchGradeSettings loads a course's grade weighting.
func (s *GradeService) FetchGradeSettings(ctx context.Context, courseID int) (*models.GradeSettings, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.GradeSettings(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load grade settings"))
		return nil, err
	}
	s.store.SetSettings(token, resp.Settings)
	settings := resp.Settings
	return &settings, nil
}

// UpdateGradeSettings rebalances the weights. The two weights must sum to
// 100; the check runs client-side before the round trip.
func (s *GradeService) UpdateGradeSettings(ctx context.Context, courseID int, req dto.UpdateGradeSettingsRequest) (*models.GradeSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade settings payload")
	}
	if math.Abs(req.FinalExamWeight+req.RegularGradeWeight-100) > weightSumTolerance {
		return nil, appErrors.Clone(appErrors.ErrValidation, "grade weights must sum to 100")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.UpdateGradeSettings(ctx, courseID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update grade settings"))
		return nil, err
	}
	s.store.SetSettings(token, resp.Settings)
	settings := resp.Settings
	return &settings, nil
}

// FetchCourseGrades loads the full gradebook of a course.
func (s *GradeService) FetchCourseGrades(ctx context.Context, courseID int) ([]models.StudentGrade, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.CourseGrades(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course grades"))
		return nil, err
	}
	s.store.SetCourseGrades(token, courseID, resp.Grades, resp.Settings)
	return resp.Grades, nil
}

// UpdateStudentGrade overwrites one gradebook row.
func (s *GradeService) UpdateStudentGrade(ctx context.Context, courseID, studentID int, req dto.UpdateStudentGradeRequest) (*models.StudentGrade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UpdateStudentGrade(ctx, courseID, studentID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update student grade"))
		return nil, err
	}
	s.store.UpdateStudentGrade(resp.Grade)
	grade := resp.Grade
	return &grade, nil
}

// BatchUpdateGrades updates several rows, then re-fetches the gradebook: the
// server recomputes totals, so local patching would drift.
func (s *GradeService) BatchUpdateGrades(ctx context.Context, courseID int, req dto.BatchUpdateGradesRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch grade payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.BatchUpdateGrades(ctx, courseID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to batch update grades"))
		return 0, err
	}

	token := s.store.Begin()
	grades, err := s.api.CourseGrades(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to refresh course grades"))
		return resp.Updated, err
	}
	s.store.SetCourseGrades(token, courseID, grades.Grades, grades.Settings)
	return resp.Updated, nil
}

// FetchUserGrades loads a student's grades across all their courses.
func (s *GradeService) FetchUserGrades(ctx context.Context, userID int) ([]models.UserGrade, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.UserGrades(ctx, userID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load user grades"))
		return nil, err
	}
	s.store.SetUserGrades(token, userID, resp.Grades)
	return resp.Grades, nil
}

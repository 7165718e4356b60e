package service

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/edusphere/lms-client/pkg/errors"
	"github.com/edusphere/lms-client/pkg/export"
)

// Export formats supported by ExportGradebook.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// documentStore persists rendered export documents.
type documentStore interface {
	Save(filename string, data []byte) (string, error)
}

// ExportGradebook fetches the course gradebook plus its weighting and writes
// a rendered document. It returns the saved path.
func (s *GradeService) ExportGradebook(ctx context.Context, docs documentStore, courseID int, courseTitle, format string) (string, error) {
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	rows, err := s.FetchCourseGrades(ctx, courseID)
	if err != nil {
		return "", err
	}
	settings, err := s.FetchGradeSettings(ctx, courseID)
	if err != nil {
		return "", err
	}

	book := export.Gradebook{
		CourseTitle: courseTitle,
		Settings:    *settings,
		Rows:        rows,
	}

	var data []byte
	switch format {
	case ExportFormatCSV:
		data, err = export.RenderCSV(book)
	case ExportFormatPDF:
		data, err = export.RenderPDF(book)
	}
	if err != nil {
		return "", appErrors.Wrap(err, "EXPORT_ERROR", http.StatusInternalServerError, "failed to render gradebook")
	}

	filename := fmt.Sprintf("gradebook-course-%d.%s", courseID, format)
	path, err := docs.Save(filename, data)
	if err != nil {
		return "", appErrors.Wrap(err, "EXPORT_ERROR", http.StatusInternalServerError, "failed to save gradebook export")
	}
	s.logger.Info("gradebook exported", zap.Int("course_id", courseID), zap.String("path", path))
	return path, nil
}

package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// GradeSettings fetches a course's grade weighting.
func (c *Client) GradeSettings(ctx context.Context, courseID int) (*dto.GradeSettingsResponse, error) {
	var resp dto.GradeSettingsResponse
	if err := c.get(ctx, pathf("/courses/%d/grade-settings", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateGradeSettings rebalances the course grade weights.
func (c *Client) UpdateGradeSettings(ctx context.Context, courseID int, req dto.UpdateGradeSettingsRequest) (*dto.GradeSettingsResponse, error) {
	var resp dto.GradeSettingsResponse
	if err := c.put(ctx, pathf("/courses/%d/grade-settings", courseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CourseGrades fetches the full gradebook of a course plus its settings.
func (c *Client) CourseGrades(ctx context.Context, courseID int) (*dto.CourseGradesResponse, error) {
	var resp dto.CourseGradesResponse
	if err := c.get(ctx, pathf("/courses/%d/grades", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateStudentGrade overwrites one gradebook row.
func (c *Client) UpdateStudentGrade(ctx context.Context, courseID, studentID int, req dto.UpdateStudentGradeRequest) (*dto.StudentGradeResponse, error) {
	var resp dto.StudentGradeResponse
	if err := c.put(ctx, pathf("/courses/%d/students/%d/grades", courseID, studentID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BatchUpdateGrades updates several gradebook rows at once.
func (c *Client) BatchUpdateGrades(ctx context.Context, courseID int, req dto.BatchUpdateGradesRequest) (*dto.BatchGradesResponse, error) {
	var resp dto.BatchGradesResponse
	if err := c.post(ctx, pathf("/courses/%d/grades/batch", courseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserGrades fetches a student's grades across all their courses.
func (c *Client) UserGrades(ctx context.Context, userID int) (*dto.UserGradesResponse, error) {
	var resp dto.UserGradesResponse
	if err := c.get(ctx, pathf("/users/%d/grades", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

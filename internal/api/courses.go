package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// Courses lists every course visible to the caller.
func (c *Client) Courses(ctx context.Context) (*dto.CoursesResponse, error) {
	var resp dto.CoursesResponse
	if err := c.get(ctx, route("/courses"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Course fetches one course by id.
func (c *Client) Course(ctx context.Context, courseID int) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.get(ctx, pathf("/courses/%d", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.post(ctx, route("/courses"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCourse applies a partial patch and returns the updated record.
func (c *Client) UpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.put(ctx, pathf("/courses/%d", courseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, courseID int) error {
	return c.delete(ctx, pathf("/courses/%d", courseID), nil)
}

// EnrollStudent adds a student to a course roster.
func (c *Client) EnrollStudent(ctx context.Context, courseID, userID int) error {
	return c.post(ctx, pathf("/courses/%d/enroll/%d", courseID, userID), nil, nil)
}

// DropStudent removes a student from a course roster.
func (c *Client) DropStudent(ctx context.Context, courseID, userID int) error {
	return c.delete(ctx, pathf("/courses/%d/enroll/%d", courseID, userID), nil)
}

// EnrolledCourses lists the courses a user is enrolled in. Membership is only
// materialised server-side, so this cannot be derived from Courses.
func (c *Client) EnrolledCourses(ctx context.Context, userID int) (*dto.CoursesResponse, error) {
	var resp dto.CoursesResponse
	if err := c.get(ctx, pathf("/users/%d/courses", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CourseStudents lists the roster of one course.
func (c *Client) CourseStudents(ctx context.Context, courseID int) (*dto.CourseStudentsResponse, error) {
	var resp dto.CourseStudentsResponse
	if err := c.get(ctx, pathf("/courses/%d/students", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CourseProgress fetches one student's completion percentage for a course.
func (c *Client) CourseProgress(ctx context.Context, userID, courseID int) (*dto.CourseProgressResponse, error) {
	var resp dto.CourseProgressResponse
	if err := c.get(ctx, pathf("/users/%d/courses/%d/progress", userID, courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCourseProgress syncs a student's completion percentage for a course.
func (c *Client) UpdateCourseProgress(ctx context.Context, userID, courseID int, req dto.UpdateProgressRequest) (*dto.CourseProgressResponse, error) {
	var resp dto.CourseProgressResponse
	if err := c.put(ctx, pathf("/users/%d/courses/%d/progress", userID, courseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

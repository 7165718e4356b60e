package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edusphere/lms-client/internal/dto"
)

// PageQuery narrows paginated admin listings. Zero values fall back to the
// server defaults; Role and Status filter where non-empty.
type PageQuery struct {
	Page    int
	PerPage int
	Role    string
	Status  string
}

func (q PageQuery) encode() string {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Role != "" {
		values.Set("role", q.Role)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if encoded := values.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// AdminOverview fetches the admin console overview.
func (c *Client) AdminOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	var resp dto.OverviewResponse
	if err := c.get(ctx, route("/admin/overview"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminUsers lists users with pagination.
func (c *Client) AdminUsers(ctx context.Context, query PageQuery) (*dto.AdminUsersResponse, error) {
	var resp dto.AdminUsersResponse
	if err := c.get(ctx, route("/admin/users").query(query.encode()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminUser fetches one user's detail record.
func (c *Client) AdminUser(ctx context.Context, userID int) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.get(ctx, pathf("/admin/users/%d", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminCreateUser creates a user from the admin console.
func (c *Client) AdminCreateUser(ctx context.Context, req dto.AdminCreateUserRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.post(ctx, route("/admin/users"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminUpdateUser patches a user record.
func (c *Client) AdminUpdateUser(ctx context.Context, userID int, req dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.put(ctx, pathf("/admin/users/%d", userID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminDeleteUser removes a user.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int) error {
	return c.delete(ctx, pathf("/admin/users/%d", userID), nil)
}

// AdminCourses lists courses with pagination.
func (c *Client) AdminCourses(ctx context.Context, query PageQuery) (*dto.AdminCoursesResponse, error) {
	var resp dto.AdminCoursesResponse
	if err := c.get(ctx, route("/admin/courses").query(query.encode()), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminCourse fetches one course's detail record.
func (c *Client) AdminCourse(ctx context.Context, courseID int) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.get(ctx, pathf("/admin/courses/%d", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminCreateCourse creates a course on behalf of any instructor.
func (c *Client) AdminCreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.post(ctx, route("/admin/courses"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminUpdateCourse patches a course record.
func (c *Client) AdminUpdateCourse(ctx context.Context, courseID int, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	if err := c.put(ctx, pathf("/admin/courses/%d", courseID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminDeleteCourse removes a course.
func (c *Client) AdminDeleteCourse(ctx context.Context, courseID int) error {
	return c.delete(ctx, pathf("/admin/courses/%d", courseID), nil)
}

// AdminCourseStudents lists a course roster for the admin console.
func (c *Client) AdminCourseStudents(ctx context.Context, courseID int) (*dto.CourseStudentsResponse, error) {
	var resp dto.CourseStudentsResponse
	if err := c.get(ctx, pathf("/admin/courses/%d/students", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminAddStudent adds a student to a course roster.
func (c *Client) AdminAddStudent(ctx context.Context, courseID, studentID int) error {
	body := map[string]int{"student_id": studentID}
	return c.post(ctx, pathf("/admin/courses/%d/students", courseID), body, nil)
}

// AdminRemoveStudent removes a student from a course roster.
func (c *Client) AdminRemoveStudent(ctx context.Context, courseID, studentID int) error {
	return c.delete(ctx, pathf("/admin/courses/%d/students/%d", courseID, studentID), nil)
}

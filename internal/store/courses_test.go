package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/lms-client/internal/models"
)

func course(id, instructorID int, status models.CourseStatus) models.Course {
	return models.Course{ID: id, Title: "Course", InstructorID: instructorID, Status: status}
}

func TestCoursesProjectionsDisjoint(t *testing.T) {
	s := NewCourses()
	s.SetViewer(7)

	all := []models.Course{
		course(1, 7, models.CourseActive),
		course(2, 3, models.CourseActive),
		course(3, 3, models.CourseActive),
		course(4, 3, models.CourseArchived),
	}
	require.True(t, s.SetAll(s.Begin(), all))
	require.True(t, s.SetEnrolled(s.Begin(), 7, []models.Course{course(2, 3, models.CourseActive)}))

	teaching := s.Teaching()
	available := s.Available()

	require.Len(t, teaching, 1)
	assert.Equal(t, 1, teaching[0].ID)

	// available excludes taught, enrolled, and archived courses
	require.Len(t, available, 1)
	assert.Equal(t, 3, available[0].ID)

	assert.Equal(t, 7, s.EnrolledFor())

	taughtIDs := CourseIDSet(teaching)
	enrolledIDs := CourseIDSet(s.Enrolled())
	for _, c := range available {
		assert.False(t, taughtIDs[c.ID])
		assert.False(t, enrolledIDs[c.ID])
	}
}

func TestCoursesCreateByViewerLeavesAvailableUnchanged(t *testing.T) {
	s := NewCourses()
	s.SetViewer(7)
	require.True(t, s.SetAll(s.Begin(), []models.Course{course(2, 3, models.CourseActive)}))

	s.Add(course(9, 7, models.CourseActive))

	assert.Len(t, s.All(), 2)
	teaching := s.Teaching()
	require.Len(t, teaching, 1)
	assert.Equal(t, 9, teaching[0].ID)

	available := s.Available()
	require.Len(t, available, 1)
	assert.Equal(t, 2, available[0].ID)
}

func TestCoursesUpdatePreservesPosition(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetAll(s.Begin(), []models.Course{
		course(1, 3, models.CourseActive),
		course(2, 3, models.CourseActive),
		course(3, 3, models.CourseActive),
	}))

	updated := course(2, 3, models.CourseArchived)
	updated.Title = "Renamed"
	s.Update(updated)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[1].ID)
	assert.Equal(t, "Renamed", all[1].Title)
	assert.Equal(t, models.CourseArchived, all[1].Status)
}

func TestCoursesUpdateSkipsListsWithoutID(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetAll(s.Begin(), []models.Course{course(1, 3, models.CourseActive)}))
	require.True(t, s.SetEnrolled(s.Begin(), 7, []models.Course{course(5, 3, models.CourseActive)}))

	updated := course(1, 3, models.CourseActive)
	updated.Title = "Renamed"
	s.Update(updated)

	assert.Equal(t, "Renamed", s.All()[0].Title)
	assert.Equal(t, "Course", s.Enrolled()[0].Title)
	assert.Len(t, s.Enrolled(), 1)
}

func TestCoursesRemoveEverywhere(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetAll(s.Begin(), []models.Course{
		course(1, 3, models.CourseActive),
		course(2, 3, models.CourseActive),
	}))
	require.True(t, s.SetEnrolled(s.Begin(), 7, []models.Course{course(1, 3, models.CourseActive)}))
	s.SetCurrent(course(1, 3, models.CourseActive))
	require.True(t, s.SetStudents(s.Begin(), 1, []models.User{{ID: 11}}))

	s.Remove(1)

	require.Len(t, s.All(), 1)
	assert.Equal(t, 2, s.All()[0].ID)
	assert.Empty(t, s.Enrolled())
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Students())
	assert.Zero(t, s.StudentsFor())
}

func TestCoursesStaleListReplacementRejected(t *testing.T) {
	s := NewCourses()

	first := s.Begin()
	second := s.Begin()

	require.True(t, s.SetAll(second, []models.Course{course(2, 3, models.CourseActive)}))
	assert.False(t, s.SetAll(first, []models.Course{course(1, 3, models.CourseActive)}))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].ID)
}

func TestCoursesSetProgress(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetAll(s.Begin(), []models.Course{course(1, 3, models.CourseActive)}))
	require.True(t, s.SetEnrolled(s.Begin(), 7, []models.Course{course(1, 3, models.CourseActive)}))
	s.SetCurrent(course(1, 3, models.CourseActive))

	s.SetProgress(1, 42.5)

	require.NotNil(t, s.All()[0].Progress)
	assert.Equal(t, 42.5, *s.All()[0].Progress)
	require.NotNil(t, s.Enrolled()[0].Progress)
	assert.Equal(t, 42.5, *s.Enrolled()[0].Progress)
	require.NotNil(t, s.Current().Progress)
	assert.Equal(t, 42.5, *s.Current().Progress)
}

func TestCoursesRosterMutationsRespectTag(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetStudents(s.Begin(), 5, []models.User{{ID: 11}}))

	s.AddStudent(5, models.User{ID: 12})
	s.AddStudent(6, models.User{ID: 13})
	require.Len(t, s.Students(), 2)

	s.RemoveStudent(6, 11)
	require.Len(t, s.Students(), 2)

	s.RemoveStudent(5, 11)
	students := s.Students()
	require.Len(t, students, 1)
	assert.Equal(t, 12, students[0].ID)
}

func TestCoursesLoadingCountsOverlappingWorkflows(t *testing.T) {
	s := NewCourses()
	assert.False(t, s.Loading())

	s.StartWork()
	s.StartWork()
	assert.True(t, s.Loading())

	s.FinishWork()
	assert.True(t, s.Loading())

	s.FinishWork()
	assert.False(t, s.Loading())
}

func TestCoursesErrorRoundTrip(t *testing.T) {
	s := NewCourses()
	assert.Empty(t, s.Err())

	s.SetError("failed to load courses")
	assert.Equal(t, "failed to load courses", s.Err())

	s.ClearError()
	assert.Empty(t, s.Err())
}

func TestCoursesGettersReturnCopies(t *testing.T) {
	s := NewCourses()
	require.True(t, s.SetAll(s.Begin(), []models.Course{course(1, 3, models.CourseActive)}))

	all := s.All()
	all[0].Title = "mutated"

	assert.Equal(t, "Course", s.All()[0].Title)
}

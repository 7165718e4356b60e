package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/lms-client/internal/models"
)

func score(v float64) *float64 { return &v }

func TestGradesUpdateStudentGradeKeepsRosterInfo(t *testing.T) {
	s := NewGrades()
	require.True(t, s.SetCourseGrades(s.Begin(), 3, []models.StudentGrade{
		{CourseID: 3, UserID: 11, Student: &models.GradeStudent{ID: 11, Username: "bob"}},
		{CourseID: 3, UserID: 12, Student: &models.GradeStudent{ID: 12, Username: "carol"}},
	}, models.GradeSettings{CourseID: 3, FinalExamWeight: 60, RegularGradeWeight: 40}))

	s.UpdateStudentGrade(models.StudentGrade{
		CourseID:       3,
		UserID:         12,
		FinalExamScore: score(88),
		TotalScore:     score(81.2),
	})

	grades := s.CourseGrades()
	require.Len(t, grades, 2)
	assert.Equal(t, 12, grades[1].UserID)
	require.NotNil(t, grades[1].FinalExamScore)
	assert.Equal(t, 88.0, *grades[1].FinalExamScore)
	require.NotNil(t, grades[1].Student)
	assert.Equal(t, "carol", grades[1].Student.Username)
}

func TestGradesUpdateForOtherCourseIsNoOp(t *testing.T) {
	s := NewGrades()
	require.True(t, s.SetCourseGrades(s.Begin(), 3, []models.StudentGrade{
		{CourseID: 3, UserID: 11},
	}, models.GradeSettings{CourseID: 3}))

	s.UpdateStudentGrade(models.StudentGrade{CourseID: 9, UserID: 11, TotalScore: score(50)})

	assert.Nil(t, s.CourseGrades()[0].TotalScore)
}

func TestGradesStaleGradebookRejected(t *testing.T) {
	s := NewGrades()

	first := s.Begin()
	second := s.Begin()

	require.True(t, s.SetCourseGrades(second, 4, nil, models.GradeSettings{CourseID: 4}))
	assert.False(t, s.SetCourseGrades(first, 3, nil, models.GradeSettings{CourseID: 3}))

	assert.Equal(t, 4, s.CourseGradesFor())
	require.NotNil(t, s.Settings())
	assert.Equal(t, 4, s.Settings().CourseID)
}

func TestGradesUserGradesTagged(t *testing.T) {
	s := NewGrades()
	require.True(t, s.SetUserGrades(s.Begin(), 7, []models.UserGrade{
		{CourseID: 1, CourseTitle: "Algebra", TotalScore: score(91)},
	}))

	assert.Equal(t, 7, s.UserGradesFor())
	grades := s.UserGrades()
	require.Len(t, grades, 1)
	assert.Equal(t, "Algebra", grades[0].CourseTitle)
}

// Package export renders course gradebooks into downloadable documents.
package export

import (
	"fmt"
	"strconv"

	"github.com/edusphere/lms-client/internal/models"
)

// Gradebook is the printable view of one course's grades.
type Gradebook struct {
	CourseTitle string
	Settings    models.GradeSettings
	Rows        []models.StudentGrade
}

var gradebookHeaders = []string{
	"Student ID", "Username", "Email", "Regular Grade", "Final Exam", "Total", "Comment",
}

// records flattens gradebook rows into string cells in header order.
// Ungraded scores render as empty cells rather than zeros.
func (g Gradebook) records() [][]string {
	records := make([][]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		var username, email string
		if row.Student != nil {
			username = row.Student.Username
			email = row.Student.Email
		}
		records = append(records, []string{
			strconv.Itoa(row.UserID),
			username,
			email,
			formatScore(row.RegularGrade),
			formatScore(row.FinalExamScore),
			formatScore(row.TotalScore),
			row.Comment,
		})
	}
	return records
}

// subtitle describes the grading weights applied to the course.
func (g Gradebook) subtitle() string {
	return fmt.Sprintf("Regular %.0f%% / Final Exam %.0f%%",
		g.Settings.RegularGradeWeight, g.Settings.FinalExamWeight)
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

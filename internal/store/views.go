package store

import "github.com/edusphere/lms-client/internal/models"

// Derived course projections are recomputed from the canonical list on every
// read instead of being maintained as independent copies, so they can never
// diverge from it.

// TeachingCourses filters the canonical list down to the viewer's own
// courses.
func TeachingCourses(all []models.Course, viewerID int) []models.Course {
	out := make([]models.Course, 0, len(all))
	for _, c := range all {
		if c.InstructorID == viewerID {
			out = append(out, c)
		}
	}
	return out
}

// AvailableCourses filters the canonical list down to active courses the
// viewer neither teaches nor is enrolled in. Disjointness with both the
// enrolled and teaching projections holds by construction.
func AvailableCourses(all []models.Course, enrolledIDs map[int]bool, viewerID int) []models.Course {
	out := make([]models.Course, 0, len(all))
	for _, c := range all {
		if c.Status != models.CourseActive {
			continue
		}
		if enrolledIDs[c.ID] {
			continue
		}
		if c.InstructorID == viewerID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CourseIDSet collects the ids of a course list.
func CourseIDSet(courses []models.Course) map[int]bool {
	ids := make(map[int]bool, len(courses))
	for _, c := range courses {
		ids[c.ID] = true
	}
	return ids
}

// replaceCourse swaps the entry matching c.ID in place, preserving position.
// Lists not containing the id are deliberately left unchanged: each fetched
// list is filtered at its source, not auto-joined.
func replaceCourse(list []models.Course, c models.Course) {
	for i := range list {
		if list[i].ID == c.ID {
			list[i] = c
			return
		}
	}
}

// removeCourse filters the id out, preserving order.
func removeCourse(list []models.Course, id int) []models.Course {
	out := list[:0]
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func replaceActivity(list []models.Activity, a models.Activity) {
	for i := range list {
		if list[i].ID == a.ID {
			list[i] = a
			return
		}
	}
}

func removeUser(list []models.User, id int) []models.User {
	out := list[:0]
	for _, u := range list {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

func copyCourses(list []models.Course) []models.Course {
	out := make([]models.Course, len(list))
	copy(out, list)
	return out
}

func copyActivities(list []models.Activity) []models.Activity {
	out := make([]models.Activity, len(list))
	copy(out, list)
	return out
}

func copyUsers(list []models.User) []models.User {
	out := make([]models.User, len(list))
	copy(out, list)
	return out
}

// Package labels maps activity types to display names and chart colors.
package labels

import "github.com/edusphere/lms-client/internal/models"

var activityTypeNames = map[models.ActivityType]string{
	models.ActivityAssignment:   "Assignment",
	models.ActivityDiscussion:   "Discussion",
	models.ActivityDocumentRead: "Document Reading",
	models.ActivityQuiz:         "Quiz",
	models.ActivityVideoWatch:   "Video Watching",
}

var activityTypeColors = map[models.ActivityType]string{
	models.ActivityAssignment:   "#6366F1",
	models.ActivityDiscussion:   "#84CC16",
	models.ActivityDocumentRead: "#FACC15",
	models.ActivityQuiz:         "#EF4444",
	models.ActivityVideoWatch:   "#38BDF8",
}

// defaultColor is used for activity types without a chart color.
const defaultColor = "#909399"

// ActivityTypeName returns the display name for an activity type. Unknown
// types pass through unchanged.
func ActivityTypeName(t models.ActivityType) string {
	if name, ok := activityTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// ActivityTypeColor returns the chart color for an activity type.
func ActivityTypeColor(t models.ActivityType) string {
	if color, ok := activityTypeColors[t]; ok {
		return color
	}
	return defaultColor
}

// RelabelDistribution rewrites a per-type count map to use display names as
// keys. A nil map yields an empty map.
func RelabelDistribution(dist map[string]int) map[string]int {
	out := make(map[string]int, len(dist))
	for key, count := range dist {
		out[ActivityTypeName(models.ActivityType(key))] = count
	}
	return out
}

package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edusphere/lms-client/internal/models"
)

func TestActivityTypeName(t *testing.T) {
	assert.Equal(t, "Assignment", ActivityTypeName(models.ActivityAssignment))
	assert.Equal(t, "Document Reading", ActivityTypeName(models.ActivityDocumentRead))
	assert.Equal(t, "mystery", ActivityTypeName(models.ActivityType("mystery")))
}

func TestActivityTypeColor(t *testing.T) {
	assert.Equal(t, "#EF4444", ActivityTypeColor(models.ActivityQuiz))
	assert.Equal(t, defaultColor, ActivityTypeColor(models.ActivityType("mystery")))
}

func TestRelabelDistribution(t *testing.T) {
	out := RelabelDistribution(map[string]int{
		"assignment":  4,
		"video_watch": 2,
		"mystery":     1,
	})
	assert.Equal(t, map[string]int{
		"Assignment":     4,
		"Video Watching": 2,
		"mystery":        1,
	}, out)

	assert.Empty(t, RelabelDistribution(nil))
	assert.NotNil(t, RelabelDistribution(nil))
}

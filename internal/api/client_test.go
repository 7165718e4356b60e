package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/pkg/config"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{
		BaseURL: srv.URL,
		Prefix:  "/api",
		Timeout: 5 * time.Second,
	}, opts...)
}

func fakeBackend() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestClientAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	r := fakeBackend()
	r.GET("/api/courses", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotReqID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, gin.H{"status": "success", "courses": []gin.H{{"id": 1, "title": "Algebra"}}})
	})
	client := newTestClient(t, r, WithTokenSource(staticToken("token-abc")))

	resp, err := client.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Algebra", resp.Courses[0].Title)

	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClientSkipsAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	r := fakeBackend()
	r.GET("/api/courses", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{"status": "success", "courses": []gin.H{}})
	})
	client := newTestClient(t, r, WithTokenSource(staticToken("")))

	_, err := client.Courses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedInvokesHookAndTagsError(t *testing.T) {
	r := fakeBackend()
	r.GET("/api/auth/user", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "token expired"})
	})
	client := newTestClient(t, r)

	var hookCalls int
	client.SetUnauthorizedHook(func() { hookCalls++ })

	_, err := client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, hookCalls)
	assert.True(t, appErrors.IsUnauthorized(err))
	assert.Equal(t, "token expired", appErrors.FromError(err).Message)
}

func TestClientNotFoundTagged(t *testing.T) {
	r := fakeBackend()
	r.GET("/api/courses/99", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "course not found"})
	})
	client := newTestClient(t, r)

	_, err := client.Course(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, "course not found", appErrors.FromError(err).Message)
}

func TestClientNonJSONErrorBodyFallsBackToStatusText(t *testing.T) {
	r := fakeBackend()
	r.GET("/api/courses", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "<html>bad gateway</html>")
	})
	client := newTestClient(t, r)

	_, err := client.Courses(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Bad Gateway", appErrors.FromError(err).Message)
}

func TestClientConnectionFailureWrappedAsTransport(t *testing.T) {
	client := New(config.APIConfig{
		BaseURL: "http://127.0.0.1:1",
		Prefix:  "/api",
		Timeout: 200 * time.Millisecond,
	})

	_, err := client.Courses(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTransport.Code, appErrors.FromError(err).Code)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	var got dto.LoginRequest
	r := fakeBackend()
	r.POST("/api/auth/login", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&got))
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"token":  "token-abc",
			"user":   gin.H{"id": 7, "username": "alice", "role": "student"},
		})
	})
	client := newTestClient(t, r)

	resp, err := client.Login(context.Background(), dto.LoginRequest{Account: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Account)
	assert.Equal(t, "token-abc", resp.Token)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
}

func TestClientMetricsObserveRequests(t *testing.T) {
	r := fakeBackend()
	r.GET("/api/courses", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "courses": []gin.H{}})
	})
	metrics := NewMetrics()
	client := newTestClient(t, r, WithMetrics(metrics))

	_, err := client.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), metrics.RequestCount())
	assert.Greater(t, metrics.AvgLatency(), time.Duration(0))
}

func TestClientMetricsLabelByRouteNotEntityID(t *testing.T) {
	r := fakeBackend()
	r.GET("/api/courses/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "course": gin.H{"id": 1}})
	})
	metrics := NewMetrics()
	client := newTestClient(t, r, WithMetrics(metrics))

	for id := 1; id <= 5; id++ {
		_, err := client.Course(context.Background(), id)
		require.NoError(t, err)
	}

	families, err := metrics.registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "api_requests_total" {
			continue
		}
		require.Len(t, family.GetMetric(), 1)
		series := family.GetMetric()[0]
		assert.Equal(t, float64(5), series.GetCounter().GetValue())
		for _, label := range series.GetLabel() {
			if label.GetName() == "path" {
				assert.Equal(t, "/courses/%d", label.GetValue())
			}
		}
		return
	}
	t.Fatal("api_requests_total family not gathered")
}

func TestClientEnrollHitsExpectedRoute(t *testing.T) {
	var hit bool
	r := fakeBackend()
	r.POST("/api/courses/3/enroll/7", func(c *gin.Context) {
		hit = true
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "enrolled"})
	})
	client := newTestClient(t, r)

	require.NoError(t, client.EnrollStudent(context.Background(), 3, 7))
	assert.True(t, hit)
}

func TestClientUsersDirectoryAndProfilePatch(t *testing.T) {
	var gotRole string
	var patched dto.UpdateProfileRequest
	r := fakeBackend()
	r.GET("/api/users", func(c *gin.Context) {
		gotRole = c.Query("role")
		c.JSON(http.StatusOK, gin.H{"status": "success", "users": []gin.H{{"id": 7, "username": "alice"}}})
	})
	r.GET("/api/users/7", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "user": gin.H{"id": 7, "username": "alice"}})
	})
	r.PUT("/api/users/7", func(c *gin.Context) {
		require.NoError(t, c.ShouldBindJSON(&patched))
		c.JSON(http.StatusOK, gin.H{"status": "success", "user": gin.H{"id": 7, "username": "alice", "bio": "hi"}})
	})
	client := newTestClient(t, r)

	users, err := client.Users(context.Background(), "?role=student")
	require.NoError(t, err)
	assert.Equal(t, "student", gotRole)
	require.Len(t, users.Users, 1)

	one, err := client.User(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", one.User.Username)

	bio := "hi"
	resp, err := client.UpdateUser(context.Background(), 7, dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, patched.Bio)
	assert.Equal(t, "hi", *patched.Bio)
	assert.Equal(t, "hi", resp.User.Bio)
}

func TestClientAdminUsersEncodesQuery(t *testing.T) {
	var gotPage, gotRole string
	r := fakeBackend()
	r.GET("/api/admin/users", func(c *gin.Context) {
		gotPage = c.Query("page")
		gotRole = c.Query("role")
		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"users":        []gin.H{{"id": 1, "username": "alice"}},
			"total":        1,
			"pages":        1,
			"current_page": 2,
		})
	})
	client := newTestClient(t, r)

	resp, err := client.AdminUsers(context.Background(), PageQuery{Page: 2, Role: "student"})
	require.NoError(t, err)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "student", gotRole)
	assert.Equal(t, 2, resp.Pagination().CurrentPage)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/api"
	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/service"
	"github.com/edusphere/lms-client/internal/session"
	"github.com/edusphere/lms-client/internal/store"
	"github.com/edusphere/lms-client/pkg/avatar"
	"github.com/edusphere/lms-client/pkg/config"
	"github.com/edusphere/lms-client/pkg/export"
	"github.com/edusphere/lms-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	sessions, err := session.NewFileStore(cfg.Session.Path)
	if err != nil {
		logr.Sugar().Fatalw("session store init failed", "error", err)
	}

	metrics := api.NewMetrics()
	if cfg.Metrics.Enabled {
		go func() {
			logr.Sugar().Infow("metrics listener starting", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, metrics.Handler()); err != nil {
				logr.Sugar().Warnw("metrics listener stopped", "error", err)
			}
		}()
	}

	authStore := store.NewAuth()
	courseStore := store.NewCourses()
	activityStore := store.NewActivities()
	analyticsStore := store.NewAnalytics()

	client := api.New(cfg.API,
		api.WithLogger(logr),
		api.WithMetrics(metrics),
		api.WithTokenSource(authStore),
	)

	validate := validator.New()

	auth := service.NewAuthService(client, authStore, sessions, validate, logr)
	courses := service.NewCourseService(client, courseStore, authStore, validate, logr)
	activities := service.NewActivityService(client, activityStore, validate, logr)
	analytics := service.NewAnalyticsService(client, analyticsStore, logr)
	grades := service.NewGradeService(client, store.NewGrades(), validate, logr)

	docs, err := export.NewStore(cfg.Export.Dir)
	if err != nil {
		logr.Sugar().Fatalw("export store init failed", "error", err)
	}

	client.SetUnauthorizedHook(auth.ForceLogout)

	if err := auth.Hydrate(); err != nil {
		logr.Sugar().Warnw("session hydrate failed", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !authStore.IsLoggedIn() {
		req := dto.LoginRequest{
			Account:  os.Getenv("LMS_ACCOUNT"),
			Password: os.Getenv("LMS_PASSWORD"),
		}
		user, err := auth.Login(ctx, req)
		if err != nil {
			logr.Sugar().Fatalw("login failed", "error", err)
		}
		logr.Sugar().Infow("logged in", "user_id", user.ID, "role", user.Role)
	}

	if _, err := courses.FetchAllCourses(ctx); err != nil {
		logr.Sugar().Fatalw("course fetch failed", "error", err)
	}

	userID := authStore.UserID()
	if _, err := activities.FetchUserActivities(ctx, userID); err != nil {
		logr.Sugar().Warnw("activity fetch failed", "error", err)
	}
	if _, err := analytics.FetchUserAnalytics(ctx, userID); err != nil {
		logr.Sugar().Warnw("analytics fetch failed", "error", err)
	}

	if user := authStore.CurrentUser(); user != nil {
		logr.Info("session ready",
			zap.String("username", user.Username),
			zap.String("role", string(user.Role)),
			zap.String("avatar", avatar.URL(user.Avatar, client.BaseURL())),
		)
	}
	logr.Info("course projections",
		zap.Int("all", len(courseStore.All())),
		zap.Int("enrolled", len(courseStore.Enrolled())),
		zap.Int("teaching", len(courseStore.Teaching())),
		zap.Int("available", len(courseStore.Available())),
	)
	logr.Info("activity feed", zap.Int("count", len(activityStore.UserActivities())))

	if user := authStore.CurrentUser(); user != nil && user.Role == models.RoleAdmin {
		adminStore := store.NewAdmin()
		admin := service.NewAdminService(client, adminStore, validate, logr)
		if _, err := admin.FetchOverview(ctx); err != nil {
			logr.Sugar().Warnw("admin overview fetch failed", "error", err)
		}
		if _, err := admin.FetchUsers(ctx, api.PageQuery{Page: 1, PerPage: 20}); err != nil {
			logr.Sugar().Warnw("admin user listing failed", "error", err)
		}
		if overview := adminStore.Overview(); overview != nil {
			logr.Info("admin overview",
				zap.Int("users", overview.UserCounts.Total),
				zap.Int("courses", overview.CourseCounts.Total),
			)
		}
		logr.Info("admin user listing",
			zap.Int("count", len(adminStore.Users())),
			zap.Int("pages", adminStore.UsersPagination().Pages),
		)
	}

	if raw := os.Getenv("LMS_EXPORT_COURSE"); raw != "" {
		courseID, err := strconv.Atoi(raw)
		if err != nil {
			logr.Sugar().Fatalw("invalid LMS_EXPORT_COURSE", "value", raw, "error", err)
		}
		title := "course"
		for _, c := range courseStore.All() {
			if c.ID == courseID {
				title = c.Title
				break
			}
		}
		path, err := grades.ExportGradebook(ctx, docs, courseID, title, service.ExportFormatCSV)
		if err != nil {
			logr.Sugar().Fatalw("gradebook export failed", "course_id", courseID, "error", err)
		}
		logr.Info("gradebook exported", zap.Int("course_id", courseID), zap.String("path", path))
	}
}

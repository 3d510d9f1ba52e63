package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"casaflow/internal/activity"
	c "casaflow/internal/cache"
	"casaflow/internal/configuration"
	"casaflow/internal/events"
	h "casaflow/internal/helpers"
	"casaflow/internal/messaging"
	m "casaflow/internal/middlewares"
	"casaflow/internal/models"
	"casaflow/internal/notifier"
	"casaflow/internal/ratelimit"
	"casaflow/internal/services"
	"casaflow/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventsChannel bundles the in-process publisher and subscriber pair for the
// notifications topic. Both ends share one GoChannel.
type EventsChannel struct {
	Publisher  messaging.IPublisher
	Subscriber messaging.ISubscriber
}

func NewEventsChannel() *EventsChannel {
	channel := messaging.NewMemoryChannel()
	return &EventsChannel{
		Publisher:  messaging.NewMemoryPublisher(channel, configuration.EventsNotifications),
		Subscriber: messaging.NewMemorySubscriber(channel, configuration.EventsNotifications),
	}
}

func CreateAdminUser(db *gorm.DB, config models.Configuration) {
	hash, err := h.CreateHash(config.App.AdminPassword)
	if err != nil {
		zap.L().Fatal("Failed to hash admin password", zap.Error(err))
	}

	adminUser := models.User{
		Email:          config.App.AdminEmail,
		HashedPassword: hash,
		Role:           models.RoleAdmin,
	}

	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"hashed_password"}),
	}).Create(&adminUser)
}

// StartWorkers launches the notifications consumer and the attempt log
// cleanup loop.
func StartWorkers(
	ctx context.Context,
	config models.Configuration,
	db *gorm.DB,
	eventsChannel *EventsChannel,
	notify notifier.INotifier,
) {
	eventParams := &events.EventParams{
		WebURL:   config.App.WebURL,
		Notifier: notify,
	}

	go events.HandleEvents(eventParams, eventsChannel.Subscriber.Subscribe())
	zap.L().Info("Started notifications worker")

	window := time.Duration(config.Waitlist.WindowHours) * time.Hour
	cleanupWorker := &workers.AttemptsCleanupWorker{
		Store:             ratelimit.NewGormAttemptStore(db),
		Window:            window,
		RetentionMultiple: config.Waitlist.RetentionMultiple,
		RunInterval:       time.Duration(config.Waitlist.CleanupIntervalHours) * time.Hour,
	}
	go cleanupWorker.Start(ctx)
}

func StartHTTPServer(
	config models.Configuration,
	db *gorm.DB,
	cache c.ICache,
	activityLogger activity.IActivityLogger,
	eventsChannel *EventsChannel,
) {
	r := chi.NewRouter()

	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	window := time.Duration(config.Waitlist.WindowHours) * time.Hour
	waitlistLimiter := ratelimit.NewLimiter(
		ratelimit.NewGormAttemptStore(db),
		config.Waitlist.Ceiling,
		window,
	)

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(m.Authenticate(config.App.JWTSecret))
		apiRouter.Use(m.RateLimit(cache, config.App.RequestsPerMinute, config.App.TrustedProxies))

		apiRouter.Mount("/auth", services.AuthService{
			DB:                db,
			JWTSecret:         config.App.JWTSecret,
			AccessTokenExpiry: config.App.AccessTokenExpiry,
		}.Routes())

		apiRouter.Mount("/properties", services.PropertyService{
			DB:             db,
			ActivityLogger: activityLogger,
		}.Routes())

		apiRouter.Mount("/tenants", services.TenantService{
			DB:             db,
			ActivityLogger: activityLogger,
		}.Routes())

		apiRouter.Mount("/leases", services.LeaseService{
			DB:             db,
			ActivityLogger: activityLogger,
		}.Routes())

		apiRouter.Mount("/maintenance", services.MaintenanceService{
			DB:             db,
			Publisher:      eventsChannel.Publisher,
			ActivityLogger: activityLogger,
		}.Routes())

		apiRouter.Mount("/waitlist", services.WaitlistService{
			DB:             db,
			Limiter:        waitlistLimiter,
			Publisher:      eventsChannel.Publisher,
			ActivityLogger: activityLogger,
			TrustedProxies: config.App.TrustedProxies,
		}.Routes())

		apiRouter.Mount("/admin", services.AdminService{
			ActivityLogger: activityLogger,
		}.Routes())
	})

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}

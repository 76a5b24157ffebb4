package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "pet-care-companion/docs"
	ls "pet-care-companion/internal/adapters/storage/localstore"
	mem "pet-care-companion/internal/adapters/storage/memory"
	pg "pet-care-companion/internal/adapters/storage/postgres"
	"pet-care-companion/internal/domain/activity"
	"pet-care-companion/internal/domain/chat"
	"pet-care-companion/internal/domain/documents"
	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/notifications"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/telemedicine"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, mira DB_DSN.
	DB *sql.DB

	// Directorio para los snapshots en disco. Vacío = solo memoria.
	DataDir string

	Log logger.Logger
}

// App expone el handler HTTP y los servicios que el proceso necesita fuera
// del router (scheduler de recordatorios, cierre del chat).
type App struct {
	Handler http.Handler

	Pets          *pets.Service
	Events        *events.Service
	Notifications *notifications.Service
	Chat          *chat.Service
}

func NewApp(opts Options) *App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo   pets.Repository
		eventRepo events.Repository
		docRepo   documents.Repository
		notifRepo notifications.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to local storage", map[string]any{"err": err.Error()})
			}
		}
	}

	now := time.Now()

	switch {
	case db != nil:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx, db, now); err != nil {
			log.Error("postgres migration failed", map[string]any{"err": err.Error()})
		}
		petRepo = pg.NewPetsRepo(db)
		eventRepo = pg.NewEventsRepo(db)
		docRepo = pg.NewDocumentsRepo(db)
		notifRepo = pg.NewNotificationsRepo(db)

	case opts.DataDir != "":
		store := ls.Open(opts.DataDir, log)
		petRepo = ls.NewPetRepo(store)
		eventRepo = ls.NewEventRepo(store, now)
		docRepo = ls.NewDocumentRepo(store)
		notifRepo = ls.NewNotificationRepo(store)

	default:
		petRepo = mem.NewPetRepo()
		eventRepo = mem.NewEventRepo(now)
		docRepo = mem.NewDocumentRepo()
		notifRepo = mem.NewNotificationRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	eventsSvc := events.NewService(eventRepo)
	notifSvc := notifications.NewService(eventsSvc, petsSvc, notifRepo, log)
	docsSvc := documents.NewService(docRepo)
	activitySvc := activity.NewService(petsSvc)
	chatSvc := chat.NewService()

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	events.RegisterRoutes(r, eventsSvc, petsSvc)
	notifications.RegisterRoutes(r, notifSvc)
	documents.RegisterRoutes(r, docsSvc, petsSvc)
	activity.RegisterRoutes(r, activitySvc)
	chat.RegisterRoutes(r, chatSvc)
	telemedicine.RegisterRoutes(r)

	return &App{
		Handler:       r,
		Pets:          petsSvc,
		Events:        eventsSvc,
		Notifications: notifSvc,
		Chat:          chatSvc,
	}
}

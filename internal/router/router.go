package router

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	mem "github.com/jeroenvanhattem/vethub/internal/adapters/storage/memory"
	pg "github.com/jeroenvanhattem/vethub/internal/adapters/storage/postgres"
	"github.com/jeroenvanhattem/vethub/internal/domain/appointments"
	"github.com/jeroenvanhattem/vethub/internal/domain/owners"
	"github.com/jeroenvanhattem/vethub/internal/domain/pets"
	"github.com/jeroenvanhattem/vethub/internal/domain/pettypes"
	"github.com/jeroenvanhattem/vethub/internal/domain/specialties"
	"github.com/jeroenvanhattem/vethub/internal/domain/vaccinations"
	"github.com/jeroenvanhattem/vethub/internal/domain/vets"
	"github.com/jeroenvanhattem/vethub/internal/domain/visits"
	"github.com/jeroenvanhattem/vethub/internal/middleware"
	"github.com/jeroenvanhattem/vethub/internal/platform/httpx"
	"github.com/jeroenvanhattem/vethub/internal/platform/logger"
	"github.com/jeroenvanhattem/vethub/internal/platform/metrics"
	"github.com/jeroenvanhattem/vethub/internal/ports/tx"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Logger base; nil = descartar.
	Logger *slog.Logger

	MetricsEnabled bool
}

type stores struct {
	owners       owners.Repository
	petTypes     pettypes.Repository
	pets         pets.Repository
	visits       visits.Repository
	vaccinations vaccinations.Repository
	specialties  specialties.Repository
	vets         vets.Repository
	appointments appointments.Repository
	tx           tx.Manager
}

func postgresStores(db *sql.DB) stores {
	return stores{
		owners:       pg.NewOwnersRepo(db),
		petTypes:     pg.NewPetTypesRepo(db),
		pets:         pg.NewPetsRepo(db),
		visits:       pg.NewVisitsRepo(db),
		vaccinations: pg.NewVaccinationsRepo(db),
		specialties:  pg.NewSpecialtiesRepo(db),
		vets:         pg.NewVetsRepo(db),
		appointments: pg.NewAppointmentsRepo(db),
		tx:           pg.NewTxManager(db),
	}
}

func memoryStores() stores {
	db := mem.NewDB()
	return stores{
		owners:       mem.NewOwnerRepo(db),
		petTypes:     mem.NewPetTypeRepo(db),
		pets:         mem.NewPetRepo(db),
		visits:       mem.NewVisitRepo(db),
		vaccinations: mem.NewVaccinationRepo(db),
		specialties:  mem.NewSpecialtyRepo(db),
		vets:         mem.NewVetRepo(db),
		appointments: mem.NewAppointmentRepo(db),
		tx:           mem.NewTxManager(db),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover)
	if opts.MetricsEnabled {
		r.Use(metrics.Middleware)
	}

	var st stores
	if opts.DB != nil {
		st = postgresStores(opts.DB)
	} else {
		st = memoryStores()
	}

	// Services por módulo, en orden de dependencias
	petTypesSvc := pettypes.NewService(st.petTypes, st.tx)
	specialtiesSvc := specialties.NewService(st.specialties, st.tx)
	ownersSvc := owners.NewService(st.owners, st.tx)
	petsSvc := pets.NewService(st.pets, ownersSvc, petTypesSvc, st.tx)
	visitsSvc := visits.NewService(st.visits, petsSvc, st.tx)
	vaccinationsSvc := vaccinations.NewService(st.vaccinations, petsSvc, st.tx)
	vetsSvc := vets.NewService(st.vets, specialtiesSvc, st.tx)
	appointmentsSvc := appointments.NewService(st.appointments, petsSvc, vetsSvc, st.tx)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/public/actuator", func(ar chi.Router) {
			ar.Get("/health", healthHandler(opts.DB))
			if opts.MetricsEnabled {
				ar.Handle("/metrics", metrics.Handler())
			}
		})

		// Rutas por módulo
		owners.RegisterRoutes(v1, ownersSvc, petsSvc)
		pets.RegisterRoutes(v1, petsSvc, visitsSvc)
		pettypes.RegisterRoutes(v1, petTypesSvc)
		visits.RegisterRoutes(v1, visitsSvc)
		vaccinations.RegisterRoutes(v1, vaccinationsSvc)
		specialties.RegisterRoutes(v1, specialtiesSvc)
		vets.RegisterRoutes(v1, vetsSvc)
		appointments.RegisterRoutes(v1, appointmentsSvc)
	})

	return r
}

type healthResponse struct {
	Status string `json:"status"`
}

// En modo in-memory siempre está UP; con Postgres depende del ping.
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				logger.FromContext(r.Context()).Warn("health check failed", logger.Err(err))
				httpx.JSON(w, r, http.StatusServiceUnavailable, healthResponse{Status: "DOWN"})
				return
			}
		}
		httpx.JSON(w, r, http.StatusOK, healthResponse{Status: "UP"})
	}
}

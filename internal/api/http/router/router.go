package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/api/http/handler"
	"github.com/Francis1918/citamed_backend/internal/service/appointment"
	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/service/registry"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	RegistrySvc     registry.Service
	ScheduleSvc     schedule.Service
	AppointmentSvc  appointment.Service
	NotificationSvc notification.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	patientH := handler.NewPatientHandler(r.p.RegistrySvc, r.p.AppointmentSvc)
	doctorH := handler.NewDoctorHandler(r.p.RegistrySvc, r.p.ScheduleSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.ScheduleSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	r.registerPatientRoutes(api, patientH)
	r.registerDoctorRoutes(api, doctorH)
	r.registerAppointmentRoutes(api, appointmentH)
	r.registerNotificationRoutes(api, notificationH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

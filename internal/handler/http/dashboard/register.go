package dashboard

import (
	"net/http"

	queryUC "github.com/calebmoores/content-dashboard/internal/usecase/query"
	schedUC "github.com/calebmoores/content-dashboard/internal/usecase/schedule"
)

// Register registers the dashboard view routes with the given mux.
func Register(mux *http.ServeMux, query *queryUC.Service, sched *schedUC.Service) {
	mux.Handle("GET /dashboard/stats", StatsHandler{Svc: query})
	mux.Handle("GET /dashboard/calendar", CalendarHandler{Svc: query})
	mux.Handle("GET /dashboard/pipeline", PipelineHandler{Svc: query})
	mux.Handle("GET /dashboard/notifications", NotificationsHandler{Svc: sched})
}

package routers

import (
	"timetable-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBatchRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/", scheduleController.ListBatches)
}

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/{batch}/days/{day}", scheduleController.GetDayAgenda)
	router.Get("/{batch}/grid", scheduleController.GetWeekGrid)
	router.Get("/{batch}/active", scheduleController.GetActiveClass)
}

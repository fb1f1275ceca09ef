package routers

import (
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachViewerRoutes(router chi.Router, gestureLimiter *middlewares.RateLimiter, viewerController *controllers.ViewerController) {
	router.Get("/", viewerController.GetViewer)
	router.Put("/batch", viewerController.SelectBatch)
	router.Put("/view", viewerController.SetViewMode)
	router.Put("/day", viewerController.JumpToDay)
	router.Post("/keys", viewerController.HandleKey)
	router.Post("/resize", viewerController.Resize)
	router.Post("/theme", viewerController.ToggleTheme)

	gestures := router.With()
	if gestureLimiter != nil {
		gestures = router.With(gestureLimiter.Limit)
	}
	gestures.Post("/gestures/{phase}", viewerController.HandleGesture)
}

package controllers

import (
	"net/http"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/utils"
)

type HealthController struct {
	ScheduleRepository contracts.ScheduleRepository
}

func NewHealthController(scheduleRepository contracts.ScheduleRepository) *HealthController {
	return &HealthController{ScheduleRepository: scheduleRepository}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthyMessage, responses.Health{
		Status:  constvars.HealthyMessage,
		Batches: len(ctrl.ScheduleRepository.BatchNames()),
	})
}

package controllers

import (
	"context"
	"net/http"
	"strconv"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
	}
}

func (ctrl *ScheduleController) ListBatches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.ListBatches(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBatchesSuccessMessage, result)
}

func (ctrl *ScheduleController) GetDayAgenda(w http.ResponseWriter, r *http.Request) {
	batch := chi.URLParam(r, constvars.URLParamBatch)
	dayStr := chi.URLParam(r, constvars.URLParamDay)

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDay))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetDayAgenda(ctx, batch, day)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDayAgendaSuccessMessage, result)
}

func (ctrl *ScheduleController) GetWeekGrid(w http.ResponseWriter, r *http.Request) {
	batch := chi.URLParam(r, constvars.URLParamBatch)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetWeekGrid(ctx, batch)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetWeekGridSuccessMessage, result)
}

func (ctrl *ScheduleController) GetActiveClass(w http.ResponseWriter, r *http.Request) {
	batch := chi.URLParam(r, constvars.URLParamBatch)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetActiveClass(ctx, batch)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetActiveClassSuccessMessage, result)
}

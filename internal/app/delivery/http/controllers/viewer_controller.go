package controllers

import (
	"context"
	"net/http"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ViewerController struct {
	Log           *zap.Logger
	ViewerUsecase contracts.ViewerUsecase
}

func NewViewerController(logger *zap.Logger, viewerUsecase contracts.ViewerUsecase) *ViewerController {
	return &ViewerController{
		Log:           logger,
		ViewerUsecase: viewerUsecase,
	}
}

func (ctrl *ViewerController) GetViewer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ViewerUsecase.GetViewer(ctx, utils.GetClientID(ctx))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetViewerSuccessMessage, result)
}

func (ctrl *ViewerController) SelectBatch(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectBatch)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, changed, err := ctrl.ViewerUsecase.SelectBatch(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.SelectBatchSuccessMessage
	if !changed {
		message = constvars.SelectBatchIgnoredMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *ViewerController) SetViewMode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetViewMode)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ViewerUsecase.SetViewMode(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetViewModeSuccessMessage, result)
}

func (ctrl *ViewerController) JumpToDay(w http.ResponseWriter, r *http.Request) {
	request := new(requests.JumpToDay)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, changed, err := ctrl.ViewerUsecase.JumpToDay(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.JumpToDaySuccessMessage
	if !changed {
		message = constvars.JumpToDayIgnoredMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *ViewerController) HandleKey(w http.ResponseWriter, r *http.Request) {
	request := new(requests.KeyPress)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, handled, err := ctrl.ViewerUsecase.HandleKey(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.KeyHandledSuccessMessage
	if !handled {
		message = constvars.KeyIgnoredMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

// HandleGesture takes the phase from the path, e.g. /viewer/gestures/move.
func (ctrl *ViewerController) HandleGesture(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Gesture)
	request.Phase = chi.URLParam(r, constvars.URLParamGesturePart)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, handled, err := ctrl.ViewerUsecase.HandleGesture(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	message := constvars.GestureHandledSuccessMessage
	if !handled {
		message = constvars.GestureIgnoredMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *ViewerController) Resize(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Resize)
	err := decodeBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ViewerUsecase.Resize(ctx, utils.GetClientID(ctx), request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ResizeScheduledMessage, result)
}

func (ctrl *ViewerController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.ViewerUsecase.ToggleTheme(ctx, utils.GetClientID(ctx))
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleThemeSuccessMessage, result)
}

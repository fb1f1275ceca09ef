package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// decodeBody binds the JSON body to request and validates it. An empty body
// leaves request at its zero value.
func decodeBody(r *http.Request, request interface{}) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(err)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

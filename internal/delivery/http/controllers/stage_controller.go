package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"reflectionlesson/internal/delivery/http/helpers"
	"reflectionlesson/internal/domain"
)

// StageNotFoundMessage is the error message returned for unresolvable stages.
const StageNotFoundMessage = "Stage not found"

// GetStageSuccessResponse is the success response envelope for GET /stages/{stage} (200).
type GetStageSuccessResponse struct {
	Data  *domain.PageView  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListStagesSuccessResponse is the success response envelope for GET /stages (200).
type ListStagesSuccessResponse struct {
	Data  *domain.LessonOverview `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type StageController struct {
	Logger  *slog.Logger
	Service domain.StageService
}

func NewStageController(logger *slog.Logger, svc domain.StageService) *StageController {
	return &StageController{
		Logger:  logger,
		Service: svc,
	}
}

// GetStage godoc
// @Summary Get a lesson stage
// @Description Resolves a zero-based stage index and returns the slide with its navigation fields. The second-to-last stage also reports atEnd.
// @Tags stages
// @Produce json
// @Param stage path string true "Stage index (base-10 integer)"
// @Success 200 {object} controllers.GetStageSuccessResponse "data contains the page view"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stages/{stage} [get]
func (c *StageController) GetStage(w http.ResponseWriter, r *http.Request) {
	stage := r.PathValue("stage")
	view, err := c.Service.Resolve(stage)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Logger.DebugContext(r.Context(), "stage not found", "stage", stage)
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, StageNotFoundMessage)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// ListStages godoc
// @Summary List lesson stages
// @Description Returns the number of stages, the last page index, and a plain-text summary per stage.
// @Tags stages
// @Produce json
// @Success 200 {object} controllers.ListStagesSuccessResponse "data contains the lesson overview"
// @Router /stages [get]
func (c *StageController) ListStages(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Overview())
}

// StartLesson redirects to the first stage.
func (c *StageController) StartLesson(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/stages/0", http.StatusFound)
}

package handler

import (
	"net/http"

	"github.com/ahmadeq/test-clinic-demo/internal/usecase"
	"github.com/ahmadeq/test-clinic-demo/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsUsecase.Overview(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to compute analytics")
		return
	}

	response.Success(w, http.StatusOK, "Analytics retrieved successfully", overview)
}

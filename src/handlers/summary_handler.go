package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/finboard/src/logger"
	"github.com/username/finboard/src/services"
	"github.com/username/finboard/src/utils"
)

type SummaryHandler struct {
	dashboardService services.DashboardService
}

func NewSummaryHandler(service services.DashboardService) *SummaryHandler {
	return &SummaryHandler{
		dashboardService: service,
	}
}

// HandleGetSummary returns the headline dashboard numbers for a dataset:
// totals, category breakdown and the top-N leaderboards. Supports ETag
// revalidation since the summary for an unchanged dataset is stable.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")

	filters, err := parseFilters(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	typ, err := parseTransactionType(r.URL.Query().Get("type"))
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.dashboardService.Summary(datasetID, filters, typ, limit)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(summary)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for summary", "datasetID", datasetID, "error", etagErr)
	}
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("%q", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				logger.L.Debug("ETag match for summary", "datasetID", datasetID, "etag", currentETag)
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.L.Error("Error encoding summary response", "datasetID", datasetID, "error", err)
	}
}

// HandleGetBuckets returns time-bucketed summaries keyed by day, week or
// month, selected by the granularity path segment.
func (h *SummaryHandler) HandleGetBuckets(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")
	granularity := r.PathValue("granularity")

	filters, err := parseFilters(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var payload interface{}
	switch granularity {
	case "daily":
		typ, err := parseTransactionType(r.URL.Query().Get("type"))
		if err != nil {
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		totals, err := h.dashboardService.DailyTotals(datasetID, filters, typ)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		payload = totals
	case "weekly":
		totals, err := h.dashboardService.WeeklyTotals(datasetID, filters)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		payload = totals
	case "monthly":
		totals, err := h.dashboardService.MonthlySummary(datasetID, filters)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		payload = totals
	default:
		utils.SendJSONError(w, fmt.Sprintf("invalid granularity %q, expected daily, weekly or monthly", granularity), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L.Error("Error encoding buckets response", "datasetID", datasetID, "granularity", granularity, "error", err)
	}
}

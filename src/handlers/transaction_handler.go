package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/finboard/src/logger"
	"github.com/username/finboard/src/models"
	"github.com/username/finboard/src/services"
	"github.com/username/finboard/src/utils"
)

type TransactionHandler struct {
	dashboardService services.DashboardService
}

func NewTransactionHandler(service services.DashboardService) *TransactionHandler {
	return &TransactionHandler{
		dashboardService: service,
	}
}

// HandleGetTransactions returns the filtered, sorted transaction list for a
// dataset. Every filter predicate maps to a query parameter.
func (h *TransactionHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")

	filters, err := parseFilters(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	sortBy := parseSort(r)

	transactions, err := h.dashboardService.Transactions(datasetID, filters, sortBy)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		logger.L.Error("Error encoding transactions response", "datasetID", datasetID, "error", err)
	}
}

// HandleGetCategories returns the dataset's distinct categories, ignoring
// any active filters: option lists always show the whole dataset.
func (h *TransactionHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")

	categories, err := h.dashboardService.Categories(datasetID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		logger.L.Error("Error encoding categories response", "datasetID", datasetID, "error", err)
	}
}

// HandleGetMonths returns the dataset's month buckets with display labels.
func (h *TransactionHandler) HandleGetMonths(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")

	months, err := h.dashboardService.Months(datasetID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if months == nil {
		months = []models.MonthOption{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(months); err != nil {
		logger.L.Error("Error encoding months response", "datasetID", datasetID, "error", err)
	}
}

// HandleDeleteDataset drops a dataset from the in-memory store.
func (h *TransactionHandler) HandleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("id")

	if err := h.dashboardService.DeleteDataset(datasetID); err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "dataset deleted"})
}

// sendServiceError maps service errors onto HTTP status codes. An unknown
// or expired dataset reads as 404; anything else is an internal fault.
func sendServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrDatasetNotFound) {
		utils.SendJSONError(w, "Dataset not found or expired. Re-import the CSV file.", http.StatusNotFound)
		return
	}
	utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
}

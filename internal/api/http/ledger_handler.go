package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"waterbill-backend/internal/domain"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/service"

	"github.com/gorilla/mux"
)

// LedgerHandler exposes the reconciled customer ledger over HTTP.
type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

type ledgerResponse struct {
	Customer *domain.Customer     `json:"customer"`
	Report   *domain.LedgerReport `json:"report"`
	Message  string               `json:"message,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

// GetCustomerLedger handles GET /api/customers/{accountNo}/ledger.
// A ledger with no dated entries is a successful response with an explicit
// empty state; an upstream fetch failure is a retryable error. The two are
// never conflated.
func (h *LedgerHandler) GetCustomerLedger(w http.ResponseWriter, r *http.Request) {
	accountNo := mux.Vars(r)["accountNo"]
	if accountNo == "" {
		writeError(w, http.StatusBadRequest, "account number is required", false)
		return
	}

	customer, report, err := h.ledgerSvc.GetCustomerLedger(r.Context(), accountNo)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, "customer not found", false)
			return
		}
		logger.Error("Ledger report generation failed", "accountNo", accountNo, "error", err)
		writeError(w, http.StatusBadGateway, "ledger sources unavailable", true)
		return
	}

	resp := ledgerResponse{Customer: customer, Report: report}
	if !report.HasEntries {
		resp.Message = "no ledger entries yet"
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, retryable bool) {
	writeJSON(w, status, errorResponse{Error: msg, Retryable: retryable})
}

package http

import (
	"net/http"

	"waterbill-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter assembles the API routes. The health endpoint is open; everything
// under /api requires a valid staff token.
func NewRouter(ledgerHandler *LedgerHandler, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))
	api.HandleFunc("/customers/{accountNo}/ledger", ledgerHandler.GetCustomerLedger).Methods(http.MethodGet)

	return router
}

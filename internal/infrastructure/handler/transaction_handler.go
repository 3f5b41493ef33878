package handler

import (
	"net/http"

	"finlog/internal/application/service"
	"finlog/internal/domain/entity"
	"finlog/internal/infrastructure/logger"
	"finlog/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// TransactionHandler handles HTTP requests for transactions. The owner
// identity for every operation comes from the session claims placed in
// the request context by the auth middleware; client-supplied owner
// identifiers are never trusted.
//
// Session presence is required on every route, but update and delete do
// not re-check that the session user owns the referenced record. That
// matches the behavior of the API this service replaces and is a known
// authorization gap.
type TransactionHandler struct {
	service *service.TransactionService
	logger  logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service *service.TransactionService, log logger.Logger) *TransactionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &TransactionHandler{
		service: service,
		logger:  log,
	}
}

// CreateTransaction handles the creation of a new transaction
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ownerID := middleware.GetUserID(r.Context())

	var req CreateTransactionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	if req.Amount == nil {
		sendErrorResponse(w, h.logger, "Validation failed",
			"invalid amount: amount is required", http.StatusBadRequest, requestID)
		return
	}

	if req.Date == "" {
		sendErrorResponse(w, h.logger, "Validation failed",
			"invalid date: date is required", http.StatusBadRequest, requestID)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.logger.Warn("Invalid date format", map[string]interface{}{
			"request_id": requestID,
			"date":       req.Date,
		})
		sendErrorResponse(w, h.logger, "Invalid date format",
			"Date must be in YYYY-MM-DD format", http.StatusBadRequest, requestID)
		return
	}

	tx, err := h.service.CreateTransaction(r.Context(), ownerID, *req.Amount, date, entity.Kind(req.Kind), req.Note)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Transaction created", map[string]interface{}{
		"request_id": requestID,
		"id":         tx.ID,
		"kind":       tx.Kind,
	})

	sendJSON(w, http.StatusCreated, newTransactionResponse(tx))
}

// ListTransactions returns every transaction owned by the session user
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	ownerID := middleware.GetUserID(r.Context())

	txs, err := h.service.ListTransactions(r.Context(), ownerID)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	resp := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, newTransactionResponse(tx))
	}

	sendJSON(w, http.StatusOK, resp)
}

// UpdateTransaction overwrites the supplied fields on an existing record
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	callerID := middleware.GetUserID(r.Context())

	var req UpdateTransactionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	if req.ID == "" {
		sendErrorResponse(w, h.logger, "Validation failed",
			"invalid id: id is required", http.StatusBadRequest, requestID)
		return
	}

	update := &entity.TransactionUpdate{
		Amount: req.Amount,
		Note:   req.Note,
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			sendErrorResponse(w, h.logger, "Invalid date format",
				"Date must be in YYYY-MM-DD format", http.StatusBadRequest, requestID)
			return
		}
		update.Date = &date
	}

	if req.Kind != nil {
		kind := entity.Kind(*req.Kind)
		update.Kind = &kind
	}

	tx, err := h.service.UpdateTransaction(r.Context(), callerID, req.ID, update)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Transaction updated", map[string]interface{}{
		"request_id": requestID,
		"id":         tx.ID,
	})

	sendJSON(w, http.StatusOK, newTransactionResponse(tx))
}

// DeleteTransaction removes a record permanently
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	callerID := middleware.GetUserID(r.Context())

	var req DeleteTransactionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	if req.ID == "" {
		sendErrorResponse(w, h.logger, "Validation failed",
			"invalid id: id is required", http.StatusBadRequest, requestID)
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), callerID, req.ID); err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Transaction deleted", map[string]interface{}{
		"request_id": requestID,
		"id":         req.ID,
	})

	sendJSON(w, http.StatusOK, DeleteTransactionResponse{Message: "Transaction deleted successfully"})
}

// RegisterRoutes registers the transaction routes on the router, each
// wrapped with the session auth middleware so no request reaches a
// handler without a resolved identity.
func (h *TransactionHandler) RegisterRoutes(router *mux.Router, authMW func(http.Handler) http.Handler) {
	router.Handle("/transactions", authMW(http.HandlerFunc(h.CreateTransaction))).Methods("POST")
	router.Handle("/transactions", authMW(http.HandlerFunc(h.ListTransactions))).Methods("GET")
	router.Handle("/transactions", authMW(http.HandlerFunc(h.UpdateTransaction))).Methods("PUT")
	router.Handle("/transactions", authMW(http.HandlerFunc(h.DeleteTransaction))).Methods("DELETE")

	h.logger.Info("Transaction routes registered", map[string]interface{}{
		"routes": []string{
			"POST /transactions",
			"GET /transactions",
			"PUT /transactions",
			"DELETE /transactions",
		},
	})
}

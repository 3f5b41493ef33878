package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"finlog/internal/domain/entity"
	"finlog/internal/infrastructure/logger"
)

const dateLayout = "2006-01-02"

func newTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:      tx.ID,
		OwnerID: tx.OwnerID,
		Amount:  tx.Amount,
		Date:    tx.Date.Format(dateLayout),
		Kind:    string(tx.Kind),
		Note:    tx.Note,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// sendJSON writes a JSON response with the given status code
func sendJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	sendJSON(w, statusCode, resp)
}

// sendServiceError maps a service error to its HTTP form. Every
// operation failure is converted here; nothing is allowed to escape
// the boundary.
func sendServiceError(w http.ResponseWriter, log logger.Logger, err error, requestID string) {
	var ve *entity.ValidationError

	switch {
	case errors.As(err, &ve):
		log.Warn("Validation failed", map[string]interface{}{
			"request_id": requestID,
			"field":      ve.Field,
			"error":      ve.Error(),
		})
		sendErrorResponse(w, log, "Validation failed", ve.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrNotFound):
		log.Warn("Record not found", map[string]interface{}{
			"request_id": requestID,
		})
		sendErrorResponse(w, log, "Transaction not found",
			"The requested transaction could not be found", http.StatusNotFound, requestID)
	case errors.Is(err, entity.ErrEmailTaken):
		log.Warn("Email already registered", map[string]interface{}{
			"request_id": requestID,
		})
		sendErrorResponse(w, log, "Email already registered",
			"An account with this email already exists", http.StatusConflict, requestID)
	case errors.Is(err, entity.ErrInvalidCredentials):
		// Deliberately generic: unknown email and wrong password must
		// be indistinguishable.
		sendErrorResponse(w, log, "Invalid credentials",
			"Email or password is incorrect", http.StatusUnauthorized, requestID)
	default:
		log.Error("Unexpected error", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, log, "Internal server error",
			"An unexpected error occurred", http.StatusInternalServerError, requestID)
	}
}

// decodeJSONBody decodes a request body, rejecting unknown fields so a
// mistyped or smuggled field fails loudly instead of passing through to
// the store.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

package handler

// RegisterRequest represents the request body for creating a credential record
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user; it never carries the
// password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateTransactionRequest represents the request body for creating a
// transaction. Amount is a pointer so a missing field can be told apart
// from zero.
type CreateTransactionRequest struct {
	Amount *float64 `json:"amount"`
	Date   string   `json:"date"`
	Kind   string   `json:"kind"`
	Note   string   `json:"note"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. Absent fields are left unchanged. There is no owner
// field: ownership is set at creation and never reassigned.
type UpdateTransactionRequest struct {
	ID     string   `json:"id"`
	Amount *float64 `json:"amount"`
	Date   *string  `json:"date"`
	Kind   *string  `json:"kind"`
	Note   *string  `json:"note"`
}

// DeleteTransactionRequest represents the request body for deleting a transaction
type DeleteTransactionRequest struct {
	ID string `json:"id"`
}

// DeleteTransactionResponse confirms a deletion
type DeleteTransactionResponse struct {
	Message string `json:"message"`
}

// TransactionResponse represents the wire form of a transaction
type TransactionResponse struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"ownerId"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Kind    string  `json:"kind"`
	Note    string  `json:"note,omitempty"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description"`
	RequestID   string `json:"request_id"`
}

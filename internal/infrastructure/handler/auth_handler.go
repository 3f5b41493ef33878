package handler

import (
	"net/http"

	"finlog/internal/application/service"
	"finlog/internal/infrastructure/auth"
	"finlog/internal/infrastructure/logger"
	"finlog/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// AuthHandler handles credential registration and login
type AuthHandler struct {
	service *service.AuthService
	tokens  *auth.TokenAuthority
	logger  logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService, tokens *auth.TokenAuthority, log logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &AuthHandler{
		service: service,
		tokens:  tokens,
		logger:  log,
	}
}

// Register creates a new credential record
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req RegisterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("User registered", map[string]interface{}{
		"request_id": requestID,
		"user_id":    user.ID,
	})

	sendJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Email: user.Email})
}

// Login verifies credentials and issues a session token. The token is
// returned in the body and also set as an HttpOnly cookie for the
// embedded dashboard.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Failed logins are logged without the email to keep the
		// response and the logs equally uninformative about which
		// check failed.
		h.logger.Warn("Login failed", map[string]interface{}{
			"request_id": requestID,
		})
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		sendServiceError(w, h.logger, err, requestID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.TokenTTL.Seconds()),
	})

	h.logger.Info("Login succeeded", map[string]interface{}{
		"request_id": requestID,
		"user_id":    user.ID,
	})

	sendJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Email: user.Email},
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session state to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	sendJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// RegisterRoutes registers the public auth routes on the router
func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/logout", h.Logout).Methods("POST")

	h.logger.Info("Auth routes registered", map[string]interface{}{
		"routes": []string{
			"POST /auth/register",
			"POST /auth/login",
			"POST /auth/logout",
		},
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CodeSpartan007/survey-madness/middleware"
	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
)

type AuthHandler struct {
	accounts *store.AccountStore
}

func NewAuthHandler(accounts *store.AccountStore) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	accountID, err := h.accounts.Register(req.Username, req.Password)
	if errors.Is(err, store.ErrUsernameTaken) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to register account", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An error occurred during registration")
		return
	}

	slog.Info("account registered", "account_id", accountID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "User registered successfully",
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	account, err := h.accounts.Authenticate(req.Username, req.Password)
	if errors.Is(err, store.ErrBadCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to authenticate", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "An error occurred during login")
		return
	}

	slog.Info("account logged in", "account_id", account.ID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{User: account})
}

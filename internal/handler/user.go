package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/service"
)

// UserHandler handles HTTP requests for user endpoints.
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// registerRequest is the JSON request body for registration.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userResponse is the JSON shape of a user. The plaintext password is
// echoed back because the original backend did so and the UI's login
// check compares against it.
type userResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Balance  decimal.Decimal `json:"balance"`
}

func toUserResponse(v *service.UserView) userResponse {
	return userResponse{
		ID:       v.Account.ID,
		Username: v.Account.Username,
		Password: v.Account.Password,
		Balance:  v.Balance,
	}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	view, err := h.userSvc.Register(req.Username, req.Password)
	if err != nil {
		mapUserError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, toUserResponse(view))
}

// GetByUsername handles GET /api/users/username/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	view, err := h.userSvc.GetByUsername(chi.URLParam(r, "username"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, toUserResponse(view))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	views := h.userSvc.List()
	resp := make([]userResponse, len(views))
	for i, v := range views {
		resp[i] = toUserResponse(v)
	}
	WriteJSON(w, http.StatusOK, resp)
}

// mapUserError maps registration errors to HTTP responses.
func mapUserError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		WriteError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		WriteError(w, http.StatusBadRequest, "User already exists")
	default:
		WriteError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/letsssgooo/quizMaster/internal/auth"
	"github.com/letsssgooo/quizMaster/internal/domain/models"
	"github.com/letsssgooo/quizMaster/internal/quiz"
	"github.com/letsssgooo/quizMaster/internal/service"
)

// Handler обслуживает HTTP API поверх сервиса квизов.
type Handler struct {
	svc *service.Service
	log *slog.Logger
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		svc: svc,
		log: slog.Default().With("component", "http"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type startRequest struct {
	Category string `json:"category"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type shareResponse struct {
	Text string `json:"text"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories())
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupData
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.svc.Signup(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, service.ProfileOf(account))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ProfileOf(account))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.Me(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ProfileOf(account))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.History(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !h.decode(w, r, &req) {
		return
	}

	snap, err := h.svc.StartQuiz(r.Context(), req.Category)
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) QuizState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.QuizState())
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !h.decode(w, r, &req) {
		return
	}

	snap, err := h.svc.Answer(req.Answer)
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) Next(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.svc.Next()
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) Back(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.svc.Back()
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) Quit(w http.ResponseWriter, _ *http.Request) {
	snap, err := h.svc.Quit()
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) CurrentResult(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.CurrentResult(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Retry(r.Context())
	h.writeSnapshot(w, snap, err)
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Share(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{Text: text})
}

func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: string(theme)})
}

func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.ToggleTheme(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: string(theme)})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}

func (h *Handler) writeSnapshot(w http.ResponseWriter, snap quiz.Snapshot, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor сопоставляет доменные ошибки кодам ответа.
func statusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrValidation), errors.Is(err, service.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNoCurrentUser):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUserExists),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrResultAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, models.ErrNoQuestionsAvailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

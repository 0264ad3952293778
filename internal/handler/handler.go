package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-health/internal/models"
	"github.com/Dan9191/finance-health/internal/service"
)

// generatedOnLayout renders report timestamps, e.g. "March 05, 2025 at 04:30 PM"
const generatedOnLayout = "January 02, 2006 at 03:04 PM"

// maxBodyBytes bounds a questionnaire submission
const maxBodyBytes = 64 << 10

type Handler struct {
	svc *service.Service
	log *logrus.Logger
	now func() time.Time
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

// reportResponse is the report as returned to the form
type reportResponse struct {
	GeneratedOn string `json:"generated_on"`
	*models.Report
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Analyze scores a questionnaire submission
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()

	var raw models.RawProfile
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No input data provided"})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Malformed JSON body"})
		return
	}
	if len(raw) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No input data provided"})
		return
	}

	report, err := h.svc.Analyze(r.Context(), raw)
	if err != nil {
		var perr *models.InvalidProfileError
		if errors.As(err, &perr) {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: perr.Error(), Field: perr.Field})
			return
		}
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An internal server error occurred"})
		return
	}

	generatedOn := h.now().Format(generatedOnLayout)
	if wantsXML(r) {
		h.writeXML(w, http.StatusOK, report, generatedOn)
		return
	}
	h.writeJSON(w, http.StatusOK, reportResponse{GeneratedOn: generatedOn, Report: report})
}

// Fields lists the questionnaire fields for the form
func (h *Handler) Fields(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Fields())
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func wantsXML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/xml") || strings.Contains(accept, "text/xml")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"An internal server error occurred"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.log.Warnf("Failed to write response: %v", err)
	}
}

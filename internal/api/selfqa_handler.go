package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/selfqa-api/internal/api/shared"
	"github.com/phrazzld/selfqa-api/internal/domain"
)

// SelfQAGenerator is the narrow service surface this handler needs.
type SelfQAGenerator interface {
	// GenerateSelfQA runs a generation session and returns the successful
	// pairs. It never fails; total failure is an empty slice.
	GenerateSelfQA(ctx context.Context, identity domain.Identity) []domain.QAPair
}

// GenerateSelfQARequest represents the request body for a generation session.
type GenerateSelfQARequest struct {
	SubjectName       string `json:"subject_name"       validate:"required,min=1"`
	Introduction      string `json:"introduction"`
	GlobalBio         string `json:"global_bio"`
	PreferredLanguage string `json:"preferred_language"`
}

// GenerateSelfQAResponse represents the response body for a generation session.
// Count is the number of returned pairs; it deliberately says nothing about
// how many questions were asked or failed.
type GenerateSelfQAResponse struct {
	Pairs []domain.QAPair `json:"pairs"`
	Count int             `json:"count"`
}

// SelfQAHandler handles self-QA generation HTTP requests.
type SelfQAHandler struct {
	generator SelfQAGenerator
	logger    *slog.Logger
}

// NewSelfQAHandler creates a new SelfQAHandler.
func NewSelfQAHandler(generator SelfQAGenerator, logger *slog.Logger) *SelfQAHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &SelfQAHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "selfqa_handler")),
	}
}

// GenerateSelfQA handles POST /api/selfqa/generate requests.
// The call is synchronous: the response carries the complete result set of
// the finished batch.
func (h *SelfQAHandler) GenerateSelfQA(w http.ResponseWriter, r *http.Request) {
	var req GenerateSelfQARequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	identity, err := domain.NewIdentity(
		req.SubjectName,
		req.Introduction,
		req.GlobalBio,
		domain.LanguagePreference(req.PreferredLanguage),
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid identity: "+err.Error())
		return
	}

	pairs := h.generator.GenerateSelfQA(r.Context(), identity)

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateSelfQAResponse{
		Pairs: pairs,
		Count: len(pairs),
	})
}

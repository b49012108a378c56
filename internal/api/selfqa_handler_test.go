package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/selfqa-api/internal/domain"
)

// fakeGenerator implements SelfQAGenerator with a canned result.
type fakeGenerator struct {
	pairs        []domain.QAPair
	lastIdentity domain.Identity
	called       bool
}

func (g *fakeGenerator) GenerateSelfQA(ctx context.Context, identity domain.Identity) []domain.QAPair {
	g.called = true
	g.lastIdentity = identity
	return g.pairs
}

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postGenerate(t *testing.T, handler *SelfQAHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/selfqa/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.GenerateSelfQA(rr, req)
	return rr
}

func TestGenerateSelfQA_Success(t *testing.T) {
	generator := &fakeGenerator{
		pairs: []domain.QAPair{
			{User: "Who am I?", Assistant: "You are Ada."},
			{User: "Who are you?", Assistant: "I am Ada's AI self."},
		},
	}
	handler := NewSelfQAHandler(generator, testHandlerLogger())

	body, err := json.Marshal(GenerateSelfQARequest{
		SubjectName:       "Ada",
		Introduction:      "intro",
		GlobalBio:         "bio",
		PreferredLanguage: "English",
	})
	require.NoError(t, err)

	rr := postGenerate(t, handler, body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, generator.called)
	assert.Equal(t, "Ada", generator.lastIdentity.SubjectName)
	assert.Equal(t, domain.LanguageEnglish, generator.lastIdentity.Language)

	var resp GenerateSelfQAResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, generator.pairs, resp.Pairs)
}

func TestGenerateSelfQA_EmptyResultStillSucceeds(t *testing.T) {
	// An all-failed batch is indistinguishable from an empty one; the API
	// reports it as a successful, empty result.
	handler := NewSelfQAHandler(&fakeGenerator{pairs: []domain.QAPair{}}, testHandlerLogger())

	body, _ := json.Marshal(GenerateSelfQARequest{SubjectName: "Ada"})
	rr := postGenerate(t, handler, body)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp GenerateSelfQAResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Pairs)
}

func TestGenerateSelfQA_InvalidJSON(t *testing.T) {
	generator := &fakeGenerator{}
	handler := NewSelfQAHandler(generator, testHandlerLogger())

	rr := postGenerate(t, handler, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, generator.called)
}

func TestGenerateSelfQA_MissingSubjectName(t *testing.T) {
	generator := &fakeGenerator{}
	handler := NewSelfQAHandler(generator, testHandlerLogger())

	body, _ := json.Marshal(GenerateSelfQARequest{Introduction: "intro"})
	rr := postGenerate(t, handler, body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, generator.called)
}

func TestGenerateSelfQA_UnrecognizedLanguageIsAccepted(t *testing.T) {
	// Unknown language tags are not an error; they fall back to English
	// downstream.
	generator := &fakeGenerator{pairs: []domain.QAPair{}}
	handler := NewSelfQAHandler(generator, testHandlerLogger())

	body, _ := json.Marshal(GenerateSelfQARequest{
		SubjectName:       "Ada",
		PreferredLanguage: "Klingon",
	})
	rr := postGenerate(t, handler, body)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.LanguagePreference("Klingon"), generator.lastIdentity.Language)
}

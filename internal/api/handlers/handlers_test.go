package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parnika15-9/meeting-summarizer/internal/app/intake"
	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
	"github.com/parnika15-9/meeting-summarizer/internal/app/pipeline"
	"github.com/parnika15-9/meeting-summarizer/internal/app/repository/jsondir"
)

type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

type mockAnalyst struct {
	mock.Mock
}

func (m *mockAnalyst) Analyze(ctx context.Context, transcript string) (string, error) {
	args := m.Called(ctx, transcript)
	return args.String(0), args.Error(1)
}

type testEnv struct {
	router      *gin.Engine
	transcriber *mockTranscriber
	analyst     *mockAnalyst
	store       *jsondir.Store
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	transcriber := new(mockTranscriber)
	analyst := new(mockAnalyst)
	store := jsondir.New(t.TempDir(), nil)

	p := pipeline.New(
		intake.New(t.TempDir(), 1024*1024),
		transcriber,
		analyst,
		store,
		nil,
		nil,
	)

	router := gin.New()
	router.GET("/", Home)
	router.GET("/health", Health)
	router.POST("/transcribe", NewTranscribeHandler(p, 1024*1024).Transcribe)
	router.GET("/history", NewHistoryHandler(store, nil).History)

	return &testEnv{router: router, transcriber: transcriber, analyst: analyst, store: store}
}

func multipartUpload(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTranscribeSuccess(t *testing.T) {
	env := setup(t)

	env.transcriber.On("Transcript", mock.Anything, mock.Anything).
		Return("We discussed Q3 budget and agreed to hire two engineers.", nil)
	env.analyst.On("Analyze", mock.Anything, mock.Anything).
		Return(`{"summary":"Budget meeting.","decisions":["Hire 2 engineers"],"action_items":[],"topics":["Budget"]}`, nil)

	body, contentType := multipartUpload(t, "audio", "meeting.mp3", []byte("audio-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "We discussed Q3 budget and agreed to hire two engineers.", resp["transcript"])
	assert.NotEmpty(t, resp["saved_to"])

	analysis, ok := resp["analysis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Hire 2 engineers"}, analysis["decisions"])
}

func TestTranscribeMissingFileField(t *testing.T) {
	env := setup(t)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "no_file_provided", resp["kind"])
}

func TestTranscribeDisallowedExtension(t *testing.T) {
	env := setup(t)

	body, contentType := multipartUpload(t, "audio", "notes.txt", []byte("not audio"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "invalid_file_type", resp["kind"])
	env.transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
}

func TestTranscribeOversizedPayload(t *testing.T) {
	env := setup(t)

	body, contentType := multipartUpload(t, "audio", "meeting.mp3", []byte("audio"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = 1024*1024 + 1
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "payload_too_large", resp["kind"])
}

func TestTranscribeCollaboratorFailure(t *testing.T) {
	env := setup(t)

	env.transcriber.On("Transcript", mock.Anything, mock.Anything).
		Return("", context.DeadlineExceeded)

	body, contentType := multipartUpload(t, "audio", "meeting.mp3", []byte("audio"))
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "transcription_failed", resp["kind"])
}

func TestHistoryReturnsRecentEntries(t *testing.T) {
	env := setup(t)

	for _, ts := range []string{"20260101_000000", "20260102_000000"} {
		_, err := env.store.Save(&model.AnalysisRecord{
			Filename:   ts + "_meeting.mp3",
			Timestamp:  ts,
			Transcript: "t",
			Analysis:   model.AnalysisResult{Summary: "summary " + ts},
		})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)

	history, ok := resp["history"].([]interface{})
	require.True(t, ok)
	require.Len(t, history, 2)

	first, ok := history[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "20260102_000000", first["timestamp"])
}

func TestHistoryHonorsLimitParameter(t *testing.T) {
	env := setup(t)

	for _, ts := range []string{"20260101_000000", "20260102_000000", "20260103_000000"} {
		_, err := env.store.Save(&model.AnalysisRecord{
			Filename:  ts + "_a.mp3",
			Timestamp: ts,
			Analysis:  model.AnalysisResult{Summary: "s"},
		})
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/history?limit=1", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	history, ok := resp["history"].([]interface{})
	require.True(t, ok)
	assert.Len(t, history, 1)
}

func TestHistoryRejectsMalformedLimit(t *testing.T) {
	env := setup(t)

	for _, query := range []string{"limit=abc", "limit=500"} {
		req := httptest.NewRequest(http.MethodGet, "/history?"+query, nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestHomeBanner(t *testing.T) {
	env := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "running", resp["status"])
	assert.Contains(t, resp, "endpoints")
}

func TestHealth(t *testing.T) {
	env := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "healthy", resp["status"])
}

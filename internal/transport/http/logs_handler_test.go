package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "arbapi/internal/errors"
	"arbapi/pkg/contracts/domain"
)

type fakeLogsService struct {
	tail domain.LogTailResponse
	err  error
}

func (f *fakeLogsService) Tail(ctx context.Context) (domain.LogTailResponse, error) {
	if f.err != nil {
		return domain.LogTailResponse{}, f.err
	}
	return f.tail, nil
}

func newLogsHandler(svc LogsServiceInterface) *LogsHandler {
	logger := testLogger()
	return NewLogsHandler(svc, logger, apierrors.NewErrorHandler(logger))
}

func TestLogsHandler_GetLogs(t *testing.T) {
	svc := &fakeLogsService{
		tail: domain.LogTailResponse{
			Lines: []string{"scanner started", "opportunity detected"},
			Count: 2,
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newLogsHandler(svc).Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.LogTailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, []string{"scanner started", "opportunity detected"}, resp.Lines)
	assert.Empty(t, resp.Message)
}

func TestLogsHandler_GetLogs_FileAbsent(t *testing.T) {
	svc := &fakeLogsService{
		tail: domain.LogTailResponse{
			Lines:   []string{},
			Message: "log file not found",
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newLogsHandler(svc).Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.LogTailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Lines)
	assert.Equal(t, "log file not found", resp.Message)
}

func TestLogsHandler_GetLogs_ReadError(t *testing.T) {
	svc := &fakeLogsService{err: fmt.Errorf("failed to read bot log: permission denied")}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newLogsHandler(svc).Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.ErrorCode)
}

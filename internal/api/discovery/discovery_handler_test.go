package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

// MockDiscoveryService is a mock implementation of the Service interface.
type MockDiscoveryService struct {
	mock.Mock
}

func (m *MockDiscoveryService) DiscoverPlaces(ctx context.Context, req types.DiscoveryRequest) (*types.LocalDiscoveryData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LocalDiscoveryData), args.Error(1)
}

func performDiscoverRequest(t *testing.T, handler *DiscoveryHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/local/discover", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.DiscoverLocal(rr, req)
	return rr
}

func TestDiscoverLocalSuccess(t *testing.T) {
	reqBody := types.DiscoveryRequest{Location: "Tokyo", Interests: []string{"culture"}}
	data := &types.LocalDiscoveryData{
		Location:     "Tokyo",
		Interests:    reqBody.Interests,
		Source:       types.SourceCurated,
		TotalResults: 8,
		Experiences:  []types.PlaceDetail{{Name: "Senso-ji Temple", Category: types.CategoryReligious}},
		Events:       sampleEvents("Tokyo"),
		Deals:        sampleDeals("Tokyo"),
	}

	mockSvc := new(MockDiscoveryService)
	mockSvc.On("DiscoverPlaces", mock.Anything, reqBody).Return(data, nil).Once()

	handler := NewDiscoveryHandler(mockSvc, testLogger())
	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	rr := performDiscoverRequest(t, handler, body)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp types.DiscoveryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Local discovery completed successfully", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, types.SourceCurated, resp.Data.Source)
	assert.Equal(t, 8, resp.Data.TotalResults)
	mockSvc.AssertExpectations(t)
}

func TestDiscoverLocalValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"location": "Tokyo"`},
		{name: "Missing location", body: `{"interests": ["culture"]}`},
		{name: "Empty interests", body: `{"location": "Tokyo", "interests": []}`},
		{name: "Blank interest value", body: `{"location": "Tokyo", "interests": ["culture", ""]}`},
		{name: "Unknown field", body: `{"location": "Tokyo", "interests": ["culture"], "bogus": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockDiscoveryService)
			handler := NewDiscoveryHandler(mockSvc, testLogger())

			rr := performDiscoverRequest(t, handler, []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp types.DiscoveryResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)

			// Nothing downstream runs for a bad request.
			mockSvc.AssertNotCalled(t, "DiscoverPlaces", mock.Anything, mock.Anything)
		})
	}
}

func TestDiscoverLocalServiceError(t *testing.T) {
	reqBody := types.DiscoveryRequest{Location: "Tokyo", Interests: []string{"culture"}}

	mockSvc := new(MockDiscoveryService)
	mockSvc.On("DiscoverPlaces", mock.Anything, reqBody).Return(nil, assert.AnError).Once()

	handler := NewDiscoveryHandler(mockSvc, testLogger())
	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	rr := performDiscoverRequest(t, handler, body)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockSvc.AssertExpectations(t)
}

package get_status_board

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelpms/reservation-service/internal/service/rooms/models"
)

type fakeRoomService struct {
	gotDate *time.Time
	resp    *models.StatusBoardResponse
	err     error
}

func (f *fakeRoomService) StatusBoard(_ context.Context, date *time.Time) (*models.StatusBoardResponse, error) {
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_AttachesLabels(t *testing.T) {
	service := &fakeRoomService{
		resp: &models.StatusBoardResponse{
			Date: "2025-10-15",
			Rooms: []models.RoomStatusEntry{
				{ID: 1, RoomNumber: "101", RoomType: "standard", Floor: 1, EffectiveStatus: "occupied"},
				{ID: 2, RoomNumber: "102", RoomType: "standard", Floor: 1, EffectiveStatus: "maintenance"},
				{ID: 3, RoomNumber: "201", RoomType: "suite", Floor: 2, EffectiveStatus: "available"},
			},
		},
	}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/status-board?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.gotDate)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *service.gotDate)

	var resp StatusBoardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 3)
	assert.Equal(t, "점유중", resp.Rooms[0].StatusLabel)
	assert.Equal(t, "정비중", resp.Rooms[1].StatusLabel)
	assert.Equal(t, "이용가능", resp.Rooms[2].StatusLabel)
}

func TestHandle_DefaultsToToday(t *testing.T) {
	service := &fakeRoomService{
		resp: &models.StatusBoardResponse{Date: "2025-10-15", Rooms: []models.RoomStatusEntry{}},
	}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/status-board", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, service.gotDate)
}

func TestHandle_InvalidDate(t *testing.T) {
	service := &fakeRoomService{}
	handler := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/status-board?date=15.10.2025", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.gotDate)
}

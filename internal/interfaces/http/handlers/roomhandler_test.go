package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretrack/internal/application/room"
	"caretrack/internal/interfaces/http/handlers/testutil"
	"caretrack/internal/shared/errors"
)

type mockRoomService struct {
	createRoomFn  func(ctx context.Context, facilityID uint, req room.CreateRoomRequest) (*room.RoomResponse, error)
	listRoomsFn   func(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.RoomResponse, error)
	updateRoomFn  func(ctx context.Context, facilityID, roomID uint, req room.UpdateRoomRequest) (*room.RoomResponse, error)
	archiveRoomFn func(ctx context.Context, facilityID, roomID uint) (*room.RoomResponse, error)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, facilityID uint, req room.CreateRoomRequest) (*room.RoomResponse, error) {
	if m.createRoomFn != nil {
		return m.createRoomFn(ctx, facilityID, req)
	}
	return nil, nil
}

func (m *mockRoomService) ListRooms(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.RoomResponse, error) {
	if m.listRoomsFn != nil {
		return m.listRoomsFn(ctx, facilityID, includeArchived)
	}
	return nil, nil
}

func (m *mockRoomService) UpdateRoom(ctx context.Context, facilityID, roomID uint, req room.UpdateRoomRequest) (*room.RoomResponse, error) {
	if m.updateRoomFn != nil {
		return m.updateRoomFn(ctx, facilityID, roomID, req)
	}
	return nil, nil
}

func (m *mockRoomService) ArchiveRoom(ctx context.Context, facilityID, roomID uint) (*room.RoomResponse, error) {
	if m.archiveRoomFn != nil {
		return m.archiveRoomFn(ctx, facilityID, roomID)
	}
	return nil, nil
}

func TestRoomHandler_CreateRoom(t *testing.T) {
	t.Run("creates a room", func(t *testing.T) {
		service := &mockRoomService{
			createRoomFn: func(ctx context.Context, facilityID uint, req room.CreateRoomRequest) (*room.RoomResponse, error) {
				assert.Equal(t, uint(5), facilityID)
				assert.Equal(t, "Toddler A", req.Name)
				return &room.RoomResponse{
					ID:            1,
					FacilityID:    facilityID,
					Name:          req.Name,
					AgeGroup:      req.AgeGroup,
					RequiredRatio: "1:6",
					Capacity:      req.Capacity,
					Status:        "active",
				}, nil
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/5/rooms", room.CreateRoomRequest{
			Name:          "Toddler A",
			AgeGroup:      "toddler",
			RequiredRatio: "1:6",
			Capacity:      14,
		})
		testutil.SetAuthContext(c, 5, "Dana")

		handler.CreateRoom(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("propagates duplicate name conflict", func(t *testing.T) {
		service := &mockRoomService{
			createRoomFn: func(ctx context.Context, facilityID uint, req room.CreateRoomRequest) (*room.RoomResponse, error) {
				return nil, errors.NewConflictError("a room named Toddler A already exists")
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/facilities/5/rooms", room.CreateRoomRequest{
			Name:     "Toddler A",
			AgeGroup: "toddler",
		})
		testutil.SetAuthContext(c, 5, "Dana")

		handler.CreateRoom(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRoomHandler_ListRooms(t *testing.T) {
	t.Run("excludes archived rooms by default", func(t *testing.T) {
		var gotIncludeArchived bool
		service := &mockRoomService{
			listRoomsFn: func(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.RoomResponse, error) {
				gotIncludeArchived = includeArchived
				return []*room.RoomResponse{{ID: 1, Name: "Toddler A"}}, nil
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/facilities/5/rooms", nil)
		testutil.SetAuthContext(c, 5, "Dana")

		handler.ListRooms(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotIncludeArchived)
	})

	t.Run("includes archived rooms when requested", func(t *testing.T) {
		var gotIncludeArchived bool
		service := &mockRoomService{
			listRoomsFn: func(ctx context.Context, facilityID uint, includeArchived bool) ([]*room.RoomResponse, error) {
				gotIncludeArchived = includeArchived
				return nil, nil
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/facilities/5/rooms", nil)
		testutil.SetAuthContext(c, 5, "Dana")
		testutil.SetQueryParams(c, map[string]string{"include_archived": "true"})

		handler.ListRooms(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotIncludeArchived)
	})
}

func TestRoomHandler_ArchiveRoom(t *testing.T) {
	t.Run("archives by id", func(t *testing.T) {
		service := &mockRoomService{
			archiveRoomFn: func(ctx context.Context, facilityID, roomID uint) (*room.RoomResponse, error) {
				assert.Equal(t, uint(9), roomID)
				return &room.RoomResponse{ID: roomID, Status: "archived"}, nil
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/facilities/5/rooms/9", nil)
		testutil.SetAuthContext(c, 5, "Dana")
		testutil.SetURLParam(c, "id", "9")

		handler.ArchiveRoom(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns not found for unknown room", func(t *testing.T) {
		service := &mockRoomService{
			archiveRoomFn: func(ctx context.Context, facilityID, roomID uint) (*room.RoomResponse, error) {
				return nil, errors.NewNotFoundError("room")
			},
		}
		handler := NewRoomHandler(service, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/facilities/5/rooms/99", nil)
		testutil.SetAuthContext(c, 5, "Dana")
		testutil.SetURLParam(c, "id", "99")

		handler.ArchiveRoom(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

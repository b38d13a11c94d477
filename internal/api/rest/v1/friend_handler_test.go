//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testReceiverID = "6f1c2a14-9f6f-4f6b-8f7e-0c8f4a6d2b31"

func TestFriendHandler_SendRequest_Success(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	friendship := &accounts.Friendship{
		ID:          1,
		RequesterID: "user-1",
		ReceiverID:  testReceiverID,
		Status:      accounts.FriendshipStatusPending,
	}
	mockFriendService.On("SendRequest", mock.Anything, "user-1", testReceiverID).Return(friendship, nil)

	c, w := newTestContext(t, "POST", "/friends/requests", `{"user_id":"`+testReceiverID+`"}`, nil)
	handler.SendRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), accounts.FriendshipStatusPending)
	mockFriendService.AssertExpectations(t)
}

func TestFriendHandler_SendRequest_InvalidUserID_Error(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	c, w := newTestContext(t, "POST", "/friends/requests", `{"user_id":"not-a-uuid"}`, nil)
	handler.SendRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFriendService.AssertNotCalled(t, "SendRequest")
}

func TestFriendHandler_Respond_Reject_Success(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	mockFriendService.On("Respond", mock.Anything, "user-1", testReceiverID, "reject").Return(nil, nil)

	body := `{"requester_id":"` + testReceiverID + `","action":"reject"}`
	c, w := newTestContext(t, "POST", "/friends/requests/respond", body, nil)
	handler.Respond(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "request rejected")
	mockFriendService.AssertExpectations(t)
}

func TestFriendHandler_Respond_InvalidAction_Error(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	body := `{"requester_id":"` + testReceiverID + `","action":"maybe"}`
	c, w := newTestContext(t, "POST", "/friends/requests/respond", body, nil)
	handler.Respond(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockFriendService.AssertNotCalled(t, "Respond")
}

func TestFriendHandler_Unfriend_NotFound(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	mockFriendService.On("Unfriend", mock.Anything, "user-1", "user-2").Return(accounts.ErrNotFound)

	c, w := newTestContext(t, "DELETE", "/friends/user-2", "", gin.Params{{Key: "id", Value: "user-2"}})
	handler.Unfriend(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockFriendService.AssertExpectations(t)
}

func TestFriendHandler_Status_Success(t *testing.T) {
	mockFriendService := new(MockFriendService)
	handler := NewFriendHandler(mockFriendService)

	mockFriendService.On("Status", mock.Anything, "user-1", "user-2").Return("friends", nil)

	c, w := newTestContext(t, "GET", "/friends/status/user-2", "", gin.Params{{Key: "id", Value: "user-2"}})
	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "friends")
	mockFriendService.AssertExpectations(t)
}

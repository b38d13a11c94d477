//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an authenticated gin test context with an
// optional JSON body and path parameters.
func newTestContext(t *testing.T, method, path, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c.Request = req
	c.Params = params
	c.Set(userIDKey, "user-1")
	return c, w
}

func TestPostHandler_Create_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	post := &social.Post{ID: 7, AuthorID: "user-1", Content: "bonjou tout moun", Privacy: social.PrivacyPublic}
	mockPostService.On("Create", mock.Anything, "user-1", mock.Anything).Return(post, nil)

	c, w := newTestContext(t, "POST", "/posts", `{"content":"bonjou tout moun","privacy":"public"}`, nil)
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "bonjou tout moun")
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Create_InvalidPrivacy_Error(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	c, w := newTestContext(t, "POST", "/posts", `{"content":"hi","privacy":"everyone"}`, nil)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
	mockPostService.AssertNotCalled(t, "Create")
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	mockPostService.On("Get", mock.Anything, "user-1", uint(42)).Return(nil, social.ErrNotFound)

	c, w := newTestContext(t, "GET", "/posts/42", "", gin.Params{{Key: "id", Value: "42"}})
	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Get_InvalidID_Error(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	c, w := newTestContext(t, "GET", "/posts/abc", "", gin.Params{{Key: "id", Value: "abc"}})
	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPostService.AssertNotCalled(t, "Get")
}

func TestPostHandler_Feed_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	feed := &social.FeedPage{
		Posts:    []*social.Post{{ID: 1, AuthorID: "user-2", Content: "first"}},
		Page:     1,
		PageSize: 20,
		Total:    1,
	}
	mockPostService.On("Feed", mock.Anything, "user-1", 1, 20).Return(feed, nil)

	c, w := newTestContext(t, "GET", "/feed", "", nil)
	handler.Feed(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "first")
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_ToggleLike_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	mockPostService.On("ToggleLike", mock.Anything, "user-1", uint(7)).Return(true, nil)

	c, w := newTestContext(t, "POST", "/posts/7/like", "", gin.Params{{Key: "id", Value: "7"}})
	handler.ToggleLike(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_Share_Forbidden(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	mockPostService.On("Share", mock.Anything, "user-1", uint(7), "look at this", "").Return(nil, social.ErrBlocked)

	c, w := newTestContext(t, "POST", "/posts/7/share", `{"content":"look at this"}`, gin.Params{{Key: "id", Value: "7"}})
	handler.Share(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_ShareBulk_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	sharedID := uint(7)
	societyID := uint(2)
	shares := []*social.Post{
		{ID: 8, AuthorID: "user-1", Content: "must see", SharedPostID: &sharedID},
		{ID: 9, AuthorID: "user-1", Content: "must see", SharedPostID: &sharedID, SocietyID: &societyID},
	}
	mockPostService.On("ShareBulk", mock.Anything, "user-1", uint(7), "must see", "friends", []uint{2}).Return(shares, nil)

	body := `{"content":"must see","privacy":"friends","society_ids":[2]}`
	c, w := newTestContext(t, "POST", "/posts/7/share-bulk", body, gin.Params{{Key: "id", Value: "7"}})
	handler.ShareBulk(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "must see")
	mockPostService.AssertExpectations(t)
}

func TestPostHandler_CreateComment_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	comment := &social.Comment{ID: 3, PostID: 7, AuthorID: "user-1", Content: "nice one"}
	mockCommentService.On("Create", mock.Anything, "user-1", uint(7), (*uint)(nil), "nice one").Return(comment, nil)

	c, w := newTestContext(t, "POST", "/posts/7/comments", `{"content":"nice one"}`, gin.Params{{Key: "id", Value: "7"}})
	handler.CreateComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "nice one")
	mockCommentService.AssertExpectations(t)
}

func TestPostHandler_DeleteComment_Forbidden(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	mockCommentService.On("Delete", mock.Anything, "user-1", uint(3)).Return(social.ErrForbidden)

	c, w := newTestContext(t, "DELETE", "/comments/3", "", gin.Params{{Key: "id", Value: "3"}})
	handler.DeleteComment(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockCommentService.AssertExpectations(t)
}

func TestPostHandler_ListLikers_Success(t *testing.T) {
	mockPostService := new(MockPostService)
	mockCommentService := new(MockCommentService)
	handler := NewPostHandler(mockPostService, mockCommentService)

	likers := []*accounts.User{{ID: "user-2", ProfileName: "bruno"}}
	mockPostService.On("ListLikers", mock.Anything, "user-1", uint(7)).Return(likers, nil)

	c, w := newTestContext(t, "GET", "/posts/7/likes", "", gin.Params{{Key: "id", Value: "7"}})
	handler.ListLikers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bruno")
	mockPostService.AssertExpectations(t)
}

//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"github.com/stretchr/testify/mock"
)

// MockFriendService is a mock implementation of FriendService
type MockFriendService struct {
	mock.Mock
}

func (m *MockFriendService) SendRequest(ctx context.Context, requesterID, receiverID string) (*accounts.Friendship, error) {
	args := m.Called(ctx, requesterID, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Friendship), args.Error(1)
}

func (m *MockFriendService) ListIncoming(ctx context.Context, userID string) ([]*accounts.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Friendship), args.Error(1)
}

func (m *MockFriendService) Respond(ctx context.Context, userID, requesterID, action string) (*accounts.Friendship, error) {
	args := m.Called(ctx, userID, requesterID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Friendship), args.Error(1)
}

func (m *MockFriendService) ListFriends(ctx context.Context, userID string) ([]*accounts.Friendship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Friendship), args.Error(1)
}

func (m *MockFriendService) Unfriend(ctx context.Context, userID, otherID string) error {
	args := m.Called(ctx, userID, otherID)
	return args.Error(0)
}

func (m *MockFriendService) Suggestions(ctx context.Context, userID string, limit int) ([]*accounts.User, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.User), args.Error(1)
}

func (m *MockFriendService) Status(ctx context.Context, userID, otherID string) (string, error) {
	args := m.Called(ctx, userID, otherID)
	return args.String(0), args.Error(1)
}

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, authorID string, input social.CreatePostInput) (*social.Post, error) {
	args := m.Called(ctx, authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, viewerID string, postID uint) (*social.Post, error) {
	args := m.Called(ctx, viewerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, userID string, postID uint, input social.UpdatePostInput) (*social.Post, error) {
	args := m.Called(ctx, userID, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, userID string, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) Feed(ctx context.Context, viewerID string, page, pageSize int) (*social.FeedPage, error) {
	args := m.Called(ctx, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.FeedPage), args.Error(1)
}

func (m *MockPostService) ListByAuthor(ctx context.Context, viewerID, authorID string, page, pageSize int) (*social.FeedPage, error) {
	args := m.Called(ctx, viewerID, authorID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.FeedPage), args.Error(1)
}

func (m *MockPostService) ToggleLike(ctx context.Context, userID string, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostService) Share(ctx context.Context, userID string, postID uint, content, privacy string) (*social.Post, error) {
	args := m.Called(ctx, userID, postID, content, privacy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Post), args.Error(1)
}

func (m *MockPostService) ShareBulk(ctx context.Context, userID string, postID uint, content, privacy string, societyIDs []uint) ([]*social.Post, error) {
	args := m.Called(ctx, userID, postID, content, privacy, societyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*social.Post), args.Error(1)
}

func (m *MockPostService) ListLikers(ctx context.Context, viewerID string, postID uint) ([]*accounts.User, error) {
	args := m.Called(ctx, viewerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.User), args.Error(1)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, authorID string, postID uint, parentID *uint, content string) (*social.Comment, error) {
	args := m.Called(ctx, authorID, postID, parentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentService) List(ctx context.Context, viewerID string, postID uint, page, pageSize int) ([]*social.Comment, int64, error) {
	args := m.Called(ctx, viewerID, postID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*social.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentService) ListReplies(ctx context.Context, viewerID string, commentID uint) ([]*social.Comment, error) {
	args := m.Called(ctx, viewerID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*social.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, userID string, commentID uint, content string) (*social.Comment, error) {
	args := m.Called(ctx, userID, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*social.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, userID string, commentID uint) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *MockCommentService) ToggleLike(ctx context.Context, userID string, commentID uint) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, userID, name, description string) (*shop.Category, error) {
	args := m.Called(ctx, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context) ([]*shop.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shop.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, categoryID uint) (*shop.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, userID string, categoryID uint, name, description string) (*shop.Category, error) {
	args := m.Called(ctx, userID, categoryID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, userID string, categoryID uint) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, sellerID string, input shop.CreateProductInput) (*shop.Product, error) {
	args := m.Called(ctx, sellerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, viewerID string, productID uint) (*shop.Product, error) {
	args := m.Called(ctx, viewerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, userID string, productID uint, input shop.UpdateProductInput) (*shop.Product, error) {
	args := m.Called(ctx, userID, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, userID string, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockProductService) List(ctx context.Context, viewerID string, filter shop.ProductFilter) ([]*shop.Product, int64, error) {
	args := m.Called(ctx, viewerID, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*shop.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) ListMine(ctx context.Context, sellerID string, page, pageSize int) ([]*shop.Product, int64, error) {
	args := m.Called(ctx, sellerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*shop.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) ListPending(ctx context.Context, userID string, page, pageSize int) ([]*shop.Product, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*shop.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) Review(ctx context.Context, userID string, productID uint, approve bool, reason string) (*shop.Product, error) {
	args := m.Called(ctx, userID, productID, approve, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

func (m *MockProductService) AddImage(ctx context.Context, userID string, productID uint, input shop.ImageInput) (*shop.ProductImage, error) {
	args := m.Called(ctx, userID, productID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ProductImage), args.Error(1)
}

func (m *MockProductService) RemoveImage(ctx context.Context, userID string, productID, imageID uint) error {
	args := m.Called(ctx, userID, productID, imageID)
	return args.Error(0)
}

// MockCartService is a mock implementation of CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, userID string) (*shop.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*shop.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.CartItem), args.Error(1)
}

func (m *MockCartService) UpdateItem(ctx context.Context, userID string, itemID uint, quantity int) (*shop.CartItem, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.CartItem), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID string, itemID uint) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, userID string, cartItemIDs []uint, shipping shop.ShippingInput) (*shop.Order, error) {
	args := m.Called(ctx, userID, cartItemIDs, shipping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderService) BuyNow(ctx context.Context, userID string, productID uint, quantity int, shipping shop.ShippingInput) (*shop.Order, error) {
	args := m.Called(ctx, userID, productID, quantity, shipping)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, userID, status string, page, pageSize int) ([]*shop.Order, int64, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*shop.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) Get(ctx context.Context, userID string, orderID uint) (*shop.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, userID string, orderID uint) (*shop.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderService) SetStatus(ctx context.Context, userID string, orderID uint, status string) (*shop.Order, error) {
	args := m.Called(ctx, userID, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Order), args.Error(1)
}

func (m *MockOrderService) ListSales(ctx context.Context, sellerID string, page, pageSize int) ([]*shop.Order, int64, error) {
	args := m.Called(ctx, sellerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*shop.Order), args.Get(1).(int64), args.Error(2)
}

package v1

import (
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the route table depends on.
type Services struct {
	TokenManager *auth.TokenManager

	AccountService     accounts.AccountService
	ProfileItemService accounts.ProfileItemService
	FriendService      accounts.FriendService

	PostService         social.PostService
	CommentService      social.CommentService
	StoryService        social.StoryService
	SocietyService      social.SocietyService
	BlockService        social.BlockService
	NotificationService social.NotificationService

	ChatService chat.ChatService

	CategoryService shop.CategoryService
	ProductService  shop.ProductService
	CartService     shop.CartService
	OrderService    shop.OrderService

	StreamService livestream.StreamService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services Services) {
	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(services.AccountService, services.TokenManager)
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.POST("/auth/reset-password", authHandler.ResetPassword)

	authed := v1.Group("", RequireAuth(services.TokenManager))

	// Account Routes
	accountHandler := NewAccountHandler(services.AccountService, services.ProfileItemService)
	authed.GET("/me", accountHandler.GetMyProfile)
	authed.PATCH("/me", accountHandler.UpdateProfile)
	authed.POST("/me/lock", accountHandler.ToggleProfileLock)
	authed.POST("/me/otp", accountHandler.SendOTP)
	authed.POST("/me/password", accountHandler.ChangePassword)
	authed.POST("/me/email", accountHandler.ChangeEmail)
	authed.POST("/me/phone", accountHandler.ChangePhoneNumber)
	authed.POST("/me/emails", accountHandler.AddEmail)
	authed.DELETE("/me/emails/:id", accountHandler.DeleteExtraEmail)
	authed.POST("/me/phones", accountHandler.AddPhoneNumber)
	authed.DELETE("/me/phones/:id", accountHandler.DeleteExtraPhoneNumber)

	authed.GET("/me/locations", accountHandler.ListLocations)
	authed.POST("/me/locations", accountHandler.CreateLocation)
	authed.PUT("/me/locations/:id", accountHandler.UpdateLocation)
	authed.DELETE("/me/locations/:id", accountHandler.DeleteLocation)
	authed.GET("/me/works", accountHandler.ListWorks)
	authed.POST("/me/works", accountHandler.CreateWork)
	authed.PUT("/me/works/:id", accountHandler.UpdateWork)
	authed.DELETE("/me/works/:id", accountHandler.DeleteWork)
	authed.GET("/me/educations", accountHandler.ListEducations)
	authed.POST("/me/educations", accountHandler.CreateEducation)
	authed.PUT("/me/educations/:id", accountHandler.UpdateEducation)
	authed.DELETE("/me/educations/:id", accountHandler.DeleteEducation)

	authed.GET("/users/search", accountHandler.SearchUsers)
	authed.GET("/users/:id", accountHandler.GetUserProfile)

	// Friend Routes
	friendHandler := NewFriendHandler(services.FriendService)
	authed.POST("/friends/requests", friendHandler.SendRequest)
	authed.GET("/friends/requests", friendHandler.ListIncoming)
	authed.POST("/friends/requests/respond", friendHandler.Respond)
	authed.GET("/friends", friendHandler.ListFriends)
	authed.DELETE("/friends/:id", friendHandler.Unfriend)
	authed.GET("/friends/suggestions", friendHandler.Suggestions)
	authed.GET("/friends/status/:id", friendHandler.Status)

	// Post and Comment Routes
	postHandler := NewPostHandler(services.PostService, services.CommentService)
	authed.GET("/feed", postHandler.Feed)
	authed.POST("/posts", postHandler.Create)
	authed.GET("/posts/:id", postHandler.Get)
	authed.PATCH("/posts/:id", postHandler.Update)
	authed.DELETE("/posts/:id", postHandler.Delete)
	authed.POST("/posts/:id/like", postHandler.ToggleLike)
	authed.GET("/posts/:id/likes", postHandler.ListLikers)
	authed.POST("/posts/:id/share", postHandler.Share)
	authed.POST("/posts/:id/share-bulk", postHandler.ShareBulk)
	authed.POST("/posts/:id/comments", postHandler.CreateComment)
	authed.GET("/posts/:id/comments", postHandler.ListComments)
	authed.GET("/users/:id/posts", postHandler.ListByAuthor)
	authed.GET("/comments/:id/replies", postHandler.ListReplies)
	authed.PATCH("/comments/:id", postHandler.UpdateComment)
	authed.DELETE("/comments/:id", postHandler.DeleteComment)
	authed.POST("/comments/:id/like", postHandler.ToggleCommentLike)

	// Story Routes
	storyHandler := NewStoryHandler(services.StoryService)
	authed.POST("/stories", storyHandler.Create)
	authed.GET("/stories/feed", storyHandler.Feed)
	authed.GET("/stories/:id", storyHandler.Get)
	authed.DELETE("/stories/:id", storyHandler.Delete)
	authed.POST("/stories/:id/view", storyHandler.MarkViewed)
	authed.GET("/stories/:id/viewers", storyHandler.ListViewers)

	// Society Routes
	societyHandler := NewSocietyHandler(services.SocietyService)
	authed.POST("/societies", societyHandler.Create)
	authed.GET("/societies", societyHandler.List)
	authed.GET("/societies/mine", societyHandler.ListMine)
	authed.GET("/societies/:id", societyHandler.Get)
	authed.PATCH("/societies/:id", societyHandler.Update)
	authed.DELETE("/societies/:id", societyHandler.Delete)
	authed.POST("/societies/:id/join", societyHandler.Join)
	authed.POST("/societies/:id/leave", societyHandler.Leave)
	authed.GET("/societies/:id/members", societyHandler.ListMembers)
	authed.GET("/societies/:id/members/pending", societyHandler.PendingMembers)
	authed.POST("/societies/:id/members/:userId/respond", societyHandler.RespondMembership)
	authed.PUT("/societies/:id/members/role", societyHandler.SetRole)
	authed.DELETE("/societies/:id/members/:userId", societyHandler.RemoveMember)
	authed.GET("/societies/:id/posts", societyHandler.Posts)
	authed.GET("/societies/:id/posts/pending", societyHandler.PendingPosts)
	authed.POST("/societies/:id/posts/:postId/moderate", societyHandler.ModeratePost)

	// Notification Routes
	notificationHandler := NewNotificationHandler(services.NotificationService)
	authed.GET("/notifications", notificationHandler.List)
	authed.GET("/notifications/unread", notificationHandler.UnreadCount)
	authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	authed.POST("/notifications/:id/read", notificationHandler.MarkRead)
	authed.DELETE("/notifications/:id", notificationHandler.Delete)

	// Block Routes
	blockHandler := NewBlockHandler(services.BlockService)
	authed.POST("/blocks", blockHandler.Block)
	authed.GET("/blocks", blockHandler.ListBlocked)
	authed.DELETE("/blocks/:id", blockHandler.Unblock)

	// Chat Routes
	chatHandler := NewChatHandler(services.ChatService)
	authed.POST("/chat/with/:userId", chatHandler.EnsureConversation)
	authed.GET("/chat/conversations", chatHandler.ListConversations)
	authed.GET("/chat/conversations/:id", chatHandler.GetConversation)
	authed.DELETE("/chat/conversations/:id", chatHandler.DeleteConversation)
	authed.POST("/chat/conversations/:id/messages", chatHandler.SendMessage)
	authed.GET("/chat/conversations/:id/messages", chatHandler.ListMessages)
	authed.POST("/chat/conversations/:id/read", chatHandler.MarkRead)
	authed.POST("/chat/messages/:id/read", chatHandler.MarkMessageRead)
	authed.GET("/chat/unread", chatHandler.UnreadTotal)
	authed.POST("/chat/global", chatHandler.SendGlobalMessage)
	authed.GET("/chat/global", chatHandler.ListGlobalMessages)

	// Shop Routes
	shopHandler := NewShopHandler(services.CategoryService, services.ProductService, services.CartService, services.OrderService)
	authed.POST("/shop/categories", shopHandler.CreateCategory)
	authed.GET("/shop/categories", shopHandler.ListCategories)
	authed.GET("/shop/categories/:id", shopHandler.GetCategory)
	authed.PUT("/shop/categories/:id", shopHandler.UpdateCategory)
	authed.DELETE("/shop/categories/:id", shopHandler.DeleteCategory)

	authed.POST("/shop/products", shopHandler.CreateProduct)
	authed.GET("/shop/products", shopHandler.ListProducts)
	authed.GET("/shop/products/mine", shopHandler.ListMyProducts)
	authed.GET("/shop/products/pending", shopHandler.ListPendingProducts)
	authed.GET("/shop/products/:id", shopHandler.GetProduct)
	authed.PATCH("/shop/products/:id", shopHandler.UpdateProduct)
	authed.DELETE("/shop/products/:id", shopHandler.DeleteProduct)
	authed.POST("/shop/products/:id/review", shopHandler.ReviewProduct)
	authed.POST("/shop/products/:id/images", shopHandler.AddProductImage)
	authed.DELETE("/shop/products/:id/images/:imageId", shopHandler.RemoveProductImage)

	authed.GET("/shop/cart", shopHandler.GetCart)
	authed.DELETE("/shop/cart", shopHandler.ClearCart)
	authed.POST("/shop/cart/items", shopHandler.AddCartItem)
	authed.PUT("/shop/cart/items/:id", shopHandler.UpdateCartItem)
	authed.DELETE("/shop/cart/items/:id", shopHandler.RemoveCartItem)

	authed.POST("/shop/orders/checkout", shopHandler.Checkout)
	authed.POST("/shop/orders/buy-now", shopHandler.BuyNow)
	authed.GET("/shop/orders", shopHandler.ListOrders)
	authed.GET("/shop/orders/:id", shopHandler.GetOrder)
	authed.POST("/shop/orders/:id/cancel", shopHandler.CancelOrder)
	authed.PUT("/shop/orders/:id/status", shopHandler.SetOrderStatus)
	authed.GET("/shop/sales", shopHandler.ListSales)

	// Stream Routes
	streamHandler := NewStreamHandler(services.StreamService)
	authed.POST("/streams", streamHandler.Create)
	authed.GET("/streams/live", streamHandler.ListLive)
	authed.GET("/streams/mine", streamHandler.ListMine)
	authed.GET("/streams/:id", streamHandler.Get)
	authed.POST("/streams/:id/start", streamHandler.Start)
	authed.POST("/streams/:id/end", streamHandler.End)
	authed.POST("/streams/:id/join", streamHandler.Join)
	authed.POST("/streams/:id/leave", streamHandler.Leave)
	authed.DELETE("/streams/:id", streamHandler.Delete)
	authed.POST("/streams/:id/comments", streamHandler.AddComment)
	authed.GET("/streams/:id/comments", streamHandler.ListComments)
}

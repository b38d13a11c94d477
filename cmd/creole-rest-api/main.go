// cmd/creole-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/mahamudh472/GlobalCreoleSociety/internal/api/rest/v1"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/api/ws"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/app"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/mail"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/persistence"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/streaming"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services     v1.Services
	tokenManager *auth.TokenManager
	wsHandler    *ws.Handler
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	friendshipRepo, err := persistence.NewGormFriendshipRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship repository: %w", err)
	}
	otpRepo, err := persistence.NewGormOTPRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create otp repository: %w", err)
	}
	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	contactRepo, err := persistence.NewGormContactRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	postRepo, err := persistence.NewGormPostRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post repository: %w", err)
	}
	commentRepo, err := persistence.NewGormCommentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment repository: %w", err)
	}
	storyRepo, err := persistence.NewGormStoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create story repository: %w", err)
	}
	societyRepo, err := persistence.NewGormSocietyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create society repository: %w", err)
	}
	blockRepo, err := persistence.NewGormBlockRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create block repository: %w", err)
	}
	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	chatRepo, err := persistence.NewGormChatRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat repository: %w", err)
	}
	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	cartRepo, err := persistence.NewGormCartRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart repository: %w", err)
	}
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	streamRepo, err := persistence.NewGormStreamRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream repository: %w", err)
	}

	// Initialize infrastructure adapters
	mailSender, err := mail.NewLogMailSender(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail sender: %w", err)
	}
	channelProvider, err := streaming.NewStaticChannelProvider(cfg.Streaming.BaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel provider: %w", err)
	}
	tokenManager, err := auth.NewTokenManager(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	// Initialize services
	notificationService, notifier, err := app.NewNotificationService(notificationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}
	accountService, err := app.NewAccountService(
		userRepo, friendshipRepo, otpRepo, profileRepo, contactRepo,
		postRepo, blockRepo, mailSender, cfg.Auth.OTPValidity(), log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	profileItemService, err := app.NewProfileItemService(profileRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile item service: %w", err)
	}
	friendService, err := app.NewFriendService(friendshipRepo, userRepo, blockRepo, chatRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create friend service: %w", err)
	}
	postService, err := app.NewPostService(postRepo, societyRepo, friendshipRepo, blockRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}
	commentService, err := app.NewCommentService(commentRepo, postRepo, societyRepo, friendshipRepo, blockRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}
	storyService, err := app.NewStoryService(storyRepo, friendshipRepo, userRepo, blockRepo, societyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create story service: %w", err)
	}
	societyService, err := app.NewSocietyService(societyRepo, postRepo, friendshipRepo, blockRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create society service: %w", err)
	}
	blockService, err := app.NewBlockService(blockRepo, friendshipRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create block service: %w", err)
	}
	chatService, err := app.NewChatService(chatRepo, userRepo, friendshipRepo, blockRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}
	categoryService, err := app.NewCategoryService(categoryRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	productService, err := app.NewProductService(productRepo, categoryRepo, userRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	cartService, err := app.NewCartService(cartRepo, productRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %w", err)
	}
	orderService, err := app.NewOrderService(orderRepo, cartRepo, productRepo, userRepo, notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	streamService, err := app.NewStreamService(streamRepo, channelProvider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream service: %w", err)
	}

	log.Info("Application services initialized successfully")

	// Initialize the websocket hub
	hub := ws.NewHub(log)
	wsHandler := ws.NewHandler(hub, chatService, tokenManager, log)

	return &appDependencies{
		services: v1.Services{
			TokenManager:        tokenManager,
			AccountService:      accountService,
			ProfileItemService:  profileItemService,
			FriendService:       friendService,
			PostService:         postService,
			CommentService:      commentService,
			StoryService:        storyService,
			SocietyService:      societyService,
			BlockService:        blockService,
			NotificationService: notificationService,
			ChatService:         chatService,
			CategoryService:     categoryService,
			ProductService:      productService,
			CartService:         cartService,
			OrderService:        orderService,
			StreamService:       streamService,
		},
		tokenManager: tokenManager,
		wsHandler:    wsHandler,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services)

	// Websocket endpoint for real-time chat
	r.GET("/ws", deps.wsHandler.Serve)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

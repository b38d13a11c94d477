package commands

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/persistence"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var categorySlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// AdminCommandHandler encapsulates logic for handling administrative
// operations via CLI.
type AdminCommandHandler struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler
// instance with a configured logger and database connection.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := openDatabase()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &AdminCommandHandler{
		db:     db,
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the database schema for every domain entity
func (commandHandler *AdminCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	if err := persistence.Migrate(commandHandler.db); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Database schema migrated")
}

// CreateAdminCmd creates a staff account with the given credentials
func (commandHandler *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	profileName, err := cmd.Flags().GetString("profile-name")
	if err != nil {
		commandHandler.logger.Error("invalid profile-name flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	userRepo, err := persistence.NewGormUserRepository(commandHandler.db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()

	taken, err := userRepo.EmailTaken(ctx, email)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if taken {
		commandHandler.logger.Error("email already in use: ", email)
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user := &accounts.User{
		ID:           uuid.New().String(),
		Email:        email,
		ProfileName:  profileName,
		PasswordHash: passwordHash,
		IsStaff:      true,
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := userRepo.Create(ctx, user); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Staff account created with id ", user.ID)
}

// SeedCategoriesCmd inserts marketplace categories, skipping names that
// already exist
func (commandHandler *AdminCommandHandler) SeedCategoriesCmd(cmd *cobra.Command, _ []string) {
	names, err := cmd.Flags().GetStringSlice("names")
	if err != nil {
		commandHandler.logger.Error("invalid names flag ", err)
		return
	}

	categoryRepo, err := persistence.NewGormCategoryRepository(commandHandler.db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()
	created := 0

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		taken, err := categoryRepo.NameTaken(ctx, name)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		if taken {
			commandHandler.logger.Info("Category already exists, skipping ", name)
			continue
		}

		slug := strings.Trim(categorySlugPattern.ReplaceAllString(strings.ToLower(name), "-"), "-")
		category := &shop.Category{Name: name, Slug: slug}
		if err := categoryRepo.Create(ctx, category); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		created++
	}

	commandHandler.logger.Info("Seeded ", created, " categories")
}

// InitAdminCommands registers administrative commands
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create admin command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create a staff account",
		Run:   handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().StringP("email", "", "", "Email address for the staff account")
	createAdminCmd.Flags().StringP("profile-name", "", "", "Unique profile name for the staff account")
	createAdminCmd.Flags().StringP("password", "", "", "Password for the staff account")
	rootCmd.AddCommand(createAdminCmd)

	var seedCategoriesCmd = &cobra.Command{
		Use:   "seed-categories",
		Short: "Insert starter marketplace categories",
		Run:   handler.SeedCategoriesCmd,
	}
	seedCategoriesCmd.Flags().StringSliceP("names", "", []string{
		"Art & Crafts", "Clothing", "Food & Drink", "Music", "Books", "Home & Living",
	}, "Category names to insert")
	rootCmd.AddCommand(seedCategoriesCmd)

	return nil
}

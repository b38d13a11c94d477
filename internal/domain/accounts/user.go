package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User is the account entity. Email is the authentication identifier.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid" validate:"required,uuid4"`
	Email        string `gorm:"uniqueIndex;not null;type:varchar(255)" validate:"required,email"`
	ProfileName  string `gorm:"uniqueIndex;not null;type:varchar(150)" validate:"required,min=1,max=150"`
	PasswordHash string `gorm:"not null" json:"-"`

	Description  string `gorm:"type:text"`
	ProfileImage string `gorm:"type:varchar(500)"`
	CoverPhoto   string `gorm:"type:varchar(500)"`
	Website      string `gorm:"type:text"`
	PhoneNumber  string `gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Gender       string `gorm:"type:varchar(20)"`
	DateOfBirth  *time.Time
	ShareData    bool

	IsStaff     bool
	IsActive    bool      `gorm:"not null;default:true"`
	ProfileLock bool
	DateJoined  time.Time `gorm:"not null"`
	LastLogin   *time.Time

	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Validate checks the user entity against its field constraints.
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Location is a place associated with a user profile.
type Location struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index;type:uuid"`
	Name      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Work is an employment entry on a user profile.
type Work struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index;type:uuid"`
	Company     string `gorm:"type:varchar(255)"`
	Position    string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Education is an education entry on a user profile.
type Education struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index;type:uuid"`
	College     string `gorm:"type:varchar(255)"`
	Subject     string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExtraEmail is an additional verified email on a user account.
type ExtraEmail struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"not null;index;type:uuid"`
	Email      string `gorm:"uniqueIndex;not null;type:varchar(255)"`
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ExtraPhoneNumber is an additional verified phone number on a user account.
type ExtraPhoneNumber struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"not null;index;type:uuid"`
	PhoneNumber string `gorm:"uniqueIndex;not null;type:varchar(20)"`
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package accounts

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across the account services.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrProfileNameTaken   = errors.New("profile name already in use")
	ErrPhoneNumberTaken   = errors.New("phone number already in use")
	ErrInvalidOTP         = errors.New("invalid code")
	ErrExpiredOTP         = errors.New("the code has expired")
	ErrWrongPassword      = errors.New("wrong password")
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Email       string
	ProfileName string
	Password    string
	PhoneNumber string
	Gender      string
	DateOfBirth *time.Time
	ShareData   bool
}

// UpdateProfileInput carries the mutable profile fields. Nil pointers
// leave the existing value untouched.
type UpdateProfileInput struct {
	ProfileName  *string
	Description  *string
	ProfileImage *string
	CoverPhoto   *string
	Website      *string
	Gender       *string
	DateOfBirth  *time.Time
}

// Profile is a user together with profile sub-resources and counters.
type Profile struct {
	User              *User
	Locations         []*Location
	Works             []*Work
	Educations        []*Education
	ExtraEmails       []*ExtraEmail
	ExtraPhoneNumbers []*ExtraPhoneNumber
	PostCount         int64
	FriendCount       int64
	LikeCount         int64
}

// AccountService defines account lifecycle and profile operations.
type AccountService interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// Authenticate verifies email and password and returns the user.
	// It updates the user's last login timestamp on success.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetProfile returns the caller's own profile with counters.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// GetOtherProfile returns another user's profile, honoring blocks
	// and profile locks. Locked profiles are reduced to the basic card
	// unless the viewer is an accepted friend.
	GetOtherProfile(ctx context.Context, viewerID, userID string) (*Profile, error)

	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*User, error)
	ToggleProfileLock(ctx context.Context, userID string) (bool, error)
	SearchUsers(ctx context.Context, viewerID, query string, limit int) ([]*User, error)

	// SendOTP issues a one-time code and hands it to the mail sender.
	SendOTP(ctx context.Context, userID string) error

	ChangePassword(ctx context.Context, userID, oldPassword, newPassword, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	ChangeEmail(ctx context.Context, userID, newEmail, password, code string) error
	ChangePhoneNumber(ctx context.Context, userID, newPhoneNumber, password, code string) error

	AddEmail(ctx context.Context, userID, email, password, code string) (*ExtraEmail, error)
	AddPhoneNumber(ctx context.Context, userID, phoneNumber, password, code string) (*ExtraPhoneNumber, error)
	DeleteExtraEmail(ctx context.Context, userID string, emailID uint) error
	DeleteExtraPhoneNumber(ctx context.Context, userID string, phoneID uint) error
}

// ProfileItemInput carries the fields for a profile sub-resource.
type ProfileItemInput struct {
	Name        string
	Company     string
	Position    string
	College     string
	Subject     string
	Description string
}

// ProfileItemService defines CRUD over locations, works and educations.
// All operations are scoped to the owning user.
type ProfileItemService interface {
	ListLocations(ctx context.Context, userID string) ([]*Location, error)
	CreateLocation(ctx context.Context, userID, name string) (*Location, error)
	UpdateLocation(ctx context.Context, userID string, id uint, name string) (*Location, error)
	DeleteLocation(ctx context.Context, userID string, id uint) error

	ListWorks(ctx context.Context, userID string) ([]*Work, error)
	CreateWork(ctx context.Context, userID string, input ProfileItemInput) (*Work, error)
	UpdateWork(ctx context.Context, userID string, id uint, input ProfileItemInput) (*Work, error)
	DeleteWork(ctx context.Context, userID string, id uint) error

	ListEducations(ctx context.Context, userID string) ([]*Education, error)
	CreateEducation(ctx context.Context, userID string, input ProfileItemInput) (*Education, error)
	UpdateEducation(ctx context.Context, userID string, id uint, input ProfileItemInput) (*Education, error)
	DeleteEducation(ctx context.Context, userID string, id uint) error
}

// FriendService defines friend request and friendship operations.
type FriendService interface {
	// SendRequest creates a pending friendship and notifies the receiver.
	SendRequest(ctx context.Context, requesterID, receiverID string) (*Friendship, error)

	// ListIncoming returns pending requests received by the user.
	ListIncoming(ctx context.Context, userID string) ([]*Friendship, error)

	// Respond accepts or rejects a pending request sent by requesterID
	// to userID. Accepting notifies the requester and ensures a chat
	// conversation exists between the pair. Rejecting deletes the row.
	Respond(ctx context.Context, userID, requesterID, action string) (*Friendship, error)

	ListFriends(ctx context.Context, userID string) ([]*Friendship, error)
	Unfriend(ctx context.Context, userID, otherID string) error

	// Suggestions returns active, unlocked users with no existing
	// friendship, request or block relative to the caller.
	Suggestions(ctx context.Context, userID string, limit int) ([]*User, error)

	// Status returns one of none, pending_sent, pending_received, friends.
	Status(ctx context.Context, userID, otherID string) (string, error)
}

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	EmailTaken(ctx context.Context, email string) (bool, error)
	ProfileNameTaken(ctx context.Context, profileName string) (bool, error)
	PhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error)

	// Search matches profile names and emails, excluding the given IDs,
	// newest logins first.
	Search(ctx context.Context, query string, excludeIDs []string, limit int) ([]*User, error)

	// ListActiveExcluding returns active, unlocked users whose IDs are
	// not in excludeIDs, most recently logged in first.
	ListActiveExcluding(ctx context.Context, excludeIDs []string, limit int) ([]*User, error)
}

// FriendshipRepository defines persistence for friendships.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *Friendship) error
	GetByPair(ctx context.Context, userA, userB string) (*Friendship, error)
	GetPending(ctx context.Context, requesterID, receiverID string) (*Friendship, error)
	ListPendingForReceiver(ctx context.Context, receiverID string) ([]*Friendship, error)
	ListAcceptedForUser(ctx context.Context, userID string) ([]*Friendship, error)
	UpdateByID(ctx context.Context, friendship *Friendship) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteByPair(ctx context.Context, userA, userB string) error

	// CountAcceptedForUser returns the user's friend count.
	CountAcceptedForUser(ctx context.Context, userID string) (int64, error)

	// ListLinkedUserIDs returns every user linked to userID by any
	// friendship row, accepted or pending.
	ListLinkedUserIDs(ctx context.Context, userID string) ([]string, error)

	// ListFriendIDs returns the IDs of accepted friends only.
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)
}

// OTPRepository defines persistence for one-time codes.
type OTPRepository interface {
	Create(ctx context.Context, otp *OTP) error
	GetByUserAndCode(ctx context.Context, userID, code string) (*OTP, error)
	DeleteByID(ctx context.Context, id uint) error
}

// ProfileRepository defines persistence for profile sub-resources.
type ProfileRepository interface {
	CreateLocation(ctx context.Context, location *Location) error
	GetLocation(ctx context.Context, id uint) (*Location, error)
	ListLocations(ctx context.Context, userID string) ([]*Location, error)
	UpdateLocation(ctx context.Context, location *Location) error
	DeleteLocation(ctx context.Context, id uint) error

	CreateWork(ctx context.Context, work *Work) error
	GetWork(ctx context.Context, id uint) (*Work, error)
	ListWorks(ctx context.Context, userID string) ([]*Work, error)
	UpdateWork(ctx context.Context, work *Work) error
	DeleteWork(ctx context.Context, id uint) error

	CreateEducation(ctx context.Context, education *Education) error
	GetEducation(ctx context.Context, id uint) (*Education, error)
	ListEducations(ctx context.Context, userID string) ([]*Education, error)
	UpdateEducation(ctx context.Context, education *Education) error
	DeleteEducation(ctx context.Context, id uint) error
}

// ContactRepository defines persistence for extra emails and phone numbers.
type ContactRepository interface {
	CreateExtraEmail(ctx context.Context, email *ExtraEmail) error
	GetExtraEmail(ctx context.Context, id uint) (*ExtraEmail, error)
	ListExtraEmails(ctx context.Context, userID string) ([]*ExtraEmail, error)
	DeleteExtraEmail(ctx context.Context, id uint) error
	ExtraEmailTaken(ctx context.Context, email string) (bool, error)

	CreateExtraPhoneNumber(ctx context.Context, phone *ExtraPhoneNumber) error
	GetExtraPhoneNumber(ctx context.Context, id uint) (*ExtraPhoneNumber, error)
	ListExtraPhoneNumbers(ctx context.Context, userID string) ([]*ExtraPhoneNumber, error)
	DeleteExtraPhoneNumber(ctx context.Context, id uint) error
	ExtraPhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error)
}

// MailSender delivers account emails. The default implementation only
// logs the message; SMTP delivery is a deployment concern.
type MailSender interface {
	SendOTP(ctx context.Context, email, code, purpose string) error
}

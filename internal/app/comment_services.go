package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// commentService implements the CommentService interface
type commentService struct {
	commentRepo social.CommentRepository
	postRepo    social.PostRepository
	notifier    social.Notifier
	policy      *socialPolicy
	logger      logger.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo social.CommentRepository,
	postRepo social.PostRepository,
	societyRepo social.SocietyRepository,
	friendshipRepo accounts.FriendshipRepository,
	blockRepo social.BlockRepository,
	notifier social.Notifier,
	logger logger.Logger,
) (social.CommentService, error) {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		notifier:    notifier,
		policy:      newSocialPolicy(friendshipRepo, blockRepo, societyRepo),
		logger:      logger,
	}, nil
}

func (s *commentService) Create(ctx context.Context, authorID string, postID uint, parentID *uint, content string) (*social.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is empty")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanViewPost(ctx, authorID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}

	var parent *social.Comment
	if parentID != nil {
		parent, err = s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("parent comment belongs to another post")
		}
		// Replies nest one level deep; replying to a reply attaches to
		// its parent.
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	comment := &social.Comment{
		PostID:   postID,
		AuthorID: authorID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: post.AuthorID,
		ActorID:     authorID,
		Type:        social.NotificationComment,
		Message:     "commented on your post",
		PostID:      &postID,
	}); err != nil {
		s.logger.Warn("Failed to notify comment: ", err)
	}

	if parent != nil && parent.AuthorID != post.AuthorID {
		if err := s.notifier.Notify(ctx, &social.Notification{
			RecipientID: parent.AuthorID,
			ActorID:     authorID,
			Type:        social.NotificationReply,
			Message:     "replied to your comment",
			PostID:      &postID,
		}); err != nil {
			s.logger.Warn("Failed to notify reply: ", err)
		}
	}
	return s.decorate(ctx, authorID, comment)
}

// decorate fills the transient counters and the viewer's like state.
func (s *commentService) decorate(ctx context.Context, viewerID string, comment *social.Comment) (*social.Comment, error) {
	var err error
	if comment.LikeCount, err = s.commentRepo.CountLikes(ctx, comment.ID); err != nil {
		return nil, err
	}
	if comment.ReplyCount, err = s.commentRepo.CountReplies(ctx, comment.ID); err != nil {
		return nil, err
	}
	if comment.Liked, err = s.commentRepo.HasLike(ctx, comment.ID, viewerID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, viewerID string, postID uint, page, pageSize int) ([]*social.Comment, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	ok, err := s.policy.CanViewPost(ctx, viewerID, post)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, fmt.Errorf("post %d: %w", postID, social.ErrNotFound)
	}

	comments, total, err := s.commentRepo.ListTopLevel(ctx, postID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for _, comment := range comments {
		if _, err := s.decorate(ctx, viewerID, comment); err != nil {
			return nil, 0, err
		}
	}
	return comments, total, nil
}

func (s *commentService) ListReplies(ctx context.Context, viewerID string, commentID uint) ([]*social.Comment, error) {
	parent, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, parent.PostID)
	if err != nil {
		return nil, err
	}
	ok, err := s.policy.CanViewPost(ctx, viewerID, post)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", commentID, social.ErrNotFound)
	}

	replies, err := s.commentRepo.ListReplies(ctx, commentID)
	if err != nil {
		return nil, err
	}
	for _, reply := range replies {
		if _, err := s.decorate(ctx, viewerID, reply); err != nil {
			return nil, err
		}
	}
	return replies, nil
}

func (s *commentService) Update(ctx context.Context, userID string, commentID uint, content string) (*social.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is empty")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, social.ErrForbidden
	}

	comment.Content = content
	if err := s.commentRepo.UpdateByID(ctx, comment); err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, comment)
}

func (s *commentService) Delete(ctx context.Context, userID string, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID == userID {
		return s.commentRepo.DeleteByID(ctx, commentID)
	}

	// The post author and society moderators may also remove comments.
	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return err
	}
	ok, err := s.policy.CanDeletePost(ctx, userID, post)
	if err != nil {
		return err
	}
	if !ok {
		return social.ErrForbidden
	}
	return s.commentRepo.DeleteByID(ctx, commentID)
}

func (s *commentService) ToggleLike(ctx context.Context, userID string, commentID uint) (bool, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return false, err
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}
	ok, err := s.policy.CanViewPost(ctx, userID, post)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("comment %d: %w", commentID, social.ErrNotFound)
	}

	liked, err := s.commentRepo.HasLike(ctx, commentID, userID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.commentRepo.DeleteLike(ctx, commentID, userID)
	}

	if err := s.commentRepo.CreateLike(ctx, &social.CommentLike{CommentID: commentID, UserID: userID}); err != nil {
		return false, err
	}

	if err := s.notifier.Notify(ctx, &social.Notification{
		RecipientID: comment.AuthorID,
		ActorID:     userID,
		Type:        social.NotificationLike,
		Message:     "liked your comment",
		PostID:      &comment.PostID,
	}); err != nil {
		s.logger.Warn("Failed to notify comment like: ", err)
	}
	return true, nil
}

package postapp

import (
	"context"
	"errors"

	alarmEntity "sns/internal/core/alarm"
	commentEntity "sns/internal/core/comment"
	likeEntity "sns/internal/core/like"
	postEntity "sns/internal/core/post"
	userEntity "sns/internal/core/user"

	"sns/internal/apperr"
	alarmPort "sns/internal/ports/alarm"
	commentPort "sns/internal/ports/comment"
	likePort "sns/internal/ports/like"
	"sns/internal/ports/pagination"
	postPort "sns/internal/ports/post"
	"sns/internal/ports/storage"
	userPort "sns/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// PostService orchestrates post CRUD plus the like/comment actions and the
// alarms they emit for the post owner.
type PostService struct {
	PostRepository    postPort.PostRepository
	UserRepository    userPort.UserRepository
	LikeRepository    likePort.LikeRepository
	CommentRepository commentPort.CommentRepository
	AlarmRepository   alarmPort.AlarmRepository
	LikeCounter       likePort.LikeCounterCache
	Tx                storage.Transactor
	Logger            *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	likeRepo likePort.LikeRepository,
	commentRepo commentPort.CommentRepository,
	alarmRepo alarmPort.AlarmRepository,
	likeCounter likePort.LikeCounterCache,
	tx storage.Transactor,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		UserRepository:    userRepo,
		LikeRepository:    likeRepo,
		CommentRepository: commentRepo,
		AlarmRepository:   alarmRepo,
		LikeCounter:       likeCounter,
		Tx:                tx,
		Logger:            logger,
	}
}

// Create inserts a new post owned by username.
func (s *PostService) Create(ctx context.Context, title, body, username string) error {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	p := &postEntity.Post{
		ID:     uuid.Must(uuid.NewV4()),
		Title:  title,
		Body:   body,
		UserID: u.ID,
	}
	if _, err := s.PostRepository.Create(ctx, p); err != nil {
		return err
	}

	s.Logger.Info("post created", zap.String("postID", p.ID.String()), zap.String("username", username))
	return nil
}

// Modify updates title and body of the caller's own post.
func (s *PostService) Modify(ctx context.Context, title, body, username, postID string) (*postPort.PostDTO, error) {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	// ownership is compared by id, never by struct identity
	if p.UserID != u.ID {
		return nil, apperr.New(apperr.CodeInvalidPermission, "%s has no permission with %s", username, postID)
	}

	p.Title = title
	p.Body = body
	saved, err := s.PostRepository.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	return toPostDTO(saved), nil
}

// Delete soft-deletes the caller's own post.
func (s *PostService) Delete(ctx context.Context, username, postID string) error {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}

	if p.UserID != u.ID {
		return apperr.New(apperr.CodeInvalidPermission, "%s has no permission with %s", username, postID)
	}

	return s.PostRepository.Delete(ctx, p)
}

// List returns all live posts, newest first. No auth check.
func (s *PostService) List(ctx context.Context, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error) {
	req = req.Normalize()
	posts, total, err := s.PostRepository.FindAll(ctx, req)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(toPostDTOs(posts), req, total), nil
}

// MyPosts returns the caller's live posts, newest first.
func (s *PostService) MyPosts(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error) {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	req = req.Normalize()
	posts, total, err := s.PostRepository.FindAllByUser(ctx, u.ID.String(), req)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(toPostDTOs(posts), req, total), nil
}

// Like records that username liked the post and alarms the post owner.
// The like row and the alarm row commit as one unit.
func (s *PostService) Like(ctx context.Context, postID, username string) error {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	u, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	if _, err := s.LikeRepository.FindByUserAndPost(ctx, u.ID.String(), p.ID.String()); err == nil {
		return apperr.New(apperr.CodeAlreadyLike, "%s is already liked the post %s", username, postID)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		l := &likeEntity.Like{
			ID:     uuid.Must(uuid.NewV4()),
			UserID: u.ID,
			PostID: p.ID,
		}
		if _, err := s.LikeRepository.Create(ctx, l); err != nil {
			// the unique index caught a concurrent duplicate
			if errors.Is(err, apperr.ErrDuplicated) {
				return apperr.New(apperr.CodeAlreadyLike, "%s is already liked the post %s", username, postID)
			}
			return err
		}

		a := newAlarm(p.UserID, alarmEntity.TypeNewLikeOnPost, u.ID, p.ID)
		if _, err := s.AlarmRepository.Create(ctx, a); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.LikeCounter.Invalidate(ctx, p.ID.String()); err != nil {
		s.Logger.Warn("could not invalidate like count cache", zap.String("postID", p.ID.String()), zap.Error(err))
	}
	return nil
}

// LikeCount returns how many users liked the post, via the cache when warm.
func (s *PostService) LikeCount(ctx context.Context, postID string) (int64, error) {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if count, ok, err := s.LikeCounter.Get(ctx, p.ID.String()); err != nil {
		s.Logger.Warn("could not read like count cache", zap.String("postID", p.ID.String()), zap.Error(err))
	} else if ok {
		return count, nil
	}

	count, err := s.LikeRepository.CountByPost(ctx, p.ID.String())
	if err != nil {
		return 0, err
	}
	if err := s.LikeCounter.Set(ctx, p.ID.String(), count); err != nil {
		s.Logger.Warn("could not write like count cache", zap.String("postID", p.ID.String()), zap.Error(err))
	}
	return count, nil
}

// Comment attaches a comment to the post and alarms the post owner.
// The comment row and the alarm row commit as one unit.
func (s *PostService) Comment(ctx context.Context, postID, username, body string) error {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	u, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	return s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		c := &commentEntity.Comment{
			ID:     uuid.Must(uuid.NewV4()),
			Body:   body,
			UserID: u.ID,
			PostID: p.ID,
		}
		if _, err := s.CommentRepository.Create(ctx, c); err != nil {
			return err
		}

		a := newAlarm(p.UserID, alarmEntity.TypeNewCommentOnPost, u.ID, p.ID)
		if _, err := s.AlarmRepository.Create(ctx, a); err != nil {
			return err
		}
		return nil
	})
}

// GetComments returns the post's comments in insertion order.
func (s *PostService) GetComments(ctx context.Context, postID string, req pagination.Request) (*pagination.Page[*commentPort.CommentDTO], error) {
	p, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	req = req.Normalize()
	comments, total, err := s.CommentRepository.FindAllByPost(ctx, p.ID.String(), req)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toCommentDTO(c))
	}
	return pagination.NewPage(dtos, req, total), nil
}

func (s *PostService) getUser(ctx context.Context, username string) (*userEntity.User, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.New(apperr.CodeUserNotFound, "%s not founded", username)
		}
		return nil, err
	}
	return u, nil
}

func (s *PostService) getPost(ctx context.Context, postID string) (*postEntity.Post, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.New(apperr.CodePostNotFounded, "%s not founded", postID)
		}
		return nil, err
	}
	return p, nil
}

func newAlarm(recipientID uuid.UUID, alarmType alarmEntity.Type, fromUserID, targetID uuid.UUID) *alarmEntity.Alarm {
	return &alarmEntity.Alarm{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: recipientID,
		Type:   alarmType,
		Args: alarmEntity.Args{
			FromUserID: fromUserID.String(),
			TargetID:   targetID.String(),
		},
	}
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.String(),
		UpdatedAt: p.UpdatedAt.String(),
	}
	if p.User.ID != uuid.Nil {
		dto.User = userPort.ToDTO(&p.User)
	}
	return dto
}

func toPostDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	return dtos
}

func toCommentDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	dto := &commentPort.CommentDTO{
		ID:        c.ID.String(),
		Body:      c.Body,
		PostID:    c.PostID.String(),
		CreatedAt: c.CreatedAt.String(),
	}
	if c.User.ID != uuid.Nil {
		dto.User = userPort.ToDTO(&c.User)
	}
	return dto
}

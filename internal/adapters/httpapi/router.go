package httpapi

import (
	"context"

	"sns/internal/adapters/httpapi/middleware"
	alarmPort "sns/internal/ports/alarm"
	commentPort "sns/internal/ports/comment"
	"sns/internal/ports/pagination"
	postPort "sns/internal/ports/post"
	userPort "sns/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// UserUseCase is the inbound port the user controller needs.
type UserUseCase interface {
	Join(ctx context.Context, username, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	AlarmList(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*alarmPort.AlarmDTO], error)
}

// PostUseCase is the inbound port the post controller needs.
type PostUseCase interface {
	Create(ctx context.Context, title, body, username string) error
	Modify(ctx context.Context, title, body, username, postID string) (*postPort.PostDTO, error)
	Delete(ctx context.Context, username, postID string) error
	List(ctx context.Context, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error)
	MyPosts(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error)
	Like(ctx context.Context, postID, username string) error
	LikeCount(ctx context.Context, postID string) (int64, error)
	Comment(ctx context.Context, postID, username, body string) error
	GetComments(ctx context.Context, postID string, req pagination.Request) (*pagination.Page[*commentPort.CommentDTO], error)
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(userUC UserUseCase, postUC PostUseCase, jwtKey []byte) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)

	auth := middleware.JWTAuthMiddleware(jwtKey)

	v1 := r.Group("/api/v1")

	v1.POST("/users/join", uc.Join)
	v1.POST("/users/login", uc.Login)
	v1.GET("/users/alarm", auth, uc.AlarmList)

	v1.GET("/posts", pc.List)
	v1.POST("/posts", auth, pc.Create)
	v1.GET("/posts/my", auth, pc.MyPosts)
	v1.PUT("/posts/:postId", auth, pc.Modify)
	v1.DELETE("/posts/:postId", auth, pc.Delete)
	v1.POST("/posts/:postId/likes", auth, pc.Like)
	v1.GET("/posts/:postId/likes", pc.LikeCount)
	v1.POST("/posts/:postId/comments", auth, pc.Comment)
	v1.GET("/posts/:postId/comments", pc.GetComments)

	return r
}

package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sns/internal/apperr"
	alarmPort "sns/internal/ports/alarm"
	commentPort "sns/internal/ports/comment"
	"sns/internal/ports/pagination"
	postPort "sns/internal/ports/post"
	userPort "sns/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.New(apperr.CodeUserNotFound, "x"), http.StatusNotFound},
		{apperr.New(apperr.CodePostNotFounded, "x"), http.StatusNotFound},
		{apperr.New(apperr.CodeInvalidPermission, "x"), http.StatusForbidden},
		{apperr.New(apperr.CodeInvalidPassword, "x"), http.StatusUnauthorized},
		{apperr.New(apperr.CodeAlreadyLike, "x"), http.StatusConflict},
		{apperr.New(apperr.CodeDuplicatedUserName, "x"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), "for %v", tt.err)
	}
}

// stubUserUC fails Login with a configurable error.
type stubUserUC struct {
	loginErr error
}

func (s *stubUserUC) Join(ctx context.Context, username, password string) (*userPort.UserDTO, error) {
	return &userPort.UserDTO{ID: "id", Username: username}, nil
}

func (s *stubUserUC) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &userPort.LoginResponse{Token: "t", ExpiresAt: 1}, nil
}

func (s *stubUserUC) AlarmList(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*alarmPort.AlarmDTO], error) {
	return pagination.NewPage[*alarmPort.AlarmDTO](nil, req, 0), nil
}

type stubPostUC struct{}

func (s *stubPostUC) Create(ctx context.Context, title, body, username string) error { return nil }
func (s *stubPostUC) Modify(ctx context.Context, title, body, username, postID string) (*postPort.PostDTO, error) {
	return nil, nil
}
func (s *stubPostUC) Delete(ctx context.Context, username, postID string) error { return nil }
func (s *stubPostUC) List(ctx context.Context, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error) {
	return pagination.NewPage[*postPort.PostDTO](nil, req, 0), nil
}
func (s *stubPostUC) MyPosts(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*postPort.PostDTO], error) {
	return pagination.NewPage[*postPort.PostDTO](nil, req, 0), nil
}
func (s *stubPostUC) Like(ctx context.Context, postID, username string) error { return nil }
func (s *stubPostUC) LikeCount(ctx context.Context, postID string) (int64, error) {
	return 0, nil
}
func (s *stubPostUC) Comment(ctx context.Context, postID, username, body string) error { return nil }
func (s *stubPostUC) GetComments(ctx context.Context, postID string, req pagination.Request) (*pagination.Page[*commentPort.CommentDTO], error) {
	return pagination.NewPage[*commentPort.CommentDTO](nil, req, 0), nil
}

func loginResponse(t *testing.T, loginErr error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := SetupRoutes(&stubUserUC{loginErr: loginErr}, &stubPostUC{}, []byte("k"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"username":"alice","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_DoesNotLeakWhichCredentialFailed(t *testing.T) {
	unknownUser := loginResponse(t, apperr.New(apperr.CodeUserNotFound, "ghost not founded"))
	wrongPassword := loginResponse(t, apperr.New(apperr.CodeInvalidPassword, "invalid password for alice"))

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}

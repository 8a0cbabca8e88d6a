package userapp

import (
	"context"
	"errors"
	"time"

	alarmEntity "sns/internal/core/alarm"
	userEntity "sns/internal/core/user"

	"sns/internal/apperr"
	alarmPort "sns/internal/ports/alarm"
	"sns/internal/ports/pagination"
	userPort "sns/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login and alarm listing.
type UserService struct {
	UserRepository  userPort.UserRepository
	AlarmRepository alarmPort.AlarmRepository
	jwtKey          []byte
	tokenTTL        time.Duration
	Logger          *zap.Logger
}

func NewUserService(
	userRepo userPort.UserRepository,
	alarmRepo alarmPort.AlarmRepository,
	jwtKey []byte,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		UserRepository:  userRepo,
		AlarmRepository: alarmRepo,
		jwtKey:          jwtKey,
		tokenTTL:        tokenTTL,
		Logger:          logger,
	}
}

// LoadUserByUserName resolves a username to its projection.
func (s *UserService) LoadUserByUserName(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}

// Join registers a new user with a bcrypt-hashed password.
func (s *UserService) Join(ctx context.Context, username, password string) (*userPort.UserDTO, error) {
	if _, err := s.UserRepository.FindByUsername(ctx, username); err == nil {
		return nil, apperr.New(apperr.CodeDuplicatedUserName, "%s is duplicated", username)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Password: string(hashed),
	}
	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		// a concurrent join won the unique username
		if errors.Is(err, apperr.ErrDuplicated) {
			return nil, apperr.New(apperr.CodeDuplicatedUserName, "%s is duplicated", username)
		}
		return nil, err
	}

	s.Logger.Info("user joined", zap.String("username", created.Username))
	return userPort.ToDTO(created), nil
}

// Login verifies the password and issues a signed token carrying the
// username and an expiry.
func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.CodeInvalidPassword, "invalid password for %s", username)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := generateToken(username, s.jwtKey, expiresAt)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// AlarmList returns the user's live alarms, newest first.
func (s *UserService) AlarmList(ctx context.Context, username string, req pagination.Request) (*pagination.Page[*alarmPort.AlarmDTO], error) {
	u, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	req = req.Normalize()
	alarms, total, err := s.AlarmRepository.FindAllByUser(ctx, u.ID.String(), req)
	if err != nil {
		return nil, err
	}

	dtos := make([]*alarmPort.AlarmDTO, 0, len(alarms))
	for _, a := range alarms {
		dtos = append(dtos, toAlarmDTO(a))
	}
	return pagination.NewPage(dtos, req, total), nil
}

func (s *UserService) getUser(ctx context.Context, username string) (*userEntity.User, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.New(apperr.CodeUserNotFound, "%s not founded", username)
		}
		return nil, err
	}
	return u, nil
}

func generateToken(username string, key []byte, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   username,
		Issuer:    "sns",
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func toAlarmDTO(a *alarmEntity.Alarm) *alarmPort.AlarmDTO {
	return &alarmPort.AlarmDTO{
		ID:        a.ID.String(),
		Type:      a.Type,
		Args:      a.Args,
		CreatedAt: a.CreatedAt.String(),
	}
}

package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "sns/internal/adapters/database"
	"sns/internal/adapters/httpapi"
	redisadapter "sns/internal/adapters/redis"
	"sns/internal/config"
	"sns/internal/core/alarm"
	"sns/internal/core/comment"
	"sns/internal/core/like"
	"sns/internal/core/post"
	postapp "sns/internal/core/post/service"
	"sns/internal/core/user"
	userapp "sns/internal/core/user/service"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.InitLogger()
	config.Init()

	db, err := config.OpenDB()
	if err != nil {
		config.Logger.Fatal("Error connecting to the database:", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&like.Like{},
		&comment.Comment{},
		&alarm.Alarm{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	ctx := context.Background()
	redisClient, err := config.OpenRedis(ctx)
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}

	defer closeResources(config.Logger, db, redisClient)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	tokenTTL := 24 * time.Hour
	if hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS")); err == nil && hours > 0 {
		tokenTTL = time.Duration(hours) * time.Hour
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	likeRepo := dbadapter.NewLikeRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	alarmRepo := dbadapter.NewAlarmRepositoryDatabase(db)
	likeCounter := redisadapter.NewLikeCounterRedis(redisClient)
	tx := dbadapter.NewGormTransactor(db)

	userSvc := userapp.NewUserService(userRepo, alarmRepo, jwtKey, tokenTTL, config.Logger)
	postSvc := postapp.NewPostService(postRepo, userRepo, likeRepo, commentRepo, alarmRepo, likeCounter, tx, config.Logger)

	r := httpapi.SetupRoutes(userSvc, postSvc, jwtKey)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *goredis.Client) {
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}

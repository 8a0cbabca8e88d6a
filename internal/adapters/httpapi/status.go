package httpapi

import (
	"net/http"
	"strconv"

	"sns/internal/apperr"
	"sns/internal/ports/pagination"

	"github.com/gin-gonic/gin"
)

// statusOf maps a service error code to an HTTP status.
func statusOf(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeUserNotFound, apperr.CodePostNotFounded:
		return http.StatusNotFound
	case apperr.CodeInvalidPermission:
		return http.StatusForbidden
	case apperr.CodeInvalidPassword:
		return http.StatusUnauthorized
	case apperr.CodeAlreadyLike, apperr.CodeDuplicatedUserName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if code := apperr.CodeOf(err); code != "" {
		body["code"] = string(code)
	}
	c.JSON(statusOf(err), body)
}

// pageRequest reads page/size query params with defaults.
func pageRequest(c *gin.Context) (pagination.Request, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return pagination.Request{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(pagination.DefaultSize)))
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return pagination.Request{}, false
	}
	return pagination.Request{Page: page, Size: size}, true
}

// callerUsername returns the identity the JWT middleware stored in the context.
func callerUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return "", false
	}
	return username.(string), true
}

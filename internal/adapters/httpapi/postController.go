package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	if err := ctl.pc.Create(c.Request.Context(), req.Title, req.Body, username); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created"})
}

func (ctl *PostController) Modify(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	dto, err := ctl.pc.Modify(c.Request.Context(), req.Title, req.Body, username, c.Param("postId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (ctl *PostController) Delete(c *gin.Context) {
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	if err := ctl.pc.Delete(c.Request.Context(), username, c.Param("postId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (ctl *PostController) List(c *gin.Context) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := ctl.pc.List(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *PostController) MyPosts(c *gin.Context) {
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := ctl.pc.MyPosts(c.Request.Context(), username, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *PostController) Like(c *gin.Context) {
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	if err := ctl.pc.Like(c.Request.Context(), c.Param("postId"), username); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post liked"})
}

func (ctl *PostController) LikeCount(c *gin.Context) {
	count, err := ctl.pc.LikeCount(c.Request.Context(), c.Param("postId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (ctl *PostController) Comment(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	username, ok := callerUsername(c)
	if !ok {
		return
	}
	if err := ctl.pc.Comment(c.Request.Context(), c.Param("postId"), username, req.Body); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "comment created"})
}

func (ctl *PostController) GetComments(c *gin.Context) {
	req, ok := pageRequest(c)
	if !ok {
		return
	}
	page, err := ctl.pc.GetComments(c.Request.Context(), c.Param("postId"), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

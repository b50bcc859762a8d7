package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jinhyuk9714/Back-likelion/domain"
	"github.com/jinhyuk9714/Back-likelion/internal/rest/middleware"
	"github.com/jinhyuk9714/Back-likelion/internal/rest/request"
	"github.com/jinhyuk9714/Back-likelion/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment creates a root comment, or a reply when comment_id is a
// positive parent id.
func (h *commentHandler) CreateComment(c *gin.Context) {
	postID, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var parentID int64
	if c.Param("comment_id") != "" {
		if parentID, err = paramID(c, "comment_id"); err != nil {
			abortWithError(c, err)
			return
		}
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Create(ctx, domain.CreateCommentInput{
		PostID:   postID,
		ParentID: parentID,
		Content:  req.Content,
		Identity: c.GetString(middleware.IdentityKey),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *commentHandler) UpdateComment(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, domain.ErrBadParamInput)
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Update(ctx, id, req.Content, c.GetString(middleware.IdentityKey))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, id, c.GetString(middleware.IdentityKey)); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *commentHandler) GetComment(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.GetByID(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *commentHandler) FetchCommentsByPost(c *gin.Context) {
	postID, err := paramID(c, "id")
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	comments, err := h.Service.FetchByPost(ctx, postID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPostCommentsFromDomain(&comments))
}

// paramID parses a non-negative int64 path parameter.
func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

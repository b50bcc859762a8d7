package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// RegisterRoutes mounts the comment API on r. Write routes go through auth.
func RegisterRoutes(r gin.IRouter, svc domain.CommentUsecase, auth gin.HandlerFunc) {
	h := NewCommentHandler(svc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/comment/:id", h.GetComment)
	api.GET("/post/:id/comments", h.FetchCommentsByPost)

	authorized := api.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/post/:id/comment", h.CreateComment)
		authorized.POST("/post/:id/comment/:comment_id", h.CreateComment)
		authorized.PUT("/comment/:id", h.UpdateComment)
		authorized.DELETE("/comment/:id", h.DeleteComment)
	}
}

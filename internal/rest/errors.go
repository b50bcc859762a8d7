package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorKind struct {
	err    error
	status int
	code   string
}

var errorKinds = []errorKind{
	{domain.ErrAuthenticationRequired, http.StatusUnauthorized, "AUTH-001"},
	{domain.ErrAuthorshipMismatch, http.StatusForbidden, "CMT-101"},
	{domain.ErrCommentNotFound, http.StatusNotFound, "CMT-201"},
	{domain.ErrParentNotFound, http.StatusNotFound, "CMT-202"},
	{domain.ErrPostNotFound, http.StatusNotFound, "CMT-203"},
	{domain.ErrReplyDepthExceeded, http.StatusBadRequest, "CMT-301"},
	{domain.ErrMemberNotFound, http.StatusNotFound, "MBR-201"},
	{domain.ErrBadParamInput, http.StatusBadRequest, "REQ-001"},
	{domain.ErrNotFound, http.StatusNotFound, "REQ-404"},
}

// toResponseError maps err to its HTTP status and body.
// Errors outside the domain taxonomy are logged and reported generically.
func toResponseError(err error) (int, ResponseError) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, ResponseError{Code: k.code, Message: k.err.Error()}
		}
	}

	logrus.Error(err)
	return http.StatusInternalServerError, ResponseError{
		Code:    "SRV-001",
		Message: domain.ErrInternalServerError.Error(),
	}
}

// abortWithError writes err as the response and stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	status, body := toResponseError(err)
	c.AbortWithStatusJSON(status, body)
}

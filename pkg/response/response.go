package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-short-syntax/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An HTTPError keeps its own status code;
// anything else is reported as 400.
func Error(c *gin.Context, err error) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			InternalError(c, err)
			return
		}
		c.AbortWithStatusJSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// InternalError sends a 5xx response without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok && httpErr.StatusCode >= http.StatusInternalServerError {
		status = httpErr.StatusCode
	}
	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

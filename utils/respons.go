package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   ErrorKind   `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondAppError writes err using the status and kind of its AppError.
// Internal failures are logged and replaced by a generic message.
func RespondAppError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	message := appErr.Message
	if appErr.Kind == KindInternal {
		ErrorLogger.WithField("path", c.Request.URL.Path).Errorf("request failed: %v", err)
		message = "internal server error"
	}
	c.AbortWithStatusJSON(appErr.StatusCode(), JSONResponse{
		Status:  false,
		Message: message,
		Error:   appErr.Kind,
	})
}

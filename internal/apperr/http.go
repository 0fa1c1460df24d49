package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WriteError writes a standardized JSON error response for service-layer
// errors. Unknown errors get the fallback message and a 500.
func WriteError(c *gin.Context, err error, fallbackMessage string) {
	appErr, ok := As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
		return
	}

	body := gin.H{"error": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(httpStatus(appErr.Code), body)
}

func httpStatus(code Code) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnsupportedMediaType:
		return http.StatusUnsupportedMediaType
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeStorage, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

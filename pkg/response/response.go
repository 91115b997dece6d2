package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

// ContextUserKey is where the auth middleware stores the resolved user.
const ContextUserKey = "user"

// GetUser retrieves the authenticated user from the context
func GetUser(c *gin.Context) (*entity.User, error) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	user, ok := val.(*entity.User)
	if !ok || user == nil {
		return nil, apperror.ErrUnauthorized
	}

	return user, nil
}

// Error standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors, keep the caller-facing message generic
	if code == http.StatusInternalServerError {
		zap.L().Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

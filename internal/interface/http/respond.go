package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

// respondErr maps service errors onto the small set of statuses the dashboard
// distinguishes. Everything without a dedicated status collapses to 500 so
// storage details never leak to the client.
func respondErr(c *gin.Context, logger *logrus.Logger, label string, err error) {
	switch {
	case errors.Is(err, application.ErrUnauthenticated):
		response.Text(c, http.StatusUnauthorized, "Unauthenticated")
	case errors.Is(err, application.ErrUnauthorized):
		response.Text(c, http.StatusForbidden, "Unauthorized")
	default:
		if logger != nil {
			entry := logger.WithError(err).WithField("path", c.FullPath())
			if errors.Is(err, repository.ErrConflict) {
				entry = entry.WithField("reason", "referential conflict")
			}
			entry.Errorf("[%s]", label)
		}
		response.Text(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

func respondBindErr(c *gin.Context, message string) {
	response.Text(c, http.StatusBadRequest, message)
}

func userID(c *gin.Context) string {
	return c.GetString("userID")
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UploadHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

func (h *UploadHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondBindErr(c, "file is required")
		return
	}
	if fh.Size > maxUploadSize {
		respondBindErr(c, "file is too large")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondErr(c, h.Logger, "UPLOAD_POST", err)
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := h.Svc.Upload(c.Request.Context(), userID(c), c.Param("storeId"), fh.Filename, contentType, f)
	if err != nil {
		respondErr(c, h.Logger, "UPLOAD_POST", err)
		return
	}
	response.OK(c, gin.H{"url": url})
}

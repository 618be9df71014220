package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/response"
	"github.com/trunghoangnt2003/memory/internal/services"
)

type ConfigHandler struct {
	configService *services.ConfigService
	maxFileSize   int64
}

func NewConfigHandler(configService *services.ConfigService, maxFileSize int64) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
		maxFileSize:   maxFileSize,
	}
}

// GetConfig handles GET /api/config
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Configuration not set")
			return
		}
		response.InternalServerError(c, "Failed to fetch configuration")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", cfg)
}

// SaveConfig handles PUT /api/config (multipart form with optional image)
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	startDate, err := parseDate(c.PostForm("love_start_date"))
	if err != nil {
		response.BadRequestError(c, "Invalid love_start_date format, expected RFC 3339 or YYYY-MM-DD")
		return
	}

	file, rawFile, err := formImage(c, "image", h.maxFileSize)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if rawFile != nil {
		defer rawFile.Close()
	}

	req := services.SaveConfigRequest{
		LoveStartDate:  startDate,
		Partner1Name:   c.PostForm("partner1_name"),
		Partner2Name:   c.PostForm("partner2_name"),
		CoupleImageURL: c.PostForm("couple_image_url"),
	}

	cfg, err := h.configService.Save(c.Request.Context(), req, file)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			response.InternalServerError(c, "Failed to upload image")
			return
		}
		response.InternalServerError(c, "Failed to save configuration")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Configuration saved", cfg)
}

// GetElapsed handles GET /api/config/elapsed
func (h *ConfigHandler) GetElapsed(c *gin.Context) {
	elapsed, err := h.configService.Elapsed(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Configuration not set")
			return
		}
		response.InternalServerError(c, "Failed to compute elapsed time")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", elapsed)
}

// parseDate accepts an RFC 3339 instant or a plain date
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/response"
	"github.com/trunghoangnt2003/memory/internal/services"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
	maxFileSize    int64
}

func NewGalleryHandler(galleryService *services.GalleryService, maxFileSize int64) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		maxFileSize:    maxFileSize,
	}
}

// GetAllImages handles GET /api/gallery
func (h *GalleryHandler) GetAllImages(c *gin.Context) {
	images, err := h.galleryService.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch gallery images")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", images)
}

// GetImage handles GET /api/gallery/:id
func (h *GalleryHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	img, err := h.galleryService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Gallery image not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch gallery image")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", img)
}

// AddImage handles POST /api/gallery (multipart form, one required file)
func (h *GalleryHandler) AddImage(c *gin.Context) {
	file, rawFile, err := formImage(c, "image", h.maxFileSize)
	if err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if file == nil {
		response.BadRequestError(c, "No file provided")
		return
	}
	defer rawFile.Close()

	img, err := h.galleryService.Add(c.Request.Context(), c.PostForm("caption"), file)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			response.InternalServerError(c, "Failed to upload image")
			return
		}
		response.InternalServerError(c, "Failed to add image to gallery")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Image added", img)
}

// AddImages handles POST /api/gallery/batch (multipart form, files under
// "images" paired positionally with "captions")
func (h *GalleryHandler) AddImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequestError(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		response.BadRequestError(c, "No files provided")
		return
	}
	captions := form.Value["captions"]

	var items []services.BatchItem
	for i, fileHeader := range files {
		file, rawFile, err := openImage(fileHeader, h.maxFileSize)
		if err != nil {
			response.BadRequestError(c, err.Error())
			return
		}
		defer rawFile.Close()

		caption := ""
		if i < len(captions) {
			caption = captions[i]
		}
		items = append(items, services.BatchItem{File: file, Caption: caption})
	}

	created, err := h.galleryService.AddBatch(c.Request.Context(), items)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			response.InternalServerError(c, "Failed to upload images")
			return
		}
		response.InternalServerError(c, "Failed to add images to gallery")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Images added", created)
}

type updateCaptionRequest struct {
	Caption string `json:"caption"`
}

// UpdateCaption handles PATCH /api/gallery/:id
func (h *GalleryHandler) UpdateCaption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	img, err := h.galleryService.UpdateCaption(c.Request.Context(), id, req.Caption)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Gallery image not found")
			return
		}
		response.InternalServerError(c, "Failed to update caption")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Caption updated", img)
}

// DeleteImage handles DELETE /api/gallery/:id
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFoundError(c, "Gallery image not found")
			return
		}
		response.InternalServerError(c, "Failed to delete image")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Image deleted", nil)
}

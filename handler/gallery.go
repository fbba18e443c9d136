package handler

import (
	"context"
	"errors"
	"log"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetGallery(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := h.DB.Model(&model.GalleryImage{}).Order("created_at DESC")

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var images []model.GalleryImage
	if err := db.Find(&images).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       images,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// UploadGalleryImages pushes multipart files to Cloudinary and stores the
// resulting metadata rows.
func (h *Handler) UploadGalleryImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	files := form.File["images"]
	if len(files) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
			errors.New("no images in request"))
	}

	var uploaded []model.GalleryImage
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		result, err := h.Cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
			Folder: "gallery",
		})
		f.Close()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "cloudinary upload failed", err)
		}

		image := model.GalleryImage{
			FileName:     result.PublicID,
			URL:          result.SecureURL,
			OriginalName: file.Filename,
			PublicID:     result.PublicID,
		}
		if err := h.DB.Create(&image).Error; err != nil {
			// keep remote storage consistent with the database
			if _, derr := h.Cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: result.PublicID}); derr != nil {
				log.Printf("cloudinary destroy %s: %v", result.PublicID, derr)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not save image", err)
		}
		uploaded = append(uploaded, image)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "images uploaded",
		"data":    uploaded,
	})
}

func (h *Handler) DeleteGalleryImage(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayID)

	var images []model.GalleryImage
	if err := h.DB.Where("id IN ?", input.IDs).Find(&images).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	if len(images) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no matching images"))
	}

	for _, image := range images {
		if image.PublicID == "" {
			continue
		}
		if _, err := h.Cld.Upload.Destroy(c.Context(), uploader.DestroyParams{PublicID: image.PublicID}); err != nil {
			log.Printf("cloudinary destroy %s: %v", image.PublicID, err)
		}
	}
	if err := h.DB.Delete(&images).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not delete images", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "images deleted",
		"deleted": len(images),
	})
}

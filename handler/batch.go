package handler

import (
	"errors"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetBatches(c *fiber.Ctx) error {
	var batches []model.Batch
	if err := h.CardsDB.Order("created_at DESC").Find(&batches).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, batches)
}

func (h *Handler) CreateBatch(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBatchInput)

	batch := model.Batch{Code: input.Code, IsActive: true}
	if input.IsActive != nil {
		batch.IsActive = *input.IsActive
	}

	if err := h.CardsDB.Create(&batch).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not create batch", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "batch created",
		"data":    batch,
	})
}

// SetBatchActive is the group switch: deactivating a batch invalidates every
// unused card and unnamed physical ticket carrying its code.
func (h *Handler) SetBatchActive(c *fiber.Ctx) error {
	code := c.Params("code")
	isActive := c.Params("isActive") == "true"

	res := h.CardsDB.Model(&model.Batch{}).Where("code = ?", code).Update("is_active", isActive)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("batch not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  "batch updated",
		"code":     code,
		"isActive": isActive,
	})
}

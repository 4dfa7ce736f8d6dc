package committee

import (
	"strings"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommitteeHandler handles committee catalog requests
type CommitteeHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCommitteeHandler creates a new committee handler
func NewCommitteeHandler(db *gorm.DB) *CommitteeHandler {
	return &CommitteeHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CommitteeRequest is the request body for creating/updating a catalog row.
// Name must be one of the five known categories; the catalog annotates
// them, it does not invent new ones.
type CommitteeRequest struct {
	Name     string `json:"name" validate:"required"`
	Details  string `json:"details"`
	Amount   string `json:"amount"`
	Deadline string `json:"deadline"`
}

// ListCommittees handles GET /api/v1/committees
func (h *CommitteeHandler) ListCommittees(c *fiber.Ctx) error {
	var committees []model.Committee
	if err := h.db.Order("name ASC").Find(&committees).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch committees")
	}
	return response.Success(c, committees)
}

// GetCommittee handles GET /api/v1/committees/:name
func (h *CommitteeHandler) GetCommittee(c *fiber.Ctx) error {
	name := strings.ToUpper(c.Params("name"))

	var committee model.Committee
	if err := h.db.Where("name = ?", name).First(&committee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Committee not found")
		}
		return response.InternalServerError(c, "Failed to fetch committee")
	}
	return response.Success(c, committee)
}

// CreateCommittee handles POST /api/v1/committees (admin only)
func (h *CommitteeHandler) CreateCommittee(c *fiber.Ctx) error {
	var req CommitteeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	name := strings.ToUpper(strings.TrimSpace(req.Name))
	if !model.IsKnownCommittee(name) {
		return response.BadRequest(c, "Unknown committee; must be one of: CF, LAC, PTA, QAA, RHC")
	}
	if ok, msg := validation.ValidateAmountText(req.Amount); !ok {
		return response.BadRequest(c, msg)
	}

	var existing model.Committee
	if err := h.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return response.Conflict(c, "Committee already exists")
	}

	committee := model.Committee{
		Name:     name,
		Details:  req.Details,
		Amount:   req.Amount,
		Deadline: req.Deadline,
	}
	if err := h.db.Create(&committee).Error; err != nil {
		return response.InternalServerError(c, "Failed to create committee")
	}
	return response.Created(c, committee)
}

// UpdateCommittee handles PUT /api/v1/committees/:id (admin only)
func (h *CommitteeHandler) UpdateCommittee(c *fiber.Ctx) error {
	id := c.Params("id")

	var committee model.Committee
	if err := h.db.First(&committee, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Committee not found")
		}
		return response.InternalServerError(c, "Failed to fetch committee")
	}

	var req struct {
		Details  *string `json:"details"`
		Amount   *string `json:"amount"`
		Deadline *string `json:"deadline"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Amount != nil {
		if ok, msg := validation.ValidateAmountText(*req.Amount); !ok {
			return response.BadRequest(c, msg)
		}
		committee.Amount = *req.Amount
	}
	if req.Details != nil {
		committee.Details = *req.Details
	}
	if req.Deadline != nil {
		committee.Deadline = *req.Deadline
	}

	if err := h.db.Save(&committee).Error; err != nil {
		return response.InternalServerError(c, "Failed to update committee")
	}
	return response.Success(c, committee)
}

// DeleteCommittee handles DELETE /api/v1/committees/:id (admin only)
func (h *CommitteeHandler) DeleteCommittee(c *fiber.Ctx) error {
	id := c.Params("id")

	var committee model.Committee
	if err := h.db.First(&committee, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Committee not found")
		}
		return response.InternalServerError(c, "Failed to fetch committee")
	}

	if err := h.db.Delete(&committee).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete committee")
	}
	return response.SuccessWithMessage(c, "Committee deleted successfully", nil)
}

package payment

import (
	"strings"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EditRequest is an absolute rewrite of a payment's editable fields.
// Every submitted value replaces the stored one; compare TopUp, which
// adds to it.
type EditRequest struct {
	Committee  *string `json:"committee"`
	Amount     *string `json:"amount"`
	Semester   *string `json:"semester"`
	SchoolYear *string `json:"school_year"`
	IsWalkIn   *bool   `json:"is_walk_in"`
}

// EditPayment handles PUT /api/v1/payments/:id/edit (staff only)
func (h *PaymentHandler) EditPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment model.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Committee != nil {
		name := strings.ToUpper(strings.TrimSpace(*req.Committee))
		if !model.IsKnownCommittee(name) {
			return response.BadRequest(c, "Unknown committee; must be one of: CF, LAC, PTA, QAA, RHC")
		}
		// Reassign clears the old committee's category column so the
		// amount does not show up under both categories
		payment.Reassign(name)
	}
	if req.Amount != nil {
		if ok, msg := validation.ValidateAmountText(*req.Amount); !ok {
			return response.BadRequest(c, msg)
		}
		payment.Amount = *req.Amount
		payment.SetCategoryValue(payment.Committee, *req.Amount)
	}
	if req.Semester != nil {
		payment.Semester = *req.Semester
	}
	if req.SchoolYear != nil {
		payment.SchoolYear = *req.SchoolYear
	}
	if req.IsWalkIn != nil {
		payment.IsWalkIn = *req.IsWalkIn
	}

	if err := h.db.Save(&payment).Error; err != nil {
		return response.InternalServerError(c, "Failed to update payment")
	}
	return response.Success(c, payment)
}

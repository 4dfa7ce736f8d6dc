package payment

import (
	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/middleware"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewRequest is a staff verdict on a submission
type ReviewRequest struct {
	Status   string `json:"status" validate:"required,oneof=Accepted Rejected"`
	Feedback string `json:"feedback"`
}

// ReviewPayment handles POST /api/v1/payments/:id/review (staff only).
// The verdict lands in two places atomically: a Feedback row keeps the
// review history, and the payment itself carries the latest status and
// feedback text for cheap listing.
func (h *PaymentHandler) ReviewPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	reviewer, ok := middleware.GetUser(c)
	if !ok || reviewer == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var payment model.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		feedback := model.Feedback{
			PaymentID:  payment.ID,
			ReviewerID: reviewer.ID,
			Status:     req.Status,
			Feedback:   req.Feedback,
		}
		if err := tx.Create(&feedback).Error; err != nil {
			return err
		}

		payment.Status = req.Status
		payment.Feedback = req.Feedback
		return tx.Save(&payment).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to review payment")
	}

	return response.Success(c, payment)
}

// ListPaymentFeedback handles GET /api/v1/payments/:id/feedback:
// the review history, newest first.
func (h *PaymentHandler) ListPaymentFeedback(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment model.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	var feedbacks []model.Feedback
	if err := h.db.Where("payment_id = ?", payment.ID).
		Order("date_issued DESC").
		Find(&feedbacks).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch feedback")
	}

	return response.Success(c, feedbacks)
}

package payment

import (
	"strconv"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/services/storage"
	"github.com/feetrack/api/utils/middleware"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentHandler handles payment record requests
type PaymentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	proofs    storage.ProofStorage
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(db *gorm.DB, proofs storage.ProofStorage) *PaymentHandler {
	return &PaymentHandler{
		db:        db,
		validator: validation.NewValidator(),
		proofs:    proofs,
	}
}

// ListPayments handles GET /api/v1/payments, newest first, paginated
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)

	query := h.db.Model(&model.Payment{})

	// Optional filters
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if committee := c.Query("committee"); committee != "" {
		query = query.Where("committee = ?", committee)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count payments")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var payments []model.Payment
	if err := query.Preload("Student").Preload("Student.Profile").Preload("Proofs").
		Order("date_issued DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch payments")
	}

	return response.Paginated(c, payments, pagination)
}

// ListUserPayments handles GET /api/v1/payments/user/:user_id
func (h *PaymentHandler) ListUserPayments(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	var user model.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	query := h.db.Model(&model.Payment{}).Where("student_id = ?", user.ID)

	// Optional term filters, matching the report's semantics
	if semester := c.Query("semester"); semester != "" {
		query = query.Where("semester ILIKE ?", "%"+semester+"%")
	}
	if schoolYear := c.Query("school_year"); schoolYear != "" {
		query = query.Where("school_year ILIKE ?", "%"+schoolYear+"%")
	}

	var payments []model.Payment
	if err := query.Preload("Proofs").
		Order("date_issued DESC").
		Find(&payments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch payments")
	}

	return response.Success(c, payments)
}

// GetPayment handles GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment model.Payment
	if err := h.db.Preload("Student").Preload("Student.Profile").Preload("Proofs").
		First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	return response.Success(c, payment)
}

// DeletePayment handles DELETE /api/v1/payments/:id. The cascade is an
// explicit two-step delete inside one transaction: proof rows first, then
// the payment. Stored files are unlinked afterwards, best-effort; the
// orphan sweep picks up anything a failed unlink leaves behind.
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id := c.Params("id")

	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var payment model.Payment
	if err := h.db.Preload("Proofs").First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	// Students may delete their own submissions; staff may delete any
	if payment.StudentID != user.ID && !user.IsStaff() {
		return response.Forbidden(c, "You don't have permission to delete this payment")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("payment_id = ?", payment.ID).Delete(&model.PaymentProof{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("payment_id = ?", payment.ID).Delete(&model.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&payment).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete payment")
	}

	for _, proof := range payment.Proofs {
		_ = h.proofs.Remove(c.Context(), proof.StorageKey)
	}

	return response.SuccessWithMessage(c, "Payment deleted successfully", nil)
}

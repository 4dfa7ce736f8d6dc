package payment

import (
	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadProofs handles POST /api/v1/payments/:id/proofs. It attaches one or
// more proof images to an existing payment. The whole batch is validated
// up front and written in one transaction: either every file lands or
// none does.
func (h *PaymentHandler) UploadProofs(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment model.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "Invalid multipart form")
	}
	files := form.File["proofs"]
	if len(files) == 0 {
		return response.BadRequest(c, "At least one proof file is required")
	}

	for _, file := range files {
		if ok, msg := validation.ValidateProofFilename(file.Filename); !ok {
			return response.BadRequest(c, msg)
		}
		if file.Size > validation.MaxProofFileSize {
			return response.BadRequest(c, "Proof file exceeds the 10MB limit")
		}
	}

	var proofs []model.PaymentProof
	var savedKeys []string
	err = h.db.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			proof, key, err := h.storeProof(c, tx, payment.ID, file)
			if err != nil {
				return err
			}
			savedKeys = append(savedKeys, key)
			proofs = append(proofs, *proof)
		}
		return nil
	})
	if err != nil {
		for _, key := range savedKeys {
			_ = h.proofs.Remove(c.Context(), key)
		}
		return response.InternalServerError(c, "Failed to upload proofs")
	}

	return response.Created(c, proofs)
}

// ListProofs handles GET /api/v1/payments/:id/proofs
func (h *PaymentHandler) ListProofs(c *fiber.Ctx) error {
	id := c.Params("id")

	var payment model.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to fetch payment")
	}

	var proofs []model.PaymentProof
	if err := h.db.Where("payment_id = ?", payment.ID).
		Order("uploaded_at ASC").
		Find(&proofs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch proofs")
	}

	return response.Success(c, proofs)
}

// DeleteProof handles DELETE /api/v1/payments/:id/proofs/:proof_id
func (h *PaymentHandler) DeleteProof(c *fiber.Ctx) error {
	id := c.Params("id")
	proofID := c.Params("proof_id")

	var proof model.PaymentProof
	if err := h.db.Where("id = ? AND payment_id = ?", proofID, id).First(&proof).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Proof not found")
		}
		return response.InternalServerError(c, "Failed to fetch proof")
	}

	if err := h.db.Unscoped().Delete(&proof).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete proof")
	}
	_ = h.proofs.Remove(c.Context(), proof.StorageKey)

	return response.SuccessWithMessage(c, "Proof deleted successfully", nil)
}

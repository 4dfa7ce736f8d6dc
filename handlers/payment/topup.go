package payment

import (
	"github.com/feetrack/api/model"
	"github.com/feetrack/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TopUpRequest carries per-field deltas that are ADDED to the stored
// values rather than replacing them. Calling twice with the same delta
// applies it twice; compare EditPayment, which overwrites.
type TopUpRequest struct {
	Amount *float64 `json:"amount"`
	CF     *float64 `json:"cf"`
	LAC    *float64 `json:"lac"`
	PTA    *float64 `json:"pta"`
	QAA    *float64 `json:"qaa"`
	RHC    *float64 `json:"rhc"`
}

func (r *TopUpRequest) categoryDelta(name string) *float64 {
	switch name {
	case model.CommitteeCF:
		return r.CF
	case model.CommitteeLAC:
		return r.LAC
	case model.CommitteePTA:
		return r.PTA
	case model.CommitteeQAA:
		return r.QAA
	case model.CommitteeRHC:
		return r.RHC
	}
	return nil
}

func (r *TopUpRequest) empty() bool {
	if r.Amount != nil {
		return false
	}
	for _, name := range model.CommitteeNames {
		if r.categoryDelta(name) != nil {
			return false
		}
	}
	return true
}

// TopUpPayment handles PUT /api/v1/payments/:id/topup. The row is locked
// for the duration of the transaction so concurrent top-ups serialize
// instead of clobbering each other; the amount columns are text, so the
// addition has to happen application-side.
func (h *PaymentHandler) TopUpPayment(c *fiber.Ctx) error {
	id := c.Params("id")

	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.empty() {
		return response.BadRequest(c, "At least one top-up amount is required")
	}
	for _, name := range model.CommitteeNames {
		if d := req.categoryDelta(name); d != nil && *d < 0 {
			return response.BadRequest(c, "Top-up amounts must not be negative")
		}
	}
	if req.Amount != nil && *req.Amount < 0 {
		return response.BadRequest(c, "Top-up amounts must not be negative")
	}

	var payment model.Payment
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, id).Error; err != nil {
			return err
		}

		// Unparseable legacy values count as zero for the top-up base
		if req.Amount != nil {
			current, _ := model.ParseAmount(&payment.Amount)
			payment.Amount = model.FormatAmount(current + *req.Amount)
		}
		for _, name := range model.CommitteeNames {
			delta := req.categoryDelta(name)
			if delta == nil {
				continue
			}
			raw, _ := payment.CategoryValue(name)
			current, _ := model.ParseAmount(&raw)
			payment.SetCategoryValue(name, model.FormatAmount(current+*delta))
		}

		return tx.Save(&payment).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Payment not found")
		}
		return response.InternalServerError(c, "Failed to top up payment")
	}

	return response.Success(c, payment)
}

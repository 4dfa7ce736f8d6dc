package aggregate

import (
	"strings"

	"github.com/feetrack/api/database"
	"github.com/feetrack/api/model"
	"github.com/feetrack/api/services"
	"github.com/feetrack/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AggregateHandler serves the rollup endpoints
type AggregateHandler struct {
	db          *gorm.DB
	aggregation *services.AggregationService
}

// NewAggregateHandler creates a new aggregate handler
func NewAggregateHandler(db *gorm.DB, store database.Storage) *AggregateHandler {
	return &AggregateHandler{
		db:          db,
		aggregation: services.NewAggregationService(store),
	}
}

// GetCommitteeTotal handles GET /api/v1/aggregates/committee/:name
func (h *AggregateHandler) GetCommitteeTotal(c *fiber.Ctx) error {
	name := strings.ToUpper(c.Params("name"))
	if !model.IsKnownCommittee(name) {
		return response.BadRequest(c, "Unknown committee; must be one of: CF, LAC, PTA, QAA, RHC")
	}

	total, err := h.aggregation.CommitteeTotal(c.Context(), name)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute committee total")
	}
	return response.Success(c, total)
}

// GetCategoryTotals handles GET /api/v1/aggregates/committees
func (h *AggregateHandler) GetCategoryTotals(c *fiber.Ctx) error {
	totals, err := h.aggregation.CategoryTotals(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute category totals")
	}
	return response.Success(c, totals)
}

// ListCommitteePayments handles GET /api/v1/payments/type/:name,
// the raw rows behind a committee total, newest first.
func (h *AggregateHandler) ListCommitteePayments(c *fiber.Ctx) error {
	name := strings.ToUpper(c.Params("name"))
	if !model.IsKnownCommittee(name) {
		return response.BadRequest(c, "Unknown committee; must be one of: CF, LAC, PTA, QAA, RHC")
	}

	query := h.db.Model(&model.Payment{}).Where("committee = ?", name)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []model.Payment
	if err := query.Preload("Student").Preload("Student.Profile").
		Order("date_issued DESC").
		Find(&payments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch payments")
	}
	return response.Success(c, payments)
}

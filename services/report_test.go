package services

import (
	"testing"
	"time"

	"github.com/feetrack/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptedPayment(name, committee, amount string) model.Payment {
	p := model.Payment{
		Committee:  committee,
		Amount:     amount,
		Status:     model.StatusAccepted,
		Semester:   "First Semester",
		SchoolYear: "2025-2026",
		DateIssued: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Student: model.User{
			FirstName: name,
			LastName:  "Reyes",
		},
	}
	p.SetCategoryValue(committee, amount)
	return p
}

func TestRenderPaymentsPDF(t *testing.T) {
	s := NewReportService(nil)

	t.Run("renders a well-formed PDF", func(t *testing.T) {
		payments := []model.Payment{
			acceptedPayment("Ana", "LAC", "100"),
			acceptedPayment("Ben", "CF", "250"),
		}

		out, err := s.RenderPaymentsPDF(payments, "First Semester", "2025-2026")
		require.NoError(t, err)
		assert.True(t, len(out) > 0)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("empty result still renders the header page", func(t *testing.T) {
		out, err := s.RenderPaymentsPDF(nil, "", "")
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(out[:4]))
	})

	t.Run("many payments paginate without error", func(t *testing.T) {
		var payments []model.Payment
		for i := 0; i < 120; i++ {
			payments = append(payments, acceptedPayment("Student", "PTA", "50"))
		}

		out, err := s.RenderPaymentsPDF(payments, "Second Semester", "2025-2026")
		require.NoError(t, err)
		assert.True(t, len(out) > 2000, "multi-page output expected")
	})
}

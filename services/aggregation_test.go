package services

import (
	"testing"

	"github.com/feetrack/api/database"
	"github.com/feetrack/api/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSumCommittee(t *testing.T) {
	t.Run("sums parseable amounts and counts all rows", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "LAC", Amount: strPtr("100")},
			{Committee: "LAC", Amount: strPtr("50")},
		}

		total := SumCommittee("LAC", rows)
		assert.Equal(t, "LAC", total.Committee)
		assert.Equal(t, 150.0, total.TotalAmount)
		assert.Equal(t, int64(2), total.Count)
	})

	t.Run("unparseable amounts are skipped from the sum but counted", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "CF", Amount: strPtr("200")},
			{Committee: "CF", Amount: strPtr("n/a")},
			{Committee: "CF", Amount: nil},
			{Committee: "CF", Amount: strPtr("")},
		}

		total := SumCommittee("CF", rows)
		assert.Equal(t, 200.0, total.TotalAmount)
		assert.Equal(t, int64(4), total.Count)
	})

	t.Run("no rows yields a zero total", func(t *testing.T) {
		total := SumCommittee("RHC", nil)
		assert.Equal(t, 0.0, total.TotalAmount)
		assert.Equal(t, int64(0), total.Count)
	})

	t.Run("decimal amounts accumulate", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "PTA", Amount: strPtr("10.50")},
			{Committee: "PTA", Amount: strPtr("4.25")},
		}

		total := SumCommittee("PTA", rows)
		assert.InDelta(t, 14.75, total.TotalAmount, 0.0001)
	})
}

func TestSumCategories(t *testing.T) {
	t.Run("each category sums independently", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "LAC", LAC: strPtr("100")},
			{Committee: "LAC", LAC: strPtr("50")},
			{Committee: "CF", CF: strPtr("30")},
		}

		out := SumCategories(rows)
		assert.Equal(t, 150.0, out.Totals["LAC"])
		assert.Equal(t, int64(2), out.Counts["LAC"])
		assert.Equal(t, 30.0, out.Totals["CF"])
		assert.Equal(t, int64(1), out.Counts["CF"])
	})

	t.Run("every known category is present even with no data", func(t *testing.T) {
		out := SumCategories(nil)
		for _, name := range model.CommitteeNames {
			assert.Contains(t, out.Totals, name)
			assert.Contains(t, out.Counts, name)
			assert.Equal(t, 0.0, out.Totals[name])
			assert.Equal(t, int64(0), out.Counts[name])
		}
	})

	t.Run("unparseable values are excluded from both sum and count", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "QAA", QAA: strPtr("75")},
			{Committee: "QAA", QAA: strPtr("pending")},
			{Committee: "QAA", QAA: nil},
		}

		out := SumCategories(rows)
		assert.Equal(t, 75.0, out.Totals["QAA"])
		assert.Equal(t, int64(1), out.Counts["QAA"])
	})

	t.Run("one row can contribute to several categories", func(t *testing.T) {
		rows := []database.AmountRow{
			{Committee: "CF", CF: strPtr("20"), RHC: strPtr("5")},
		}

		out := SumCategories(rows)
		assert.Equal(t, 20.0, out.Totals["CF"])
		assert.Equal(t, 5.0, out.Totals["RHC"])
		assert.Equal(t, int64(1), out.Counts["CF"])
		assert.Equal(t, int64(1), out.Counts["RHC"])
	})
}

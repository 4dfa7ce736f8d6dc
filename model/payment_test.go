package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestParseAmount(t *testing.T) {
	t.Run("parses clean numbers", func(t *testing.T) {
		v, ok := ParseAmount(ptr("150"))
		assert.True(t, ok)
		assert.Equal(t, 150.0, v)

		v, ok = ParseAmount(ptr("10.25"))
		assert.True(t, ok)
		assert.Equal(t, 10.25, v)
	})

	t.Run("rejects legacy junk", func(t *testing.T) {
		for _, raw := range []string{"", "n/a", "pending", "100 pesos"} {
			_, ok := ParseAmount(ptr(raw))
			assert.False(t, ok, "expected %q to be unparseable", raw)
		}
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, ok := ParseAmount(nil)
		assert.False(t, ok)
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15", FormatAmount(15))
	assert.Equal(t, "10.5", FormatAmount(10.5))
	assert.Equal(t, "0", FormatAmount(0))
}

func TestTopUpRoundTrip(t *testing.T) {
	// Two successive top-ups through the text column must accumulate
	raw := FormatAmount(10)
	current, ok := ParseAmount(&raw)
	assert.True(t, ok)

	raw = FormatAmount(current + 5)
	assert.Equal(t, "15", raw)

	current, ok = ParseAmount(&raw)
	assert.True(t, ok)
	raw = FormatAmount(current + 5)
	assert.Equal(t, "20", raw)
}

func TestCategoryValue(t *testing.T) {
	p := Payment{Committee: CommitteeLAC}
	p.SetCategoryValue(CommitteeLAC, "100")

	v, ok := p.CategoryValue(CommitteeLAC)
	assert.True(t, ok)
	assert.Equal(t, "100", v)

	_, ok = p.CategoryValue(CommitteeCF)
	assert.False(t, ok, "unset categories stay NULL")

	// Unknown names are ignored on write and absent on read
	p.SetCategoryValue("XYZ", "5")
	_, ok = p.CategoryValue("XYZ")
	assert.False(t, ok)
}

func TestReassign(t *testing.T) {
	t.Run("clears the old category and mirrors into the new one", func(t *testing.T) {
		p := Payment{Committee: CommitteeCF, Amount: "100"}
		p.SetCategoryValue(CommitteeCF, "100")

		p.Reassign(CommitteeLAC)

		assert.Equal(t, CommitteeLAC, p.Committee)
		_, ok := p.CategoryValue(CommitteeCF)
		assert.False(t, ok, "old category must not keep the mirrored amount")
		v, ok := p.CategoryValue(CommitteeLAC)
		assert.True(t, ok)
		assert.Equal(t, "100", v)
	})

	t.Run("reassigning to the same committee is a no-op", func(t *testing.T) {
		p := Payment{Committee: CommitteePTA, Amount: "50"}
		p.SetCategoryValue(CommitteePTA, "75") // topped up past the base amount

		p.Reassign(CommitteePTA)

		v, ok := p.CategoryValue(CommitteePTA)
		assert.True(t, ok)
		assert.Equal(t, "75", v, "no-op reassign must not re-mirror the base amount")
	})
}

func TestIsKnownCommittee(t *testing.T) {
	for _, name := range CommitteeNames {
		assert.True(t, IsKnownCommittee(name))
	}
	assert.False(t, IsKnownCommittee("SSC"))
	assert.False(t, IsKnownCommittee("cf"), "matching is on the stored uppercase form")
	assert.False(t, IsKnownCommittee(""))
}

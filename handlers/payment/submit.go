package payment

import (
	"mime/multipart"
	"strings"

	"github.com/feetrack/api/model"
	"github.com/feetrack/api/services/storage"
	"github.com/feetrack/api/utils/response"
	"github.com/feetrack/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Defaults applied when a submission omits the academic term
const (
	DefaultSemester   = "First Semester"
	DefaultSchoolYear = "2025-2026"
)

// SubmitPayment handles POST /api/v1/payments/submit/:user_id.
// Multipart form: committee, amount, semester, school_year, is_walk_in,
// plus zero or more files under "proofs".
func (h *PaymentHandler) SubmitPayment(c *fiber.Ctx) error {
	committee := strings.ToUpper(strings.TrimSpace(c.FormValue("committee")))
	return h.createPayment(c, committee)
}

// SubmitCommitteePayment handles POST /api/v1/payments/:user_id/:committee,
// the same flow with the committee taken from the path.
func (h *PaymentHandler) SubmitCommitteePayment(c *fiber.Ctx) error {
	committee := strings.ToUpper(strings.TrimSpace(c.Params("committee")))
	return h.createPayment(c, committee)
}

func (h *PaymentHandler) createPayment(c *fiber.Ctx, committee string) error {
	userID := c.Params("user_id")

	var student model.User
	if err := h.db.First(&student, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	if !model.IsKnownCommittee(committee) {
		return response.BadRequest(c, "Unknown committee; must be one of: CF, LAC, PTA, QAA, RHC")
	}

	amount := strings.TrimSpace(c.FormValue("amount"))
	if ok, msg := validation.ValidateAmountText(amount); !ok {
		return response.BadRequest(c, msg)
	}

	semester := strings.TrimSpace(c.FormValue("semester"))
	if semester == "" {
		semester = DefaultSemester
	}
	schoolYear := strings.TrimSpace(c.FormValue("school_year"))
	if schoolYear == "" {
		schoolYear = DefaultSchoolYear
	}
	isWalkIn := c.FormValue("is_walk_in") == "true"

	// Proof files are optional on submit, but every attached file must pass
	// the whitelist before any row is written.
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["proofs"]
	}
	for _, file := range files {
		if ok, msg := validation.ValidateProofFilename(file.Filename); !ok {
			return response.BadRequest(c, msg)
		}
		if file.Size > validation.MaxProofFileSize {
			return response.BadRequest(c, "Proof file exceeds the 10MB limit")
		}
	}

	payment := model.Payment{
		StudentID:  student.ID,
		Committee:  committee,
		Amount:     amount,
		Semester:   semester,
		SchoolYear: schoolYear,
		Status:     model.StatusPending,
		IsWalkIn:   isWalkIn,
	}
	// The committee's category column mirrors the submitted amount so the
	// per-category rollups see it without joining back through committee.
	payment.SetCategoryValue(committee, amount)

	var savedKeys []string
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		for _, file := range files {
			proof, key, err := h.storeProof(c, tx, payment.ID, file)
			if err != nil {
				return err
			}
			savedKeys = append(savedKeys, key)
			payment.Proofs = append(payment.Proofs, *proof)
		}
		return nil
	})
	if err != nil {
		for _, key := range savedKeys {
			_ = h.proofs.Remove(c.Context(), key)
		}
		return response.InternalServerError(c, "Failed to create payment")
	}

	return response.Created(c, payment)
}

// storeProof writes one uploaded file to the proof store and records its
// row through the given transaction. Returns the storage key so callers
// can unlink the file if the transaction later rolls back.
func (h *PaymentHandler) storeProof(c *fiber.Ctx, tx *gorm.DB, paymentID uint, file *multipart.FileHeader) (*model.PaymentProof, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	key := storage.GenerateProofKey(paymentID, file.Filename)
	url, err := h.proofs.Save(c.Context(), key, src, storage.ContentTypeFor(file.Filename))
	if err != nil {
		return nil, "", err
	}

	proof := model.PaymentProof{
		PaymentID:  paymentID,
		StorageKey: key,
		Filename:   file.Filename,
		URL:        url,
		FileSize:   file.Size,
	}
	if err := tx.Create(&proof).Error; err != nil {
		return nil, key, err
	}
	return &proof, key, nil
}

package middleware

import (
	"encoding/json"
	"strconv"

	"github.com/feetrack/api/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StaffAuditLog records a staff action against a resource. Chain after
// Required() + StaffOnly(); logging is best-effort and never fails the
// request.
func StaffAuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok || user == nil {
			return c.Next()
		}

		// Parse resource ID from params if available
		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		// Capture the incoming body as the "new value"
		var newValue datatypes.JSON
		if c.Method() == fiber.MethodPost || c.Method() == fiber.MethodPut {
			body := c.Body()
			if json.Valid(body) {
				newValue = datatypes.JSON(append([]byte(nil), body...))
			}
		}

		// Capture the existing row as the "old value" for mutations
		var oldValue datatypes.JSON
		if resourceID > 0 && c.Method() != fiber.MethodGet {
			switch resource {
			case "payments":
				var payment model.Payment
				if err := db.First(&payment, resourceID).Error; err == nil {
					if raw, err := json.Marshal(payment); err == nil {
						oldValue = raw
					}
				}
			case "committees":
				var committee model.Committee
				if err := db.First(&committee, resourceID).Error; err == nil {
					if raw, err := json.Marshal(committee); err == nil {
						oldValue = raw
					}
				}
			}
		}

		staffID := user.ID
		ip := c.IP()
		userAgent := c.Get("User-Agent")
		description := c.Method() + " " + c.Path()

		// Execute the actual handler
		err := c.Next()

		go func() {
			auditLog := model.StaffAuditLog{
				StaffID:     staffID,
				Action:      action,
				Resource:    resource,
				ResourceID:  resourceID,
				OldValue:    oldValue,
				NewValue:    newValue,
				IPAddress:   ip,
				UserAgent:   userAgent,
				Description: description,
			}

			db.Create(&auditLog)
		}()

		return err
	}
}

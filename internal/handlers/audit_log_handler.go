package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/httpresp"
	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

type AuditLogHandler struct {
	db *gorm.DB
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{db: db}
}

// ListByShop returns the newest audit entries for a shop the caller owns.
func (h *AuditLogHandler) ListByShop(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}
	if shop.OwnerID != ownerID {
		httperr.Forbidden(c, "not_shop_owner", "Shop belongs to a different owner.")
		return
	}

	var logs []models.AuditLog
	if err := h.db.Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}

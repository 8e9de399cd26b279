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

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated user's profile. Owners also get the shops
// they run.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"nickname": user.Nickname,
			"email":    user.Email,
			"phone":    user.Phone,
			"role":     user.Role,
		},
	}

	if user.Role == models.RoleOwner {
		var shops []models.Shop
		if err := h.db.Preload("Images").Where("owner_id = ?", userID).Find(&shops).Error; err != nil {
			httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
			return
		}
		resp["shops"] = shops
	}

	httpresp.OK(c, resp)
}

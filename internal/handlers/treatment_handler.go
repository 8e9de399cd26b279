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

const (
	minTreatmentDuration = 10
	maxTreatmentDuration = 300
)

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

type UpsertTreatmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"max=500"`
	DurationMin int    `json:"duration_min" binding:"required"`
	Price       int64  `json:"price"`
	Active      *bool  `json:"active"`
}

func (r *UpsertTreatmentRequest) validate(c *gin.Context) bool {
	if r.DurationMin < minTreatmentDuration || r.DurationMin > maxTreatmentDuration {
		httperr.BadRequest(c, "invalid_duration", "Duration must be between 10 and 300 minutes.")
		return false
	}
	if r.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return false
	}
	return true
}

// --------- Owner ---------

func (h *TreatmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	var req UpsertTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !req.validate(c) {
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	treatment := models.Treatment{
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      active,
	}

	if err := h.db.Create(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "Could not create treatment.")
		return
	}

	httpresp.Created(c, treatment)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Treatment id must be a UUID.")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, "id = ? AND shop_id = ?", treatmentID, shop.ID).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
		return
	}

	var req UpsertTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !req.validate(c) {
		return
	}

	treatment.Name = req.Name
	treatment.Description = req.Description
	treatment.DurationMin = req.DurationMin
	treatment.Price = req.Price
	if req.Active != nil {
		treatment.Active = *req.Active
	}

	if err := h.db.Save(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "Could not update treatment.")
		return
	}

	httpresp.OK(c, treatment)
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	treatmentID, err := uuid.Parse(c.Param("treatmentId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "Treatment id must be a UUID.")
		return
	}

	res := h.db.Where("id = ? AND shop_id = ?", treatmentID, shop.ID).Delete(&models.Treatment{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_treatment", "Could not delete treatment.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "treatment_not_found", "Treatment not found.")
		return
	}

	c.Status(204)
}

// --------- Public ---------

func (h *TreatmentHandler) ListByShop(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var treatments []models.Treatment
	if err := h.db.Where("shop_id = ? AND active = ?", shopID, true).Order("name").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Could not list treatments.")
		return
	}

	httpresp.List(c, treatments)
}

func (h *TreatmentHandler) ownedShop(c *gin.Context, ownerID uuid.UUID) (*models.Shop, bool) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return nil, false
	}

	var shop models.Shop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return nil, false
	}

	if shop.OwnerID != ownerID {
		httperr.Forbidden(c, "not_shop_owner", "Shop belongs to a different owner.")
		return nil, false
	}

	return &shop, true
}

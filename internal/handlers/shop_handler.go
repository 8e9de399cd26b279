package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/jellomark/beautishop-scheduler/internal/domain/reservation"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
	"github.com/jellomark/beautishop-scheduler/internal/httpresp"
	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/storage"
)

const maxShopImages = 10

type ShopHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewShopHandler(db *gorm.DB, images *storage.ImageStore) *ShopHandler {
	return &ShopHandler{db: db, images: images}
}

// --------- Requests ---------

type UpsertShopRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description" binding:"max=500"`

	// weekday -> "HH:MM-HH:MM" | "closed"
	OperatingHours map[string]string `json:"operating_hours" binding:"required"`
}

// --------- Owner ---------

func (h *ShopHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpsertShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Malformed hours are rejected here, at configuration time; the slot
	// calculator only ever sees validated schedules.
	if _, err := domain.ParseOperatingSchedule(req.OperatingHours); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	hoursJSON, _ := json.Marshal(req.OperatingHours)

	shop := models.Shop{
		OwnerID:        ownerID,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		Description:    req.Description,
		OperatingHours: string(hoursJSON),
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop", "Could not create shop.")
		return
	}

	httpresp.Created(c, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	var req UpsertShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := domain.ParseOperatingSchedule(req.OperatingHours); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	hoursJSON, _ := json.Marshal(req.OperatingHours)

	shop.Name = req.Name
	shop.Phone = req.Phone
	shop.Address = req.Address
	shop.Description = req.Description
	shop.OperatingHours = string(hoursJSON)

	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Could not update shop.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *ShopHandler) ListMine(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var shops []models.Shop
	if err := h.db.Preload("Images").Where("owner_id = ?", ownerID).Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	httpresp.List(c, shops)
}

func (h *ShopHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	if err := h.db.Delete(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_shop", "Could not delete shop.")
		return
	}

	c.Status(204)
}

func (h *ShopHandler) UploadImage(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	shop, ok := h.ownedShop(c, ownerID)
	if !ok {
		return
	}

	var count int64
	h.db.Model(&models.ShopImage{}).Where("shop_id = ?", shop.ID).Count(&count)
	if count >= maxShopImages {
		httperr.BadRequest(c, "too_many_images", "Image limit reached.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Multipart field 'image' is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read upload.")
		return
	}

	url, err := h.images.UploadShopImage(c.Request.Context(), shop.ID, data)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	img := models.ShopImage{ShopID: shop.ID, URL: url, Position: int(count)}
	if err := h.db.Create(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Could not save image.")
		return
	}

	httpresp.Created(c, img)
}

// --------- Public ---------

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Preload("Images").Order("average_rating DESC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Could not list shops.")
		return
	}

	httpresp.List(c, shops)
}

func (h *ShopHandler) Get(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var shop models.Shop
	if err := h.db.Preload("Images").First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	httpresp.OK(c, shop)
}

// --------- Helpers ---------

func (h *ShopHandler) ownedShop(c *gin.Context, ownerID uuid.UUID) (*models.Shop, bool) {
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

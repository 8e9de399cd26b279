package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	// A pooled :memory: database is per-connection; pin to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Shop{}, &models.ShopImage{}))
	return db
}

func getMe(db *gorm.DB, userID uuid.UUID) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	}, NewMeHandler(db).GetMe)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	return w
}

func TestGetMe_Member(t *testing.T) {
	db := testDB(t)

	user := models.User{
		Name:         "Mina Park",
		Email:        "mina@example.com",
		PasswordHash: "x",
		Role:         models.RoleMember,
	}
	require.NoError(t, db.Create(&user).Error)

	w := getMe(db, user.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	profile := body["user"].(map[string]any)
	assert.Equal(t, user.ID.String(), profile["id"])
	assert.Equal(t, "Mina Park", profile["name"])
	assert.Equal(t, models.RoleMember, profile["role"])

	_, hasShops := body["shops"]
	assert.False(t, hasShops, "members carry no shop list")
}

func TestGetMe_OwnerIncludesShops(t *testing.T) {
	db := testDB(t)

	owner := models.User{
		Name:         "Joon Lee",
		Email:        "joon@example.com",
		PasswordHash: "x",
		Role:         models.RoleOwner,
	}
	require.NoError(t, db.Create(&owner).Error)

	shop := models.Shop{
		OwnerID:        owner.ID,
		Name:           "Lumi Hair",
		OperatingHours: `{"monday":"09:00-18:00"}`,
	}
	require.NoError(t, db.Create(&shop).Error)

	w := getMe(db, owner.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	shops := body["shops"].([]any)
	require.Len(t, shops, 1)
	assert.Equal(t, "Lumi Hair", shops[0].(map[string]any)["name"])
}

func TestGetMe_UnknownUser(t *testing.T) {
	db := testDB(t)

	w := getMe(db, uuid.New())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

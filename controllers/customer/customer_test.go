package customerController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yashsingh9651/arvan-backend/common"
	customerController "github.com/yashsingh9651/arvan-backend/controllers/customer"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	customerRoutes "github.com/yashsingh9651/arvan-backend/routers/customerRoutes"
)

func newCustomerApp(t *testing.T) (*fiber.App, *gorm.DB, *middleware.Auth) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}, &models.Order{}))

	auth := middleware.NewAuth("test-secret")
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	customerRoutes.SetupCustomerRoutes(app, customerController.New(db), auth)

	return app, db, auth
}

func signedUser(t *testing.T, auth *middleware.Auth, db *gorm.DB, mobile, role string) (string, *models.User) {
	t.Helper()

	user := &models.User{Name: "Customer", Mobile: mobile, Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)
	return token, user
}

func send(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func addressBody() fiber.Map {
	return fiber.Map{
		"name":    "Home",
		"phone":   "+10000000001",
		"street":  "221B Baker Street",
		"city":    "Mumbai",
		"state":   "Maharashtra",
		"country": "India",
		"zipCode": "400001",
	}
}

func TestAllCustomersAdminReport(t *testing.T) {
	app, db, auth := newCustomerApp(t)
	adminToken, _ := signedUser(t, auth, db, "+10000000099", models.RoleAdmin)
	userToken, user := signedUser(t, auth, db, "+10000000001", models.RoleUser)

	require.NoError(t, db.Create(&models.Order{UserID: user.ID, AddressID: 1, Total: 300}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID, AddressID: 1, Total: 200}).Error)

	// Regular users cannot pull the report
	status, _ := send(t, app, http.MethodGet, "/api/customers/allcustomers", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := send(t, app, http.MethodGet, "/api/customers/allcustomers", adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	customers := body["data"].([]interface{})
	require.Len(t, customers, 2)

	var row map[string]interface{}
	for _, c := range customers {
		entry := c.(map[string]interface{})
		if entry["id"].(float64) == float64(user.ID) {
			row = entry
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, float64(2), row["totalOrders"])
	assert.Equal(t, float64(500), row["totalSpent"])
	assert.NotNil(t, row["lastOrder"])
}

func TestUpdateCustomerProfile(t *testing.T) {
	app, db, auth := newCustomerApp(t)
	token, user := signedUser(t, auth, db, "+10000000001", models.RoleUser)

	status, _ := send(t, app, http.MethodPut, "/api/customers/", token, fiber.Map{
		"name":      "Updated Name",
		"mobile_no": "+10000000001",
		"image":     "https://cdn.example.com/avatar.jpg",
		"email":     "updated@example.com",
	})
	require.Equal(t, http.StatusOK, status)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "updated@example.com", updated.Email)
}

func TestAddressLifecycle(t *testing.T) {
	app, db, auth := newCustomerApp(t)
	aliceToken, alice := signedUser(t, auth, db, "+10000000001", models.RoleUser)
	bobToken, _ := signedUser(t, auth, db, "+10000000002", models.RoleUser)

	status, _ := send(t, app, http.MethodPost, "/api/customers/address", aliceToken, addressBody())
	require.Equal(t, http.StatusCreated, status)

	var address models.Address
	require.NoError(t, db.First(&address).Error)
	assert.Equal(t, alice.ID, address.UserID)

	status, body := send(t, app, http.MethodGet, "/api/customers/address", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"].([]interface{}), 1)

	// Other customers see nothing and cannot delete it
	status, body = send(t, app, http.MethodGet, "/api/customers/address", bobToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])

	path := fmt.Sprintf("/api/customers/address/%d", address.ID)
	status, _ = send(t, app, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = send(t, app, http.MethodDelete, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = send(t, app, http.MethodGet, "/api/customers/address", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])
}

func TestAddAddressValidation(t *testing.T) {
	app, db, auth := newCustomerApp(t)
	token, _ := signedUser(t, auth, db, "+10000000001", models.RoleUser)

	body := addressBody()
	body["zipCode"] = "1"
	status, _ := send(t, app, http.MethodPost, "/api/customers/address", token, body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

package storeapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/museme/storefront/config"
	"github.com/museme/storefront/internal/auth"
	"github.com/museme/storefront/internal/domain"
	"github.com/museme/storefront/internal/storeapi"
	"github.com/museme/storefront/internal/webserver"
)

type testAppCtx struct {
	cfg *config.AppConfig
	db  *gorm.DB
}

func (t *testAppCtx) Config() *config.AppConfig { return t.cfg }
func (t *testAppCtx) DB() *gorm.DB              { return t.db }

func setupAPI(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Tables...))

	cfg := config.DefaultAppConfig
	svc := auth.NewService(auth.NewGormUserRepository(db), cfg.Auth.Secret,
		time.Duration(cfg.Auth.TokenExpireDays)*24*time.Hour)

	webserver.Init(&testAppCtx{cfg: &cfg, db: db}, svc.Secret())
	storeapi.InitRouter(svc)
	return db
}

func doRequest(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	webserver.Echo().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedProducts(t *testing.T, db *gorm.DB) []domain.Product {
	t.Helper()
	rent := int64(30000)
	products := []domain.Product{
		{Name: "전통 귀걸이 세트", Code: "TRAD-EAR-001", Material: "실버 925",
			BuyPrice: 150000, RentPrice: &rent, Theme: "traditional", Category: "earring"},
		{Name: "데일리 반지", Code: "DAILY-RING-001", Material: "스테인리스",
			BuyPrice: 50000, Theme: "daily", Category: "ring"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return products
}

func TestRegisterEndpoint(t *testing.T) {
	db := setupAPI(t)

	rec := doRequest(http.MethodPost, "/api/auth/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user@example.com", user["email"])

	// password hash never leaks through the API
	assert.NotContains(t, rec.Body.String(), "password")

	var logged int64
	db.Model(&domain.AuthLog{}).Where("action = ? and result = ?",
		domain.AuthActionRegister, "ok").Count(&logged)
	assert.Equal(t, int64(1), logged)
}

func TestRegisterDuplicateEndpoint(t *testing.T) {
	setupAPI(t)

	payload := `{"email":"user@example.com","password":"secret123"}`
	rec := doRequest(http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(http.MethodPost, "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "이미 등록된 이메일입니다.", decodeBody(t, rec)["error"])
}

func TestRegisterMissingFieldsEndpoint(t *testing.T) {
	setupAPI(t)

	rec := doRequest(http.MethodPost, "/api/auth/register", `{"email":"user@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "이메일과 비밀번호를 입력해주세요.", decodeBody(t, rec)["error"])
}

func TestLoginEndpoint(t *testing.T) {
	setupAPI(t)

	payload := `{"email":"user@example.com","password":"secret123"}`
	rec := doRequest(http.MethodPost, "/api/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(http.MethodPost, "/api/auth/login", payload, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["token"])
}

func TestLoginRejectedEndpoint(t *testing.T) {
	db := setupAPI(t)

	rec := doRequest(http.MethodPost, "/api/auth/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(http.MethodPost, "/api/auth/login",
		`{"email":"user@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", decodeBody(t, rec)["error"])

	// unknown accounts get the same answer as wrong passwords
	rec = doRequest(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", decodeBody(t, rec)["error"])

	var denied int64
	db.Model(&domain.AuthLog{}).Where("action = ? and result = ?",
		domain.AuthActionLogin, "denied").Count(&denied)
	assert.Equal(t, int64(2), denied)
}

func TestLogoutEndpoint(t *testing.T) {
	setupAPI(t)

	rec := doRequest(http.MethodPost, "/api/auth/logout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "로그아웃 되었습니다.", decodeBody(t, rec)["message"])
}

func TestListProductsEndpoint(t *testing.T) {
	db := setupAPI(t)
	seedProducts(t, db)

	rec := doRequest(http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody(t, rec)["products"].([]interface{})
	assert.Len(t, products, 2)

	rec = doRequest(http.MethodGet, "/api/products?theme=daily", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products = decodeBody(t, rec)["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "DAILY-RING-001", products[0].(map[string]interface{})["code"])

	rec = doRequest(http.MethodGet, "/api/products?category=all", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products = decodeBody(t, rec)["products"].([]interface{})
	assert.Len(t, products, 2)

	rec = doRequest(http.MethodGet, "/api/products?theme=bridal", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products = decodeBody(t, rec)["products"].([]interface{})
	assert.Empty(t, products)
}

func TestGetProductEndpoint(t *testing.T) {
	db := setupAPI(t)
	seeded := seedProducts(t, db)

	images := []domain.ProductImage{
		{ProductID: seeded[0].ID, ImageURL: "/static/d1.jpg", ImageType: domain.ImageTypeDetail},
		{ProductID: seeded[0].ID, ImageURL: "/static/w1.jpg", ImageType: domain.ImageTypeWear},
	}
	require.NoError(t, db.Create(&images).Error)

	rec := doRequest(http.MethodGet, fmt.Sprintf("/api/product/%d", seeded[0].ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "TRAD-EAR-001", body["code"])
	assert.Equal(t, []interface{}{"/static/d1.jpg"}, body["detail_images"])
	assert.Equal(t, []interface{}{"/static/w1.jpg"}, body["wearing_shots"])
}

func TestGetProductEmptyGallery(t *testing.T) {
	db := setupAPI(t)
	seeded := seedProducts(t, db)

	rec := doRequest(http.MethodGet, fmt.Sprintf("/api/product/%d", seeded[1].ID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// both gallery keys are always present, as empty arrays
	body := decodeBody(t, rec)
	require.Contains(t, body, "detail_images")
	require.Contains(t, body, "wearing_shots")
	assert.Equal(t, []interface{}{}, body["detail_images"])
	assert.Equal(t, []interface{}{}, body["wearing_shots"])
}

func TestGetProductNotFound(t *testing.T) {
	setupAPI(t)

	rec := doRequest(http.MethodGet, "/api/product/99999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeBody(t, rec)["error"])

	rec = doRequest(http.MethodGet, "/api/product/not-a-number", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileEndpoint(t *testing.T) {
	setupAPI(t)

	rec := doRequest(http.MethodPost, "/api/auth/register",
		`{"email":"user@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	rec = doRequest(http.MethodGet, "/api/account/profile", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", decodeBody(t, rec)["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestProfileRequiresToken(t *testing.T) {
	setupAPI(t)

	rec := doRequest(http.MethodGet, "/api/account/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "인증이 필요합니다.", decodeBody(t, rec)["error"])
}

func TestProfileRejectsForgedToken(t *testing.T) {
	setupAPI(t)

	forged, err := auth.IssueToken([]byte("some-other-secret"), 1, "user@example.com", time.Hour)
	require.NoError(t, err)

	rec := doRequest(http.MethodGet, "/api/account/profile", "", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

//go:build integration

// Package integration provides BDD integration tests using Godog/Cucumber.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zen-finance/backend/internal/application/adapter"
	"github.com/zen-finance/backend/internal/application/usecase/auth"
	"github.com/zen-finance/backend/internal/application/usecase/receipt"
	"github.com/zen-finance/backend/internal/infra/server/router"
	"github.com/zen-finance/backend/internal/integration/adapters"
	"github.com/zen-finance/backend/internal/integration/entrypoint/controller"
	"github.com/zen-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/zen-finance/backend/internal/integration/persistence"
	"github.com/zen-finance/backend/internal/integration/persistence/model"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testPassword  = "SenhaForte123"
	testImage     = "data:image/jpeg;base64,dGVzdA=="
)

// scriptedExtractor is a receipt reader whose behavior each scenario scripts.
type scriptedExtractor struct {
	mu        sync.Mutex
	available bool
	fields    *adapter.ReceiptFields
	err       error
}

func (s *scriptedExtractor) Extract(ctx context.Context, imageDataURI string) (*adapter.ReceiptFields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.fields, nil
}

func (s *scriptedExtractor) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available
}

func (s *scriptedExtractor) script(available bool, fields *adapter.ReceiptFields, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = available
	s.fields = fields
	s.err = err
}

type testContext struct {
	server      *httptest.Server
	client      *http.Client
	db          *gorm.DB
	extractor   *scriptedExtractor
	accessToken string
	status      int
	body        map[string]interface{}
	raw         string
}

var (
	suiteOnce     sync.Once
	suiteServer   *httptest.Server
	suiteDB       *gorm.DB
	suiteExtract  *scriptedExtractor
)

func startSuite() {
	suiteOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to open test database: " + err.Error())
		}
		sqlDB, err := db.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxOpenConns(1)

		if err := db.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.ExpenseModel{},
		); err != nil {
			panic("failed to migrate test database: " + err.Error())
		}

		userRepo := persistence.NewUserRepository(db)
		tokenRepo := persistence.NewTokenRepository(db)
		expenseRepo := persistence.NewExpenseRepository(db)

		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
		extractor := &scriptedExtractor{}

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		processUseCase := receipt.NewProcessReceiptUseCase(extractor, nil)
		confirmUseCase := receipt.NewConfirmReceiptUseCase(expenseRepo, nil)

		authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase, logoutUseCase)
		receiptController := controller.NewReceiptController(processUseCase, confirmUseCase)
		healthController := controller.NewHealthController(func() bool { return true })

		loginRateLimiter := middleware.NewRateLimiter()
		authMiddleware := middleware.NewAuthMiddleware(tokenService)

		r := router.NewRouter(
			healthController,
			authController,
			nil, nil, nil,
			receiptController,
			nil,
			loginRateLimiter,
			authMiddleware,
		)
		engine := r.Setup("test")

		suiteServer = httptest.NewServer(engine)
		suiteDB = db
		suiteExtract = extractor
	})
}

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:   "pretty",
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		TestingT: t,
	}

	suite := godog.TestSuite{
		Name:                "zen-finance-api",
		ScenarioInitializer: InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	startSuite()

	test := &testContext{
		server:    suiteServer,
		client:    &http.Client{Timeout: 10 * time.Second},
		db:        suiteDB,
		extractor: suiteExtract,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.accessToken = ""
		test.status = 0
		test.body = nil
		test.raw = ""
		test.extractor.script(false, nil, nil)

		for _, table := range []string{"expenses", "refresh_tokens", "users"} {
			if err := test.db.Exec("DELETE FROM " + table).Error; err != nil {
				return ctx, err
			}
		}
		return ctx, nil
	})

	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the receipt reader extracts amount "([^"]*)" on "([^"]*)" at "([^"]*)"$`, test.theReceiptReaderExtracts)
	ctx.Given(`^the receipt reader is offline$`, test.theReceiptReaderIsOffline)

	ctx.When(`^I process a receipt image$`, test.iProcessAReceiptImage)
	ctx.When(`^I confirm a draft with amount "([^"]*)" on "([^"]*)" described "([^"]*)" in "([^"]*)"$`, test.iConfirmADraft)

	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the db should contain (\d+) expenses$`, test.theDbShouldContainExpenses)
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	payload := map[string]string{
		"name":     "Usuária de Teste",
		"email":    email,
		"password": testPassword,
	}
	if err := t.sendJSON(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if t.status != http.StatusCreated {
		return fmt.Errorf("registration returned %d: %s", t.status, t.raw)
	}

	tokens, ok := t.body["tokens"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("registration response has no tokens: %s", t.raw)
	}
	token, _ := tokens["access_token"].(string)
	if token == "" {
		return fmt.Errorf("registration response has no access token")
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) theReceiptReaderExtracts(amount, date, merchant string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.extractor.script(true, &adapter.ReceiptFields{
		Amount:     &value,
		Date:       &day,
		Merchant:   merchant,
		Confidence: 0.9,
	}, nil)
	return nil
}

func (t *testContext) theReceiptReaderIsOffline() error {
	t.extractor.script(false, nil, nil)
	return nil
}

func (t *testContext) iProcessAReceiptImage() error {
	return t.sendJSON(http.MethodPost, "/api/v1/receipts/process", map[string]string{
		"image": testImage,
	})
}

func (t *testContext) iConfirmADraft(amount, date, description, category string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	amountFloat, _ := value.Float64()
	return t.sendJSON(http.MethodPost, "/api/v1/receipts/confirm", map[string]interface{}{
		"date":        date,
		"amount":      amountFloat,
		"description": description,
		"category":    category,
	})
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.status != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, t.status, t.raw)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(fragment string) error {
	if !strings.Contains(t.raw, fragment) {
		return fmt.Errorf("response does not contain %q: %s", fragment, t.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %s to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainExpenses(expected int) error {
	var count int64
	if err := t.db.Model(&model.ExpenseModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d expenses, found %d", expected, count)
	}
	return nil
}

func (t *testContext) lookupField(path string) (interface{}, error) {
	if t.body == nil {
		return nil, fmt.Errorf("response body is not JSON: %s", t.raw)
	}

	var current interface{} = t.body
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("field %s is not an object in %s", part, t.raw)
		}
		current, ok = node[part]
		if !ok {
			return nil, fmt.Errorf("field %s not found in %s", part, t.raw)
		}
	}
	return current, nil
}

func (t *testContext) sendJSON(method, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, t.server.URL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return err
	}

	t.status = resp.StatusCode
	t.raw = buf.String()
	t.body = nil
	if json.Valid(buf.Bytes()) {
		var decoded map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err == nil {
			t.body = decoded
		}
	}
	return nil
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/bookkeep/backend/internal/infrastructure/identity"
	"github.com/bookkeep/backend/internal/infrastructure/persistence"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/bookkeep/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestEngine builds the full route surface over a mocked store,
// with the auth gate replaced by a stub that injects the given caller.
func newTestEngine(t *testing.T, userID string) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	client, err := persistence.NewScopeFactory(&persistence.Database{DB: gormDB}).
		Scoped(&identity.Identity{UserID: userID, Claims: map[string]any{"sub": userID}})
	require.NoError(t, err)

	engine := gin.New()
	stubGate := func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
		c.Set(middleware.ScopedClientKey, client)
		c.Next()
	}

	r := router.NewRouter(engine)
	r.Register(NewSystemHandler())
	r.RegisterWith(NewTransactionHandler(), stubGate)
	r.RegisterWith(NewDocumentHandler(), stubGate)
	r.RegisterWith(NewSummaryHandler(), stubGate)
	r.RegisterWith(NewTenantHandler(), stubGate)
	r.Setup()

	return engine, mock
}

// expectScopedSession registers the transaction-scoped session setup
// that precedes every store operation.
func expectScopedSession(mock sqlmock.Sqlmock, userID string) {
	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL ROLE authenticated`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`SELECT set_config\('request\.jwt\.claims', \$1, true\)`).
		WithArgs(`{"sub":"` + userID + `"}`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func validationFields(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body struct {
		Code    string `json:"code"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, shared.CodeInvalidInput, body.Code)
	fields := map[string]string{}
	for _, d := range body.Details {
		fields[d.Field] = d.Message
	}
	return fields
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t, uuid.NewString())

	w := doJSON(engine, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.NewString()
	tenantID := uuid.NewString()

	t.Run("valid request answers 201 with the new id", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		txID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(txID))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodPost, "/transactions",
			`{"tenantId":"`+tenantID+`","type":"income","amount":150.25,"description":"Invoice 7","date":"2026-02-14","category":"sales"}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, txID.String(), decodeBody(t, w)["id"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("validation failures answer 400 with field details", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/transactions",
			`{"tenantId":"nope","type":"transfer","amount":-1,"date":"2026/02/14"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := validationFields(t, w)
		assert.Contains(t, fields, "tenantId")
		assert.Contains(t, fields, "type")
		assert.Contains(t, fields, "amount")
		assert.Contains(t, fields, "date")
		assert.Contains(t, fields, "description")
		assert.Contains(t, fields, "category")
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/transactions",
			`{"tenantId":"`+tenantID+`","type":"expense","amount":0,"description":"x","date":"2026-02-14","category":"misc"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, validationFields(t, w), "amount")
	})

	t.Run("store policy denial answers 403", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		expectScopedSession(mock, userID)
		mock.ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnError(&pgconn.PgError{
				Code:    "42501",
				Message: `new row violates row-level security policy for table "transactions"`,
			})
		mock.ExpectRollback()

		w := doJSON(engine, http.MethodPost, "/transactions",
			`{"tenantId":"`+tenantID+`","type":"expense","amount":20,"description":"Taxi","date":"2026-02-14","category":"travel"}`)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, shared.CodeForbidden, decodeBody(t, w)["code"])
	})

	t.Run("other store failures answer 400", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		expectScopedSession(mock, userID)
		mock.ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
		mock.ExpectRollback()

		w := doJSON(engine, http.MethodPost, "/transactions",
			`{"tenantId":"`+tenantID+`","type":"expense","amount":20,"description":"Taxi","date":"2026-02-14","category":"travel"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, shared.CodeStoreError, decodeBody(t, w)["code"])
	})

	t.Run("malformed json answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/transactions", `{"amount": "ten"`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTransactions(t *testing.T) {
	userID := uuid.NewString()

	t.Run("returns the tenant's transactions", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		tenantID := uuid.New()
		expectScopedSession(mock, userID)
		// Dates come back from the driver as time.Time; the response
		// must still carry the plain YYYY-MM-DD day.
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE tenant_id = \$1 ORDER BY date DESC,created_at DESC`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "type", "amount", "description", "date", "category", "created_by"}).
				AddRow(uuid.New(), tenantID, "income", decimal.NewFromFloat(1200.50), "Invoice 3", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), "sales", uuid.New()))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodGet, "/transactions?tenantId="+tenantID.String(), "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var body struct {
			Transactions []struct {
				Type   string  `json:"type"`
				Amount float64 `json:"amount"`
				Date   string  `json:"date"`
			} `json:"transactions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Transactions, 1)
		assert.Equal(t, "income", body.Transactions[0].Type)
		assert.Equal(t, 1200.50, body.Transactions[0].Amount)
		assert.Equal(t, "2026-02-10", body.Transactions[0].Date)
	})

	t.Run("empty result is an empty array, not null", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		tenantID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`SELECT \* FROM "transactions"`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodGet, "/transactions?tenantId="+tenantID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"transactions":[]}`, w.Body.String())
	})

	t.Run("missing tenantId answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodGet, "/transactions", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed tenantId answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodGet, "/transactions?tenantId=abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateDocument(t *testing.T) {
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	t.Run("valid request answers 201", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		docID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`INSERT INTO "documents"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(docID))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodPost, "/documents",
			`{"transactionId":"`+transactionID+`","fileUrl":"https://files.example.com/receipt.pdf"}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, docID.String(), decodeBody(t, w)["id"])
	})

	t.Run("file url is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/documents",
			`{"transactionId":"`+transactionID+`","fileUrl":"file:///etc/passwd"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-http scheme is rejected", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/documents",
			`{"transactionId":"`+transactionID+`","fileUrl":"ftp://files.example.com/receipt.pdf"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields answer 400 with details", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/documents", `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := validationFields(t, w)
		assert.Contains(t, fields, "transactionId")
		assert.Contains(t, fields, "fileUrl")
	})

	t.Run("attaching to a foreign transaction answers 403", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		expectScopedSession(mock, userID)
		mock.ExpectQuery(`INSERT INTO "documents"`).
			WillReturnError(&pgconn.PgError{
				Code:    "42501",
				Message: `new row violates row-level security policy for table "documents"`,
			})
		mock.ExpectRollback()

		w := doJSON(engine, http.MethodPost, "/documents",
			`{"transactionId":"`+transactionID+`","fileUrl":"https://files.example.com/receipt.pdf"}`)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListDocuments(t *testing.T) {
	userID := uuid.NewString()

	t.Run("returns the transaction's documents", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		transactionID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`SELECT \* FROM "documents" WHERE transaction_id = \$1 ORDER BY created_at DESC`).
			WithArgs(transactionID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "file_url"}).
				AddRow(uuid.New(), transactionID, "https://files.example.com/a.pdf"))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodGet, "/documents?transactionId="+transactionID.String(), "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "https://files.example.com/a.pdf")
	})

	t.Run("missing transactionId answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodGet, "/documents", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetSummary(t *testing.T) {
	userID := uuid.NewString()

	t.Run("computes totals over all rows", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		tenantID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`SELECT "type","amount" FROM "transactions" WHERE tenant_id = \$1`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"type", "amount"}).
				AddRow("income", decimal.NewFromInt(1000)).
				AddRow("income", decimal.NewFromInt(500)).
				AddRow("expense", decimal.NewFromInt(200)).
				AddRow("expense", decimal.NewFromInt(300)))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodGet, "/summary?tenantId="+tenantID.String(), "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"totalIncome":1500,"totalExpense":500,"balance":1000}`, w.Body.String())
	})

	t.Run("no rows yields zero totals", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		tenantID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`SELECT "type","amount" FROM "transactions"`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"type", "amount"}))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodGet, "/summary?tenantId="+tenantID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalIncome":0,"totalExpense":0,"balance":0}`, w.Body.String())
	})

	t.Run("missing tenantId answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodGet, "/summary", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateTenant(t *testing.T) {
	userID := uuid.NewString()

	t.Run("valid request answers 201 with the tenant id", func(t *testing.T) {
		engine, mock := newTestEngine(t, userID)

		tenantID := uuid.New()
		expectScopedSession(mock, userID)
		mock.ExpectQuery(`SELECT create_tenant_and_join\(\$1\)`).
			WithArgs("Acme Books").
			WillReturnRows(sqlmock.NewRows([]string{"create_tenant_and_join"}).AddRow(tenantID.String()))
		mock.ExpectCommit()

		w := doJSON(engine, http.MethodPost, "/tenants", `{"name":"Acme Books"}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, tenantID.String(), decodeBody(t, w)["id"])
	})

	t.Run("missing name answers 400", func(t *testing.T) {
		engine, _ := newTestEngine(t, userID)

		w := doJSON(engine, http.MethodPost, "/tenants", `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, validationFields(t, w), "name")
	})
}

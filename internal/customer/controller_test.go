package customer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"tenant-admin-api/internal/testhelpers"

	"github.com/gin-gonic/gin"
)

type mockCustomerService struct {
	CustomerServiceAPI
	getAllFn func(ctx context.Context) ([]Customer, error)
}

func (m *mockCustomerService) GetAllCustomers(ctx context.Context) ([]Customer, error) {
	return m.getAllFn(ctx)
}

func setupCustomerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &CustomerService{DB: newTestDB(t)}, testhelpers.Verifier(), nil)
	return r
}

func decodeCustomer(t *testing.T, body []byte) Customer {
	t.Helper()
	var c Customer
	if err := json.Unmarshal(body, &c); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, body)
	}
	return c
}

const acmeBody = `{"name":"Acme","email":"ops@acme.test","timezone":"UTC"}`

func TestCustomerRoutes_RequireToken(t *testing.T) {
	r := setupCustomerRouter(t)

	w := testhelpers.Do(r, http.MethodGet, "/customers", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCustomerRoutes_AdminCRUD(t *testing.T) {
	r := setupCustomerRouter(t)
	admin := testhelpers.Token(t, "admin")

	w := testhelpers.Do(r, http.MethodPost, "/customers", admin, []byte(acmeBody))
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	created := decodeCustomer(t, w.Body.Bytes())
	path := "/customers/" + strconv.Itoa(created.ID)

	w = testhelpers.Do(r, http.MethodGet, path, admin, nil)
	if w.Code != http.StatusOK || decodeCustomer(t, w.Body.Bytes()).Email != "ops@acme.test" {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}

	w = testhelpers.Do(r, http.MethodPut, path, admin, []byte(`{"name":"Acme 2","email":"new@acme.test","timezone":"Asia/Tokyo"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if got := decodeCustomer(t, w.Body.Bytes()); got.Name != "Acme 2" || got.Timezone != "Asia/Tokyo" {
		t.Fatalf("unexpected update: %+v", got)
	}

	w = testhelpers.Do(r, http.MethodDelete, path, admin, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Customer deleted successfully") {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = testhelpers.Do(r, http.MethodGet, path, admin, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCustomerRoutes_ViewerCanReadButNotWrite(t *testing.T) {
	r := setupCustomerRouter(t)
	admin := testhelpers.Token(t, "admin")
	viewer := testhelpers.Token(t, "viewer")

	testhelpers.Do(r, http.MethodPost, "/customers", admin, []byte(acmeBody))

	w := testhelpers.Do(r, http.MethodGet, "/customers", viewer, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []Customer
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(list))
	}

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/customers", acmeBody},
		{http.MethodPut, "/customers/1", acmeBody},
		{http.MethodDelete, "/customers/1", ""},
	} {
		var body []byte
		if tc.body != "" {
			body = []byte(tc.body)
		}
		w := testhelpers.Do(r, tc.method, tc.path, viewer, body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestCustomerRoutes_UpdateMissing_404(t *testing.T) {
	r := setupCustomerRouter(t)

	w := testhelpers.Do(r, http.MethodPut, "/customers/999", testhelpers.Token(t, "admin"), []byte(acmeBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Customer not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCustomerRoutes_Validation_400(t *testing.T) {
	r := setupCustomerRouter(t)
	admin := testhelpers.Token(t, "admin")

	bodies := []string{
		`{"name":"Acme","email":"not-an-email","timezone":"UTC"}`,
		`{"email":"ops@acme.test","timezone":"UTC"}`,
		`{"name":`,
	}
	for _, b := range bodies {
		w := testhelpers.Do(r, http.MethodPost, "/customers", admin, []byte(b))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", b, w.Code)
		}
	}

	w := testhelpers.Do(r, http.MethodGet, "/customers/abc", admin, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id: expected 400, got %d", w.Code)
	}
}

func TestCustomerRoutes_DuplicateEmail_409(t *testing.T) {
	r := setupCustomerRouter(t)
	admin := testhelpers.Token(t, "admin")

	testhelpers.Do(r, http.MethodPost, "/customers", admin, []byte(acmeBody))
	w := testhelpers.Do(r, http.MethodPost, "/customers", admin, []byte(acmeBody))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCustomerController_ServiceError_500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &mockCustomerService{
		getAllFn: func(ctx context.Context) ([]Customer, error) { return nil, errors.New("db down") },
	}, testhelpers.Verifier(), nil)

	w := testhelpers.Do(r, http.MethodGet, "/customers", testhelpers.Token(t, "viewer"), nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
}

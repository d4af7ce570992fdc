package rest

import (
	"context"
	"customerHub/domain"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type fakeCustomerService struct {
	customers []domain.Customer
	stats     domain.CustomerStats
	createErr error
	updateErr error
	deleteErr error
	listErr   error
	statsErr  error

	gotUpdate domain.CustomerUpdate
	gotID     uint
}

func (f *fakeCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.customers, nil
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (domain.Customer, error) {
	if f.createErr != nil {
		return domain.Customer{}, f.createErr
	}
	customer.ID = 1
	customer.JoinDate = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if customer.Status == "" {
		customer.Status = "active"
	}
	return *customer, nil
}

func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, id uint, update domain.CustomerUpdate) (domain.Customer, error) {
	f.gotID = id
	f.gotUpdate = update
	if f.updateErr != nil {
		return domain.Customer{}, f.updateErr
	}
	return domain.Customer{ID: id, Name: "Updated"}, nil
}

func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	f.gotID = id
	return f.deleteErr
}

func (f *fakeCustomerService) GetStats(ctx context.Context) (domain.CustomerStats, error) {
	if f.statsErr != nil {
		return domain.CustomerStats{}, f.statsErr
	}
	return f.stats, nil
}

func newRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestListCustomers_BareArray(t *testing.T) {
	svc := &fakeCustomerService{customers: []domain.Customer{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Status: "active"},
	}}
	h := NewCustomerHandler(svc)

	c, rec := newRequest(t, http.MethodGet, "/api/customers", "")
	if err := h.ListCustomers(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
		t.Errorf("list must be a bare JSON array, got %s", rec.Body.String())
	}

	var got []domain.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Name != "John Doe" {
		t.Errorf("body = %+v", got)
	}
}

func TestListCustomers_EmptyArray(t *testing.T) {
	svc := &fakeCustomerService{customers: []domain.Customer{}}
	h := NewCustomerHandler(svc)

	c, rec := newRequest(t, http.MethodGet, "/api/customers", "")
	if err := h.ListCustomers(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestCreateCustomer_Created(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{})

	c, rec := newRequest(t, http.MethodPost, "/api/customers",
		`{"name":"John Doe","email":"john@example.com"}`)
	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "name", "email", "status", "totalOrders", "totalSpent", "joinDate"} {
		if _, ok := got[key]; !ok {
			t.Errorf("wire object missing %q key: %v", key, got)
		}
	}
	if got["status"] != "active" {
		t.Errorf("status = %v, want active", got["status"])
	}
}

func TestCreateCustomer_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{"email":"john@example.com"}`,
		`{"name":"John Doe"}`,
		`{"name":"","email":""}`,
	} {
		h := NewCustomerHandler(&fakeCustomerService{})

		c, rec := newRequest(t, http.MethodPost, "/api/customers", body)
		if err := h.CreateCustomer(c); err != nil {
			t.Fatalf("handler: %v", err)
		}

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400 for %s", rec.Code, body)
		}
		want := `{"error":"Name and email are required"}`
		if strings.TrimSpace(rec.Body.String()) != want {
			t.Errorf("body = %q, want %q", rec.Body.String(), want)
		}
	}
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{createErr: domain.ErrEmailExists})

	c, rec := newRequest(t, http.MethodPost, "/api/customers",
		`{"name":"John Doe","email":"john@example.com"}`)
	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	want := `{"error":"Email already exists"}`
	if strings.TrimSpace(rec.Body.String()) != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestCreateCustomer_StoreError(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{createErr: errors.New("database is locked")})

	c, rec := newRequest(t, http.MethodPost, "/api/customers",
		`{"name":"John Doe","email":"john@example.com"}`)
	if err := h.CreateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestUpdateCustomer_PartialPayloadForwarded(t *testing.T) {
	svc := &fakeCustomerService{}
	h := NewCustomerHandler(svc)

	c, rec := newRequest(t, http.MethodPut, "/api/customers/7", `{"status":"inactive","totalOrders":0}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.UpdateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotID != 7 {
		t.Errorf("id = %d, want 7", svc.gotID)
	}
	if svc.gotUpdate.Status == nil || *svc.gotUpdate.Status != "inactive" {
		t.Error("status not forwarded")
	}
	if svc.gotUpdate.TotalOrders == nil || *svc.gotUpdate.TotalOrders != 0 {
		t.Error("explicit zero totalOrders not forwarded")
	}
	if svc.gotUpdate.Name != nil || svc.gotUpdate.Email != nil || svc.gotUpdate.TotalSpent != nil {
		t.Errorf("omitted fields must stay nil: %+v", svc.gotUpdate)
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{updateErr: domain.ErrCustomerNotFound})

	c, rec := newRequest(t, http.MethodPut, "/api/customers/42", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.UpdateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateCustomer_InvalidID(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{})

	c, rec := newRequest(t, http.MethodPut, "/api/customers/abc", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.UpdateCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteCustomer_NoContent(t *testing.T) {
	svc := &fakeCustomerService{}
	h := NewCustomerHandler(svc)

	c, rec := newRequest(t, http.MethodDelete, "/api/customers/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.DeleteCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if svc.gotID != 3 {
		t.Errorf("id = %d, want 3", svc.gotID)
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{deleteErr: domain.ErrCustomerNotFound})

	c, rec := newRequest(t, http.MethodDelete, "/api/customers/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.DeleteCustomer(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetStats(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{stats: domain.CustomerStats{
		TotalCustomers:  5,
		ActiveCustomers: 3,
		TotalRevenue:    8751.50,
		AvgOrderValue:   182.32,
	}})

	c, rec := newRequest(t, http.MethodGet, "/api/stats", "")
	if err := h.GetStats(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["totalCustomers"] != 5 || got["activeCustomers"] != 3 ||
		got["totalRevenue"] != 8751.50 || got["avgOrderValue"] != 182.32 {
		t.Errorf("stats body = %v", got)
	}
}

func TestGetStats_StoreError(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{statsErr: errors.New("no such table: customers")})

	c, rec := newRequest(t, http.MethodGet, "/api/stats", "")
	if err := h.GetStats(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	h := NewCustomerHandler(&fakeCustomerService{})

	c, rec := newRequest(t, http.MethodGet, "/api/health", "")
	if err := h.HealthCheck(c); err != nil {
		t.Fatalf("handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["status"] != "healthy" || got["message"] != "API is running" {
		t.Errorf("body = %v", got)
	}
}

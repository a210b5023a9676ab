package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	previewFn                func(ctx context.Context, employeeID string, year, month int) (payroll.ComputationResponse, error)
	previewAllFn             func(ctx context.Context, year, month int) (payroll.BatchPreviewResponse, error)
	generateFn               func(ctx context.Context, req payroll.GenerateRequest, generatedBy string) (payroll.GenerateResponse, error)
	getSnapshotFn            func(ctx context.Context, employeeID string, year, month int) (payroll.SnapshotResponse, error)
	getSnapshotsByPeriodFn   func(ctx context.Context, year, month int) ([]payroll.SnapshotResponse, error)
	getSnapshotsByEmployeeFn func(ctx context.Context, employeeID string, year int) ([]payroll.SnapshotResponse, error)
	exportPeriodCSVFn        func(ctx context.Context, year, month int) ([]byte, error)
	payslipFn                func(ctx context.Context, employeeID string, year, month int) ([]byte, error)
}

func (f *fakePayrollService) Preview(ctx context.Context, employeeID string, year, month int) (payroll.ComputationResponse, error) {
	return f.previewFn(ctx, employeeID, year, month)
}

func (f *fakePayrollService) PreviewAll(ctx context.Context, year, month int) (payroll.BatchPreviewResponse, error) {
	return f.previewAllFn(ctx, year, month)
}

func (f *fakePayrollService) Generate(ctx context.Context, req payroll.GenerateRequest, generatedBy string) (payroll.GenerateResponse, error) {
	return f.generateFn(ctx, req, generatedBy)
}

func (f *fakePayrollService) GetSnapshot(ctx context.Context, employeeID string, year, month int) (payroll.SnapshotResponse, error) {
	return f.getSnapshotFn(ctx, employeeID, year, month)
}

func (f *fakePayrollService) GetSnapshotsByPeriod(ctx context.Context, year, month int) ([]payroll.SnapshotResponse, error) {
	return f.getSnapshotsByPeriodFn(ctx, year, month)
}

func (f *fakePayrollService) GetSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]payroll.SnapshotResponse, error) {
	return f.getSnapshotsByEmployeeFn(ctx, employeeID, year)
}

func (f *fakePayrollService) ExportPeriodCSV(ctx context.Context, year, month int) ([]byte, error) {
	return f.exportPeriodCSVFn(ctx, year, month)
}

func (f *fakePayrollService) Payslip(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	return f.payslipFn(ctx, employeeID, year, month)
}

func TestPayrollHandler_Preview(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, id string, year, month int) (payroll.ComputationResponse, error) {
			assert.Equal(t, employeeID, id)
			assert.Equal(t, 2026, year)
			assert.Equal(t, 7, month)
			return payroll.ComputationResponse{EmployeeID: id, GrossPay: "56500.00"}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/preview/"+employeeID+"?year=2026&month=7", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: employeeID}}

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Preview_InvalidMonth(t *testing.T) {
	svc := &fakePayrollService{}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/preview/abc?year=2026&month=13", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "abc"}}

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestPayrollHandler_Preview_BusinessRuleViolation(t *testing.T) {
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, id string, year, month int) (payroll.ComputationResponse, error) {
			return payroll.ComputationResponse{}, payrollerrors.ErrNoServiceBracket
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/preview/abc?year=2026&month=7", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "abc"}}

	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", env.Error.Code)
}

func TestPayrollHandler_Preview_NoSalaryHistory(t *testing.T) {
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, id string, year, month int) (payroll.ComputationResponse, error) {
			return payroll.ComputationResponse{}, payrollerrors.ErrNoSalaryHistory
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/preview/abc?year=2026&month=7", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "abc"}}

	h.Preview(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPayrollHandler_Generate(t *testing.T) {
	actorID := uuid.New().String()

	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, req payroll.GenerateRequest, generatedBy string) (payroll.GenerateResponse, error) {
			assert.Equal(t, 2026, req.Year)
			assert.Equal(t, 2, req.Month)
			assert.Equal(t, actorID, generatedBy)
			return payroll.GenerateResponse{Year: req.Year, Month: req.Month, Total: 3, Succeeded: 3, Success: true}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{"year":2026,"month":2}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("employee_id", actorID)

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestPayrollHandler_Generate_InvalidBody(t *testing.T) {
	svc := &fakePayrollService{}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{"year":2026}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_ExportCSV(t *testing.T) {
	svc := &fakePayrollService{
		exportPeriodCSVFn: func(ctx context.Context, year, month int) ([]byte, error) {
			return []byte("employee_number,employee_name\n"), nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/export?year=2026&month=2", nil)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payroll-2026-02.csv")
}

func TestPayrollHandler_Payslip_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		payslipFn: func(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
			return nil, payrollerrors.ErrSnapshotNotFound
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/snapshots/employee/abc/payslip?year=2026&month=2", nil)
	c.Params = gin.Params{{Key: "employeeId", Value: "abc"}}

	h.Payslip(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

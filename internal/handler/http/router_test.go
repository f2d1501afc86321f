package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
	"github.com/kerjahub/attendance-backend-go/internal/domain/auth"
	"github.com/kerjahub/attendance-backend-go/internal/domain/gate"
	"github.com/kerjahub/attendance-backend-go/internal/domain/report"
	"github.com/kerjahub/attendance-backend-go/internal/domain/site"
	"github.com/kerjahub/attendance-backend-go/internal/domain/user"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/jwt"
	sitesvc "github.com/kerjahub/attendance-backend-go/internal/service/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	routerTestSecret     = "test-secret-key-for-jwt"
	routerTestAccessExp  = "1h"
	routerTestRefreshExp = "24h"
)

type stubAttendanceService struct {
	attendance.Service
}

func (s *stubAttendanceService) GetHistory(context.Context, string) ([]attendance.HistoryEntry, error) {
	return []attendance.HistoryEntry{{Date: "2025-03-03", CheckIn: "09:00"}}, nil
}

func (s *stubAttendanceService) ListAttendance(context.Context, attendance.ListFilter) ([]attendance.RecordResponse, error) {
	return []attendance.RecordResponse{{DocID: "u1_2025-03-03"}}, nil
}

type stubGateService struct {
	gate.Service
}

func (s *stubGateService) FaceCheckIn(_ context.Context, userID string, _ gate.CheckRequest) (attendance.CheckResult, error) {
	return attendance.CheckResult{DocID: userID + "_2025-03-10"}, nil
}

type stubAuthService struct {
	auth.Service
}

type stubSiteService struct {
	sitesvc.Service
}

func (s *stubSiteService) Get(context.Context) (*site.LocationResponse, error) {
	return nil, nil
}

type stubReportService struct {
	report.Service
}

func newTestRouter() (http.Handler, jwt.Service) {
	jwtService := jwt.NewJWTService(routerTestSecret, routerTestAccessExp, routerTestRefreshExp)
	authHandler := NewAuthHandler(jwtService, &stubAuthService{})
	attendanceHandler := NewAttendanceHandler(&stubGateService{}, &stubAttendanceService{})
	adminHandler := NewAdminHandler(&stubAttendanceService{}, &stubSiteService{}, &stubReportService{})
	return NewRouter(jwtService, authHandler, attendanceHandler, adminHandler), jwtService
}

func bearerRequest(t *testing.T, jwtService jwt.Service, method, target string, role user.Role, body []byte) *http.Request {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("u1", "alice@example.com", role)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRouter_Unauthenticated(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_History_Authenticated(t *testing.T) {
	router, jwtService := newTestRouter()

	req := bearerRequest(t, jwtService, http.MethodGet, "/api/v1/attendance/history", user.RoleEmployee, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
}

func TestRouter_CheckIn(t *testing.T) {
	router, jwtService := newTestRouter()

	body := []byte(`{"embedding":[1,0,0],"latitude":0,"longitude":0}`)
	req := bearerRequest(t, jwtService, http.MethodPost, "/api/v1/attendance/check-in", user.RoleEmployee, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "u1_2025-03-10")
}

func TestRouter_AdminEndpoint_RejectsEmployee(t *testing.T) {
	router, jwtService := newTestRouter()

	req := bearerRequest(t, jwtService, http.MethodGet, "/api/v1/admin/attendance/", user.RoleEmployee, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AdminEndpoint_AllowsAdmin(t *testing.T) {
	router, jwtService := newTestRouter()

	req := bearerRequest(t, jwtService, http.MethodGet, "/api/v1/admin/attendance/", user.RoleAdmin, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminSite_Unconfigured(t *testing.T) {
	router, jwtService := newTestRouter()

	req := bearerRequest(t, jwtService, http.MethodGet, "/api/v1/admin/site/", user.RoleAdmin, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_RefreshTokenRejectedAsAccess(t *testing.T) {
	router, jwtService := newTestRouter()

	refreshToken, _, err := jwtService.GenerateRefreshToken("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/history", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

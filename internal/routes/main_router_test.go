package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/customvalidator"
	"inventory-system/pkg/session"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
	"inventory-system/seeders"
)

const testCookieName = "session_id"

// RouterTestSuite runs the whole HTTP surface against the in-memory
// storage and session backends, so no external services are needed.
type RouterTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Storage *repositories.Storage

	// Seeded fixtures, recreated before every test.
	RadiologyID  int64
	CardiologyID int64
	RadEquipID   int64
	CardEquipID  int64
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	e := echo.New()
	logger := zap.NewNop()
	storage := repositories.NewMemoryStorage()
	sessions := session.NewMemoryStore(time.Hour)

	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))

	cfg := &config.Config{
		Session: config.SessionConfig{
			Store:      "memory",
			CookieName: testCookieName,
			TTL:        time.Hour,
		},
	}

	ctx := context.Background()
	s.Require().NoError(seeders.EnsureDefaultAdmin(ctx, storage, logger))

	radiology, err := storage.Departments.CreateDepartment(ctx, dto.CreateDepartmentDTO{Name: "Radiology", Code: "RAD"})
	s.Require().NoError(err)
	cardiology, err := storage.Departments.CreateDepartment(ctx, dto.CreateDepartmentDTO{Name: "Cardiology", Code: "CARD"})
	s.Require().NoError(err)

	_, err = storage.Users.CreateUser(ctx, dto.CreateUserDTO{
		Username:     "nurse",
		Password:     "nurse123",
		FullName:     "Nina Nurse",
		Role:         constants.RoleUser,
		DepartmentID: null.Int64From(radiology.ID),
	})
	s.Require().NoError(err)

	radEquip, err := storage.Equipment.CreateEquipment(ctx, s.equipmentDTO("EQ-100", null.Int64From(radiology.ID)))
	s.Require().NoError(err)
	cardEquip, err := storage.Equipment.CreateEquipment(ctx, s.equipmentDTO("EQ-200", null.Int64From(cardiology.ID)))
	s.Require().NoError(err)

	InitRouter(e, storage, sessions, utils.NewValidator(v), logger, cfg)

	s.Echo = e
	s.Storage = storage
	s.RadiologyID = radiology.ID
	s.CardiologyID = cardiology.ID
	s.RadEquipID = radEquip.ID
	s.CardEquipID = cardEquip.ID
}

func (s *RouterTestSuite) equipmentDTO(code string, departmentID null.Int64) dto.CreateEquipmentDTO {
	return dto.CreateEquipmentDTO{
		EquipmentID:     code,
		EquipmentName:   "Ultrasound Scanner",
		EquipmentType:   "Diagnostic",
		Model:           "Voluson E10",
		SerialNumber:    "SN-" + code,
		CountryOfOrigin: "Austria",
		Manufacturer:    "GE Healthcare",
		UnitPrice:       types.Decimal("45000.00"),
		VAT:             types.Decimal("20"),
		FundingSource:   "State budget",
		Supplier:        "MedSupply LLC",
		Status:          constants.EquipmentStatusActive,
		PurchaseDate:    "2024-03-15",
		WarrantyExpiry:  "2027-03-15",
		DepartmentID:    departmentID,
	}
}

func (s *RouterTestSuite) request(method, path string, body io.Reader, contentType string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) jsonRequest(method, path string, payload interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(data)
	}
	return s.request(method, path, body, echo.MIMEApplicationJSON, cookie)
}

func (s *RouterTestSuite) login(username, password string) *http.Cookie {
	rec := s.jsonRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, "login for %s should succeed: %s", username, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookieName && cookie.Value != "" {
			return cookie
		}
	}
	s.FailNow("login response carried no session cookie")
	return nil
}

func (s *RouterTestSuite) decodeBody(rec *httptest.ResponseRecorder, out interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *RouterTestSuite) TestLogin() {
	rec := s.jsonRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin", "password": "admin123"}, nil)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.decodeBody(rec, &body)
	s.Equal("admin", body["role"])
	s.NotContains(rec.Body.String(), "admin123", "password must never appear in a response")
}

func (s *RouterTestSuite) TestLoginWrongPassword() {
	rec := s.jsonRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "admin", "password": "wrong"}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestMeRequiresSession() {
	rec := s.jsonRequest(http.MethodGet, "/api/auth/me", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	cookie := s.login("admin", "admin123")
	rec = s.jsonRequest(http.MethodGet, "/api/auth/me", nil, cookie)
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.decodeBody(rec, &body)
	s.Equal("admin", body["username"])
}

func (s *RouterTestSuite) TestLogoutInvalidatesSession() {
	cookie := s.login("admin", "admin123")

	rec := s.jsonRequest(http.MethodPost, "/api/auth/logout", nil, cookie)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success": true}`, rec.Body.String())

	rec = s.jsonRequest(http.MethodGet, "/api/auth/me", nil, cookie)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestUserListAuthorization() {
	rec := s.jsonRequest(http.MethodGet, "/api/users", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	nurse := s.login("nurse", "nurse123")
	rec = s.jsonRequest(http.MethodGet, "/api/users", nil, nurse)
	s.Equal(http.StatusForbidden, rec.Code)

	admin := s.login("admin", "admin123")
	rec = s.jsonRequest(http.MethodGet, "/api/users", nil, admin)
	s.Equal(http.StatusOK, rec.Code)

	var users []map[string]interface{}
	s.decodeBody(rec, &users)
	s.Len(users, 2)
}

func (s *RouterTestSuite) TestEquipmentRowFiltering() {
	admin := s.login("admin", "admin123")
	rec := s.jsonRequest(http.MethodGet, "/api/equipment", nil, admin)
	s.Equal(http.StatusOK, rec.Code)
	var all []map[string]interface{}
	s.decodeBody(rec, &all)
	s.Len(all, 2)

	nurse := s.login("nurse", "nurse123")
	rec = s.jsonRequest(http.MethodGet, "/api/equipment", nil, nurse)
	s.Equal(http.StatusOK, rec.Code)
	var visible []map[string]interface{}
	s.decodeBody(rec, &visible)
	s.Require().Len(visible, 1)
	s.Equal("EQ-100", visible[0]["equipmentId"])
}

func (s *RouterTestSuite) TestEquipmentByIDForeignDepartment() {
	nurse := s.login("nurse", "nurse123")

	rec := s.jsonRequest(http.MethodGet, "/api/equipment/"+itoa(s.RadEquipID), nil, nurse)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.jsonRequest(http.MethodGet, "/api/equipment/"+itoa(s.CardEquipID), nil, nurse)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterTestSuite) TestEquipmentCreateAuthorization() {
	payload := s.equipmentDTO("EQ-300", null.Int64From(s.RadiologyID))

	nurse := s.login("nurse", "nurse123")
	rec := s.jsonRequest(http.MethodPost, "/api/equipment", payload, nurse)
	s.Equal(http.StatusForbidden, rec.Code)

	admin := s.login("admin", "admin123")
	rec = s.jsonRequest(http.MethodPost, "/api/equipment", payload, admin)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	// Same inventory code again must be rejected.
	rec = s.jsonRequest(http.MethodPost, "/api/equipment", payload, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestEquipmentCreateDanglingDepartment() {
	admin := s.login("admin", "admin123")
	payload := s.equipmentDTO("EQ-300", null.Int64From(999))
	rec := s.jsonRequest(http.MethodPost, "/api/equipment", payload, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestEquipmentCreateValidation() {
	admin := s.login("admin", "admin123")
	payload := s.equipmentDTO("EQ-300", null.Int64From(s.RadiologyID))
	payload.VAT = types.Decimal("150")
	rec := s.jsonRequest(http.MethodPost, "/api/equipment", payload, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestEquipmentPartialUpdate() {
	admin := s.login("admin", "admin123")

	rec := s.jsonRequest(http.MethodPatch, "/api/equipment/"+itoa(s.RadEquipID),
		map[string]string{"equipmentName": "MRI Scanner"}, admin)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	s.decodeBody(rec, &body)
	s.Equal("MRI Scanner", body["equipmentName"])
	s.Equal("45000.00", body["unitPrice"], "untouched fields keep their values")
}

func (s *RouterTestSuite) TestEquipmentUpdateInvalidID() {
	admin := s.login("admin", "admin123")
	rec := s.jsonRequest(http.MethodPatch, "/api/equipment/abc",
		map[string]string{"equipmentName": "X"}, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestMaintenanceFlow() {
	admin := s.login("admin", "admin123")

	rec := s.jsonRequest(http.MethodPost, "/api/maintenance", map[string]interface{}{
		"equipmentId":     s.RadEquipID,
		"startDate":       "2025-01-10",
		"endDate":         "2025-01-12",
		"maintenanceType": "Preventive",
		"performedBy":     "TechCorp",
	}, admin)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var record map[string]interface{}
	s.decodeBody(rec, &record)
	s.Equal("Pending", record["status"])

	rec = s.jsonRequest(http.MethodGet, "/api/equipment/"+itoa(s.RadEquipID), nil, admin)
	s.Equal(http.StatusOK, rec.Code)
	var equip map[string]interface{}
	s.decodeBody(rec, &equip)
	s.Equal(constants.EquipmentStatusPendingMaintenance, equip["status"])

	rec = s.jsonRequest(http.MethodGet, "/api/equipment/"+itoa(s.RadEquipID)+"/maintenance", nil, admin)
	s.Equal(http.StatusOK, rec.Code)
	var history []map[string]interface{}
	s.decodeBody(rec, &history)
	s.Len(history, 1)
}

func (s *RouterTestSuite) TestMaintenanceUnknownEquipment() {
	admin := s.login("admin", "admin123")
	rec := s.jsonRequest(http.MethodPost, "/api/maintenance", map[string]interface{}{
		"equipmentId":     999,
		"startDate":       "2025-01-10",
		"endDate":         "2025-01-12",
		"maintenanceType": "Preventive",
		"performedBy":     "TechCorp",
	}, admin)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestDepartmentEndpoints() {
	rec := s.jsonRequest(http.MethodGet, "/api/departments", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	nurse := s.login("nurse", "nurse123")
	rec = s.jsonRequest(http.MethodGet, "/api/departments", nil, nurse)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.jsonRequest(http.MethodPost, "/api/departments",
		map[string]string{"name": "Oncology", "code": "ONC"}, nurse)
	s.Equal(http.StatusForbidden, rec.Code)

	admin := s.login("admin", "admin123")
	rec = s.jsonRequest(http.MethodPost, "/api/departments",
		map[string]string{"name": "Oncology", "code": "ONC"}, admin)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.jsonRequest(http.MethodPost, "/api/departments",
		map[string]string{"name": "Oncology Two", "code": "ONC"}, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestUserCreateAndResetPassword() {
	admin := s.login("admin", "admin123")

	rec := s.jsonRequest(http.MethodPost, "/api/users", map[string]interface{}{
		"username":     "manager1",
		"password":     "manage123",
		"fullName":     "Mila Manager",
		"role":         "manager",
		"departmentId": s.RadiologyID,
	}, admin)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var created map[string]interface{}
	s.decodeBody(rec, &created)
	id := itoa(int64(created["id"].(float64)))

	rec = s.jsonRequest(http.MethodPost, "/api/users/"+id+"/reset-password",
		map[string]string{"password": "rotated1"}, admin)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.jsonRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"username": "manager1", "password": "manage123"}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.login("manager1", "rotated1")
}

func (s *RouterTestSuite) TestDuplicateUsername() {
	admin := s.login("admin", "admin123")
	rec := s.jsonRequest(http.MethodPost, "/api/users", map[string]interface{}{
		"username": "nurse",
		"password": "other123",
		"fullName": "Another Nurse",
		"role":     "user",
	}, admin)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestEquipmentImportEndpoint() {
	admin := s.login("admin", "admin123")

	csvData := strings.Join([]string{
		"equipment_id,equipment_name,equipment_type,model,serial_number,country_of_origin,manufacturer,unit_price,vat,funding_source,supplier,status,purchase_date,warranty_expiry,department_id",
		"EQ-500,Ventilator,Life support,PB980,SN-500,USA,Medtronic,30000.00,20,Grant,MedSupply LLC,Active,2024-05-01,2026-05-01,",
		"EQ-501,Ventilator,Life support,PB980,SN-501,USA,Medtronic,30000.00,150,Grant,MedSupply LLC,Active,2024-05-01,2026-05-01,",
	}, "\n")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "upload.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(csvData))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	rec := s.request(http.MethodPost, "/api/equipment/import", &body, writer.FormDataContentType(), admin)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var result dto.ImportResultDTO
	s.decodeBody(rec, &result)
	s.True(result.Success)
	s.Equal(2, result.Total)
	s.Equal(1, result.Imported)
	s.Equal(1, result.Failed)
	s.Require().Len(result.Errors, 1)
	s.Equal(2, result.Errors[0].Row)
}

func (s *RouterTestSuite) TestTemplateDownloads() {
	for _, path := range []string{"/template.csv", "/template.xlsx", "/user-template.csv", "/user-template.xlsx"} {
		rec := s.request(http.MethodGet, path, nil, "", nil)
		s.Equal(http.StatusOK, rec.Code, path)
		s.NotZero(rec.Body.Len(), path)
		s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

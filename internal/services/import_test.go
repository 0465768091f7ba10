package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/customvalidator"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

func newTestValidator(t *testing.T) *utils.Validator {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	return utils.NewValidator(v)
}

const equipmentCSVHeader = "equipment_id,equipment_name,equipment_type,model,serial_number," +
	"country_of_origin,manufacturer,unit_price,vat,funding_source,supplier,status," +
	"purchase_date,warranty_expiry,department_id"

func equipmentCSVRow(code, vat string) string {
	return code + ",Ultrasound Scanner,Diagnostic,Voluson E10,SN-" + code +
		",Austria,GE Healthcare,45000.00," + vat + ",State budget,MedSupply LLC,Active,2024-03-15,2027-03-15,"
}

func TestEquipmentImportPartialSuccess(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	svc := NewEquipmentImportService(storage.Equipment, newTestValidator(t), zap.NewNop())

	// Row 2 carries an impossible vat percentage and must fail alone.
	csvData := strings.Join([]string{
		equipmentCSVHeader,
		equipmentCSVRow("EQ-001", "20"),
		equipmentCSVRow("EQ-002", "150"),
		equipmentCSVRow("EQ-003", "0"),
	}, "\n")

	result, err := svc.Import(context.Background(), "upload.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)

	stored, err := storage.Equipment.GetEquipment(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestEquipmentImportDuplicateCode(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	svc := NewEquipmentImportService(storage.Equipment, newTestValidator(t), zap.NewNop())

	csvData := strings.Join([]string{
		equipmentCSVHeader,
		equipmentCSVRow("EQ-001", "20"),
		equipmentCSVRow("EQ-001", "20"),
	}, "\n")

	result, err := svc.Import(context.Background(), "upload.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
}

func TestEquipmentImportXLSX(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	svc := NewEquipmentImportService(storage.Equipment, newTestValidator(t), zap.NewNop())

	workbook := excelize.NewFile()
	header := strings.Split(equipmentCSVHeader, ",")
	require.NoError(t, workbook.SetSheetRow("Sheet1", "A1", &header))
	row := strings.Split(equipmentCSVRow("EQ-010", "20"), ",")
	require.NoError(t, workbook.SetSheetRow("Sheet1", "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))
	require.NoError(t, workbook.Close())

	result, err := svc.Import(context.Background(), "upload.xlsx", &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Failed)
}

func TestEquipmentImportRejectsUnknownExtension(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	svc := NewEquipmentImportService(storage.Equipment, newTestValidator(t), zap.NewNop())

	_, err := svc.Import(context.Background(), "upload.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestUserImportChecksDepartment(t *testing.T) {
	storage := repositories.NewMemoryStorage()
	_, err := storage.Departments.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{Name: "Radiology", Code: "RAD"})
	require.NoError(t, err)

	svc := NewUserImportService(storage.Users, storage.Departments, newTestValidator(t), zap.NewNop())

	csvData := strings.Join([]string{
		"username,password,full_name,role,department_id",
		"jdoe,changeme,John Doe,user,1",
		"nurse1,changeme,Jane Roe,user,42",
		"jdoe,changeme,John Clone,user,",
	}, "\n")

	result, err := svc.Import(context.Background(), "users.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Row) // dangling department
	assert.Equal(t, 3, result.Errors[1].Row) // duplicate username
}

func TestTemplateServiceOutputs(t *testing.T) {
	svc := NewTemplateService()

	csvData, err := svc.EquipmentCSV()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, equipmentCSVHeader, lines[0])

	xlsxData, err := svc.EquipmentXLSX()
	require.NoError(t, err)
	workbook, err := excelize.OpenReader(bytes.NewReader(xlsxData))
	require.NoError(t, err)
	defer workbook.Close()
	rows, err := workbook.GetRows("Equipment")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "equipment_id", rows[0][0])

	userCSV, err := svc.UserCSV()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(userCSV), "username,password,full_name,role,department_id"))
}

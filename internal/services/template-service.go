package services

import (
	"bytes"
	"encoding/csv"

	"github.com/xuri/excelize/v2"
)

var equipmentTemplateHeader = []string{
	"equipment_id", "equipment_name", "equipment_type", "model", "serial_number",
	"country_of_origin", "manufacturer", "unit_price", "vat", "funding_source",
	"supplier", "status", "purchase_date", "warranty_expiry", "department_id",
}

var equipmentTemplateSample = []string{
	"EQ-001", "Ultrasound Scanner", "Diagnostic", "Voluson E10", "SN-483291",
	"Austria", "GE Healthcare", "45000.00", "20", "State budget",
	"MedSupply LLC", "Active", "2024-03-15", "2027-03-15", "1",
}

var userTemplateHeader = []string{"username", "password", "full_name", "role", "department_id"}

var userTemplateSample = []string{"jdoe", "changeme", "John Doe", "user", "1"}

// TemplateService produces the downloadable import templates: a header row
// plus one sample row showing the expected formats.
type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

func writeCSVTemplate(header, sample []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.Write(sample); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSXTemplate(sheet string, header, sample []string) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	for i, rowCells := range [][]string{header, sample} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetSheetRow(sheet, cell, &rowCells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *TemplateService) EquipmentCSV() ([]byte, error) {
	return writeCSVTemplate(equipmentTemplateHeader, equipmentTemplateSample)
}

func (s *TemplateService) EquipmentXLSX() ([]byte, error) {
	return writeXLSXTemplate("Equipment", equipmentTemplateHeader, equipmentTemplateSample)
}

func (s *TemplateService) UserCSV() ([]byte, error) {
	return writeCSVTemplate(userTemplateHeader, userTemplateSample)
}

func (s *TemplateService) UserXLSX() ([]byte, error) {
	return writeXLSXTemplate("Users", userTemplateHeader, userTemplateSample)
}

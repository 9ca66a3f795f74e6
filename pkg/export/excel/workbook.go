package excel

import (
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetComplianceData  = "Compliance Data"
	sheetPrioritySummary = "Priority Summary"
	sheetSafe            = "safe"
	sheetUnsafe          = "unsafe"
	sheetTable           = "table"
	sheetTableSafe       = "table_safe"
	sheetExperiment      = "experiment"
)

var enrichedHeader = []interface{}{
	"title", "control_title", "control_description", "status", "region",
	"account_id", "resource", "reason", "priority",
	"Recommendation Steps/Approach", "risk_score",
}

var rawHeader = []interface{}{
	"title", "control_title", "control_description", "status", "region",
	"account_id", "resource", "reason", "priority", "is_open_issue",
}

var categoryHeader = []interface{}{
	"Sr No", "Service", "Control Title", "Description", "Open Issues", "Priority",
}

// WriteComplianceWorkbook writes the enrichment pipeline's workbook: the raw
// enriched rows plus a priority distribution sheet.
func WriteComplianceWorkbook(path string, controls []domain.EnrichedControl, counts []domain.PriorityCount) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeEnrichedSheet(f, sheetComplianceData, controls); err != nil {
		return err
	}

	if _, err := f.NewSheet(sheetPrioritySummary); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetPrioritySummary, err)
	}
	if err := f.SetSheetRow(sheetPrioritySummary, "A1", &[]interface{}{"priority", "count"}); err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheetPrioritySummary, err)
	}
	for i, c := range counts {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetPrioritySummary, cell, &[]interface{}{string(c.Priority), c.Count}); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheetPrioritySummary, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// WritePivotWorkbook writes the pivot pipeline's workbook: safe/unsafe raw
// splits, the two category summaries and the experiment fixture sheet.
func WritePivotWorkbook(
	path string,
	safe, unsafe []domain.EnrichedControl,
	table, tableSafe domain.CategorySummary,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRawSheet(f, sheetSafe, safe); err != nil {
		return err
	}
	if err := writeRawSheet(f, sheetUnsafe, unsafe); err != nil {
		return err
	}
	if err := writeCategorySheet(f, sheetTable, table); err != nil {
		return err
	}
	if err := writeCategorySheet(f, sheetTableSafe, tableSafe); err != nil {
		return err
	}
	if err := writeExperimentSheet(f); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeEnrichedSheet(f *excelize.File, sheet string, controls []domain.EnrichedControl) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &enrichedHeader); err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
	}
	for i, c := range controls {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			c.Title, c.ControlTitle, c.Description, string(c.Status), c.Region,
			c.AccountID, c.Resource, c.Reason, string(c.Priority),
			c.Recommendation, c.RiskScore,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func writeRawSheet(f *excelize.File, sheet string, controls []domain.EnrichedControl) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &rawHeader); err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
	}
	for i, c := range controls {
		openIssue := 0
		if c.Status.IsOpenIssue() {
			openIssue = 1
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			c.Title, c.ControlTitle, c.Description, string(c.Status), c.Region,
			c.AccountID, c.Resource, c.Reason, string(c.Priority), openIssue,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}
	return nil
}

func writeCategorySheet(f *excelize.File, sheet string, summary domain.CategorySummary) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &categoryHeader); err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
	}
	for i, r := range summary.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		var row []interface{}
		if r.Separator() {
			row = []interface{}{"", "", "", "", "", ""}
		} else {
			row = []interface{}{r.SrNo, r.Service, r.ControlTitle, r.Description, r.OpenIssues, string(r.Priority)}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}
	return nil
}

// writeExperimentSheet emits a small fixture dataset used for trying out
// chart formulas inside the workbook.
func writeExperimentSheet(f *excelize.File) error {
	if _, err := f.NewSheet(sheetExperiment); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetExperiment, err)
	}

	rows := [][]interface{}{
		{"title", "control_title", "control_description", "region", "account_id", "resource", "reason", "priority", "status"},
		{"Account", "AWS account should be part of AWS Organizations", "Ensure AWS account is part of Organizations", "global", "376921607482", "arn:aws::", "CapitalMindTech", 1, "ok"},
		{"ACM", "ACM certificates should not expire", "Ensure certificates are not expiring", "ap-south-1", "376921607483", "arn:aws:acm:", "CapitalMindTech", 2, "alarm"},
		{"EC2", "EC2 instances should be secured", "Ensure EC2 is secure", "us-east-1", "376921607484", "arn:aws:ec2:", "CapitalMindTech", 3, "ok"},
		{"S3", "S3 should be encrypted", "Ensure S3 is encrypted", "us-west-1", "376921607485", "arn:aws:s3:", "CapitalMindTech", 1, "alarm"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheetExperiment, cell, &r); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheetExperiment, err)
		}
	}
	return nil
}

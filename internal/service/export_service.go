package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

var (
	ErrExportNoDonations       = errors.New("there are no donations to export")
	ErrExportUnsupportedFormat = errors.New("unsupported export format")
)

// Export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

// exportColumns is the fixed ledger column order.
var exportColumns = []string{
	"Child Name", "Donor Name", "Donor Email", "Department",
	"Donation Type", "Amount", "Age", "Gender", "Gift Ideas", "Date",
}

// ExportService renders the donation ledger as a downloadable file.
type ExportService interface {
	// ExportDonations renders the ledger (optionally filtered by donation
	// type) as csv or xlsx. Returns the file content and a suggested
	// filename.
	ExportDonations(ctx context.Context, donationType, format string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportDonations ──────────────────────

func (s *exportService) ExportDonations(ctx context.Context, donationType, format string) (*bytes.Buffer, string, error) {
	if format != ExportFormatCSV && format != ExportFormatXLSX {
		return nil, "", ErrExportUnsupportedFormat
	}

	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations for export", zap.Error(err))
		return nil, "", err
	}

	if donationType != "" {
		filtered := donations[:0]
		for i := range donations {
			if donations[i].DonationType == donationType {
				filtered = append(filtered, donations[i])
			}
		}
		donations = filtered
	}

	if len(donations) == 0 {
		return nil, "", ErrExportNoDonations
	}

	scope := donationType
	if scope == "" {
		scope = "all"
	}
	filename := fmt.Sprintf("donations-%s-%s.%s", scope, time.Now().Format("2006-01-02"), format)

	var buf *bytes.Buffer
	switch format {
	case ExportFormatCSV:
		buf, err = renderCSV(donations)
	case ExportFormatXLSX:
		buf, err = renderXLSX(donations)
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.String("format", format), zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("donations exported",
		zap.String("format", format),
		zap.String("scope", scope),
		zap.Int("rows", len(donations)))

	return buf, filename, nil
}

// ── rendering ──

func renderCSV(donations []model.Donation) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for i := range donations {
		if err := w.Write(exportRow(&donations[i])); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

func renderXLSX(donations []model.Donation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Donations"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	}

	for i := range donations {
		row := exportRow(&donations[i])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// exportRow maps one donation to the fixed column order.
func exportRow(d *model.Donation) []string {
	email := "N/A"
	if d.DonorEmail != nil && *d.DonorEmail != "" {
		email = *d.DonorEmail
	}

	typeCell := "Gift"
	amountCell := "N/A"
	if d.IsCash() && d.Amount != nil {
		typeCell = fmt.Sprintf("£%.2f", *d.Amount)
		amountCell = strconv.FormatFloat(*d.Amount, 'f', 2, 64)
	}

	age, gender, ideas := "", "", ""
	if d.Child != nil {
		age = strconv.Itoa(d.Child.Age)
		gender = d.Child.Gender
		ideas = d.Child.GiftIdeas
	}

	return []string{
		d.ChildName,
		d.DonorName,
		email,
		d.DepartmentName,
		typeCell,
		amountCell,
		age,
		gender,
		ideas,
		d.CreatedAt.Format("02/01/2006"),
	}
}

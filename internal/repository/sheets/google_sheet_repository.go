package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

const (
	summaryRange   = "Simulations!A:N"
	curveRange     = "Curves!A:D"
	timestampStyle = time.RFC3339
)

// RowWriter appends rows to a spreadsheet range.
type RowWriter interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
}

// GoogleSheetRepository implements RowWriter using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed writer.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows appends the provided rows to the supplied sheet range in one call.
func (r *GoogleSheetRepository) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}
	if len(rows) == 0 {
		return nil
	}

	payload := &sheetsapi.ValueRange{Values: rows}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("rows appended to sheet", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

// Exporter writes simulation summaries and their daily curves to a spreadsheet.
type Exporter struct {
	writer RowWriter
	now    func() time.Time
}

// NewExporter wraps a RowWriter.
func NewExporter(writer RowWriter) *Exporter {
	return &Exporter{writer: writer, now: time.Now}
}

// ExportSimulation appends one summary row and one row per curve day, tagged with
// exportID so both tabs can be joined.
func (e *Exporter) ExportSimulation(ctx context.Context, exportID string, result models.SimulationResult) error {
	if err := e.writer.AppendRows(ctx, summaryRange, [][]interface{}{SummaryRow(exportID, e.now(), result)}); err != nil {
		return fmt.Errorf("export simulation summary: %w", err)
	}
	if err := e.writer.AppendRows(ctx, curveRange, CurveRows(exportID, result)); err != nil {
		return fmt.Errorf("export lactation curve: %w", err)
	}
	return nil
}

// SummaryRow lays out the headline figures of a simulation.
func SummaryRow(exportID string, at time.Time, r models.SimulationResult) []interface{} {
	return []interface{}{
		exportID,
		at.UTC().Format(timestampStyle),
		r.BreedName,
		string(r.ManagementLevel),
		r.LactationDays,
		r.AnimalsCount,
		r.PeakYield,
		r.TotalLactationLiters,
		r.FatKg,
		r.ProteinKg,
		r.SolidsKg,
		r.HerdTotals.TotalProduction,
		r.OptimizationPotential.ImprovementPercentage,
		r.CyclesPerYear,
	}
}

// CurveRows lays out the daily yields of a simulation.
func CurveRows(exportID string, r models.SimulationResult) [][]interface{} {
	rows := make([][]interface{}, 0, len(r.LactationCurve))
	for _, p := range r.LactationCurve {
		rows = append(rows, []interface{}{exportID, r.BreedKey, p.Day, p.Yield})
	}
	return rows
}

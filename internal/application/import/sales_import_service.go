package importapp

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/fruitsales/backend/internal/domain/masterdata"
	"github.com/fruitsales/backend/internal/domain/sales"
	"github.com/fruitsales/backend/internal/domain/shared"
	csvimport "github.com/fruitsales/backend/internal/infrastructure/import"
	"go.uber.org/zap"
)

// Fixed column order of the upload: fruitName,quantity,total,saleDateTime
const (
	colFruitName = iota
	colQuantity
	colTotal
	colSoldAt

	columnCount = 4
)

// Per-row error messages, displayed verbatim with a row-number prefix
const (
	msgQuantityNotNumeric = "quantity contains a non-numeric value"
	msgTotalNotNumeric    = "total contains a non-numeric value"
	msgQuantityNegative   = "quantity is negative"
	msgTotalNegative      = "total is negative"
	msgBadDateTime        = "sale datetime is not in YYYY-MM-DD HH:MM format"
	msgFruitNotFound      = "fruit not found"
	msgUnexpected         = "unexpected error"
)

// saleDateTimePattern matches the literal YYYY-MM-DD HH:MM shape; no
// seconds, no offset
var saleDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

const saleDateTimeLayout = "2006-01-02 15:04"

// Uploaded timestamps are civil time at the fixed UTC+9 offset; no DST,
// no reinterpretation of the uploader's timezone.
var jst = shared.JST

// FruitLookup resolves a fruit master record by exact name. Not-found is
// signalled as shared.ErrNotFound, a distinct condition from lookup failure.
type FruitLookup interface {
	FindByName(ctx context.Context, name string) (*masterdata.Fruit, error)
}

// SalesImportService parses an uploaded CSV payload into persistable sale
// records plus an ordered list of per-row errors. Rows are processed
// independently: a failure in one row never aborts the rest of the batch.
type SalesImportService struct {
	fruits   FruitLookup
	saleRepo sales.SaleRepository
	logger   *zap.Logger
}

// NewSalesImportService creates a new SalesImportService
func NewSalesImportService(fruits FruitLookup, saleRepo sales.SaleRepository, logger *zap.Logger) *SalesImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesImportService{
		fruits:   fruits,
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// ImportAndStore runs Import and persists the accepted rows in a single
// batch. Row errors do not prevent the valid rows from being stored.
func (s *SalesImportService) ImportAndStore(ctx context.Context, data []byte) (*ImportResultResponse, error) {
	records, rowErrors, err := s.Import(ctx, data)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 {
		if err := s.saleRepo.SaveBatch(ctx, records); err != nil {
			return nil, err
		}
	}

	return &ImportResultResponse{
		ImportedRows: len(records),
		ErrorRows:    len(rowErrors),
		Errors:       csvimport.ErrorStrings(rowErrors),
	}, nil
}

// Import validates every row of the upload and returns the persistable
// records in input order alongside the accumulated row errors. Only an
// unreadable payload (bad encoding) fails the call as a whole.
func (s *SalesImportService) Import(ctx context.Context, data []byte) ([]*sales.Sale, []csvimport.RowError, error) {
	rows, err := csvimport.ParseRows(data)
	if err != nil {
		return nil, nil, err
	}

	records := make([]*sales.Sale, 0, len(rows))
	var rowErrors []csvimport.RowError

	for _, row := range rows {
		sale, rowErr := s.importRow(ctx, row)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		records = append(records, sale)
	}

	return records, rowErrors, nil
}

// importRow runs the per-row validation pipeline. Checks run in a fixed
// order and the first failure wins; no error escapes the row boundary.
func (s *SalesImportService) importRow(ctx context.Context, row csvimport.Row) (*sales.Sale, *csvimport.RowError) {
	if row.Len() < columnCount {
		return nil, s.rowError(row.Number, msgUnexpected)
	}

	quantityField := row.Field(colQuantity)
	totalField := row.Field(colTotal)
	soldAtField := row.Field(colSoldAt)

	if !isDigits(quantityField) {
		return nil, s.rowError(row.Number, msgQuantityNotNumeric)
	}
	if !isDigits(totalField) {
		return nil, s.rowError(row.Number, msgTotalNotNumeric)
	}

	quantity, err := strconv.ParseInt(quantityField, 10, 64)
	if err != nil {
		return nil, s.rowError(row.Number, msgUnexpected)
	}
	total, err := strconv.ParseInt(totalField, 10, 64)
	if err != nil {
		return nil, s.rowError(row.Number, msgUnexpected)
	}

	// Digit-only strings can never be negative; kept as defensive checks
	if quantity < 0 {
		return nil, s.rowError(row.Number, msgQuantityNegative)
	}
	if total < 0 {
		return nil, s.rowError(row.Number, msgTotalNegative)
	}

	if !saleDateTimePattern.MatchString(soldAtField) {
		return nil, s.rowError(row.Number, msgBadDateTime)
	}

	soldAt, err := time.ParseInLocation(saleDateTimeLayout, soldAtField, jst)
	if err != nil {
		// Shape matched but the value is not a real calendar time,
		// e.g. month 13
		return nil, s.rowError(row.Number, msgUnexpected)
	}

	fruit, err := s.fruits.FindByName(ctx, row.Field(colFruitName))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, s.rowError(row.Number, msgFruitNotFound)
		}
		s.logger.Warn("fruit lookup failed during import",
			zap.Int("row", row.Number),
			zap.Error(err),
		)
		return nil, s.rowError(row.Number, msgUnexpected)
	}

	// The uploaded total is stored verbatim, never recomputed from the
	// fruit's current price
	sale, err := sales.NewImportedSale(fruit, quantity, total, soldAt)
	if err != nil {
		s.logger.Warn("sale construction failed during import",
			zap.Int("row", row.Number),
			zap.Error(err),
		)
		return nil, s.rowError(row.Number, msgUnexpected)
	}

	return sale, nil
}

func (s *SalesImportService) rowError(row int, message string) *csvimport.RowError {
	err := csvimport.NewRowError(row, message)
	return &err
}

// isDigits reports whether the string is non-empty and composed entirely
// of decimal digits; no sign, no decimal point
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

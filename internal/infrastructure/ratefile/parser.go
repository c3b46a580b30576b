package ratefile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Required price list columns. Carrier exports use semicolons; the parser
// also accepts plain comma-separated files.
const (
	ColumnFullName  = "full_name"
	ColumnWeightMin = "weight_min_grams"
	ColumnWeightMax = "weight_max_grams"
	ColumnPrice     = "price"
)

// Row is one parsed price list line
type Row struct {
	LineNumber     int
	FullName       string
	WeightMinGrams int
	WeightMaxGrams int
	Price          decimal.Decimal
}

// ParseResult carries the well-formed rows and the per-row errors of one
// price list file. A malformed row never aborts the parse.
type ParseResult struct {
	Rows   []Row
	Errors []RowError
}

// Parser reads a carrier price list export into typed rate rows
type Parser struct {
	delimiter rune
}

// ParserOption is a functional option for Parser configuration
type ParserOption func(*Parser)

// WithDelimiter sets the field delimiter (default is semicolon)
func WithDelimiter(d rune) ParserOption {
	return func(p *Parser) {
		p.delimiter = d
	}
}

// NewParser creates a new price list parser
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{delimiter: ';'}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the price list from r. The first row must be a header naming
// at least the four required columns; extra columns are ignored.
func (p *Parser) Parse(r io.Reader) (*ParseResult, error) {
	buf := bufio.NewReader(r)
	if err := stripBOMAndValidate(buf); err != nil {
		return nil, err
	}

	reader := csv.NewReader(buf)
	reader.Comma = p.delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{ColumnFullName, ColumnWeightMin, ColumnWeightMax, ColumnPrice} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMissingHeader, required)
		}
	}

	result := &ParseResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, NewRowError(line, "", ErrCodeRateFileInvalidType, err.Error()))
			continue
		}
		if isEmptyRecord(record) {
			continue
		}
		if row, ok := p.parseRecord(line, record, columns, result); ok {
			result.Rows = append(result.Rows, row)
		}
	}
	return result, nil
}

// ParseBytes parses a price list held in memory
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.Parse(bytes.NewReader(data))
}

func (p *Parser) parseRecord(line int, record []string, columns map[string]int, result *ParseResult) (Row, bool) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	fullName := field(ColumnFullName)
	if fullName == "" {
		result.Errors = append(result.Errors, NewRowError(line, ColumnFullName, ErrCodeRateFileRequiredField, "rate name is required"))
		return Row{}, false
	}

	minGrams, err := strconv.Atoi(field(ColumnWeightMin))
	if err != nil {
		result.Errors = append(result.Errors, NewRowErrorWithValue(line, ColumnWeightMin, ErrCodeRateFileInvalidType, "weight must be an integer gram count", field(ColumnWeightMin)))
		return Row{}, false
	}
	maxGrams, err := strconv.Atoi(field(ColumnWeightMax))
	if err != nil {
		result.Errors = append(result.Errors, NewRowErrorWithValue(line, ColumnWeightMax, ErrCodeRateFileInvalidType, "weight must be an integer gram count", field(ColumnWeightMax)))
		return Row{}, false
	}
	if minGrams < 0 || minGrams > maxGrams {
		result.Errors = append(result.Errors, NewRowError(line, ColumnWeightMin, ErrCodeRateFileInvalidRange, "weight range must satisfy 0 <= min <= max"))
		return Row{}, false
	}

	// Carrier exports write prices with a comma decimal separator.
	priceStr := strings.ReplaceAll(field(ColumnPrice), ",", ".")
	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() {
		result.Errors = append(result.Errors, NewRowErrorWithValue(line, ColumnPrice, ErrCodeRateFileInvalidType, "price must be a non-negative decimal", field(ColumnPrice)))
		return Row{}, false
	}

	return Row{
		LineNumber:     line,
		FullName:       fullName,
		WeightMinGrams: minGrams,
		WeightMaxGrams: maxGrams,
		Price:          price,
	}, true
}

// stripBOMAndValidate discards a UTF-8 BOM if present and rejects files that
// are empty or not valid UTF-8.
func stripBOMAndValidate(buf *bufio.Reader) error {
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	const checkSize = 4096
	content, err := buf.Peek(checkSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return ErrEmptyFile
	}
	if len(content) == checkSize {
		// A multibyte rune may straddle the window boundary; trim back to
		// the last complete rune before validating.
		for i := 0; i < utf8.UTFMax-1; i++ {
			r, size := utf8.DecodeLastRune(content)
			if r != utf8.RuneError || size != 1 {
				break
			}
			content = content[:len(content)-1]
		}
	}
	if !utf8.Valid(content) {
		return ErrInvalidEncoding
	}
	return nil
}

func isEmptyRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

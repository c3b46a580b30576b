package ratefile

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserParse(t *testing.T) {
	t.Run("parses a semicolon price list", func(t *testing.T) {
		file := "full_name;weight_min_grams;weight_max_grams;price\n" +
			"Green Letter;0;20;1,29\n" +
			"Green Letter;21;100;2,58\n"

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 2)
		assert.Empty(t, result.Errors)

		assert.Equal(t, 2, result.Rows[0].LineNumber)
		assert.Equal(t, "Green Letter", result.Rows[0].FullName)
		assert.Equal(t, 0, result.Rows[0].WeightMinGrams)
		assert.Equal(t, 20, result.Rows[0].WeightMaxGrams)
		assert.True(t, result.Rows[0].Price.Equal(decimal.RequireFromString("1.29")))
	})

	t.Run("comma delimiter via option", func(t *testing.T) {
		file := "full_name,weight_min_grams,weight_max_grams,price\n" +
			"Green Letter,0,20,1.29\n"

		result, err := NewParser(WithDelimiter(',')).Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
	})

	t.Run("strips a UTF-8 BOM", func(t *testing.T) {
		file := "\xEF\xBB\xBFfull_name;weight_min_grams;weight_max_grams;price\n" +
			"Green Letter;0;20;1,29\n"

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
	})

	t.Run("multibyte rune straddling the validation window is accepted", func(t *testing.T) {
		header := "full_name;weight_min_grams;weight_max_grams;price\n"
		// Land the two-byte rune across byte offset 4096, the size of the
		// window the encoding check peeks at.
		name := strings.Repeat("a", 4095-len(header)) + "é"
		file := header + name + ";0;20;1,29\n"
		require.Equal(t, 4095, strings.Index(file, "é"))

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, name, result.Rows[0].FullName)
	})

	t.Run("header names are case insensitive", func(t *testing.T) {
		file := "Full_Name;Weight_Min_Grams;Weight_Max_Grams;Price\n" +
			"Green Letter;0;20;1,29\n"

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, err := NewParser().Parse(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("missing required column is rejected", func(t *testing.T) {
		file := "full_name;price\nGreen Letter;1,29\n"
		_, err := NewParser().Parse(strings.NewReader(file))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("malformed rows are reported without aborting", func(t *testing.T) {
		file := "full_name;weight_min_grams;weight_max_grams;price\n" +
			";0;20;1,29\n" +
			"Green Letter;x;20;1,29\n" +
			"Green Letter;30;20;1,29\n" +
			"Green Letter;0;20;-1\n" +
			"Green Letter;0;20;1,29\n"

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		require.Len(t, result.Errors, 4)

		assert.Equal(t, ErrCodeRateFileRequiredField, result.Errors[0].Code)
		assert.Equal(t, ErrCodeRateFileInvalidType, result.Errors[1].Code)
		assert.Equal(t, ErrCodeRateFileInvalidRange, result.Errors[2].Code)
		assert.Equal(t, ErrCodeRateFileInvalidType, result.Errors[3].Code)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		file := "full_name;weight_min_grams;weight_max_grams;price\n" +
			"\n" +
			"Green Letter;0;20;1,29\n"

		result, err := NewParser().Parse(strings.NewReader(file))
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Empty(t, result.Errors)
	})
}

package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabtrainer/internal/wordbank"
	"github.com/example/vocabtrainer/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath                 string // Path to the Excel or CSV file
	SourceColumn             string // Column with the source-language text
	TranslationColumn        string // Column with the translation
	ExampleColumn            string // Column with the example sentence
	ExampleTranslationColumn string // Column with the example translation
	ContextColumn            string // Column with the provenance label
	SheetName                string // Name of the sheet to import
	StartRow                 int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SourceColumn:             "A",
		TranslationColumn:        "B",
		ExampleColumn:            "C",
		ExampleTranslationColumn: "D",
		ContextColumn:            "E",
		SheetName:                "Sheet1",
		StartRow:                 2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports words from an Excel or CSV file into the word bank.
// Rows go through the word bank's normal add path, so duplicate source texts
// are skipped and every created word gets a progress record.
func ImportWords(config ImportConfig, bank *wordbank.Service) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config, bank)
	}
	return importFromExcel(config, bank)
}

// importFromExcel imports words from an Excel file
func importFromExcel(config ImportConfig, bank *wordbank.Service) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", config.SheetName, err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow {
			continue
		}
		importRow(config, bank, row, rowNum, result)
	}
	return result, nil
}

// importFromCSV imports words from a CSV file
func importFromCSV(config ImportConfig, bank *wordbank.Service) (*ImportResult, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		importRow(config, bank, row, rowNum, result)
	}
	return result, nil
}

func importRow(config ImportConfig, bank *wordbank.Service, row []string, rowNum int, result *ImportResult) {
	result.TotalProcessed++

	source := strings.TrimSpace(cell(row, config.SourceColumn))
	translation := strings.TrimSpace(cell(row, config.TranslationColumn))
	if source == "" || translation == "" {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing source text or translation", rowNum))
		return
	}

	var example *models.Example
	if sentence := strings.TrimSpace(cell(row, config.ExampleColumn)); sentence != "" {
		example = &models.Example{
			Sentence:    sentence,
			Translation: strings.TrimSpace(cell(row, config.ExampleTranslationColumn)),
		}
	}

	word := bank.AddWord(source, translation, example)
	if word == nil {
		result.Skipped++
		return
	}
	result.Created++

	if context := strings.TrimSpace(cell(row, config.ContextColumn)); context != "" {
		word.Context = context
		bank.UpdateWord(*word)
	}
}

// cell reads a value from a row by column letter; missing columns read as empty.
func cell(row []string, column string) string {
	idx, err := excelize.ColumnNameToNumber(column)
	if err != nil || idx < 1 || idx > len(row) {
		return ""
	}
	return row[idx-1]
}

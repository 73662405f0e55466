// Package table implements the in-memory record set shared by the sheet
// extractor and the database loader. The first row of the source worksheet
// supplies the column names; every record has exactly one value per column.
package table

import (
	"fmt"
	"strings"
)

// Table is an ordered, rectangular record set.
type Table struct {
	Columns []string
	Records [][]string
}

// Make builds a Table from raw worksheet values. The first row is the
// header; rows shorter than the header are padded with empty strings and
// longer rows are truncated. Blank or duplicate header names are made
// unique with a counter suffix so that downstream SQL DDL stays valid.
func Make(values [][]interface{}) *Table {
	if len(values) == 0 {
		return &Table{}
	}

	rows := make([][]string, len(values))
	for i, row := range values {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = cell(v)
		}

		rows[i] = record
	}

	return MakeStrings(rows)
}

// MakeStrings builds a Table from rows already rendered as strings, e.g.
// from a local workbook.
func MakeStrings(rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{}
	}

	columns := header(rows[0])

	records := [][]string{}
	for _, row := range rows[1:] {
		record := make([]string, len(columns))
		for j := range columns {
			if j < len(row) {
				record[j] = strings.TrimSpace(row[j])
			}
		}

		records = append(records, record)
	}

	return &Table{
		Columns: columns,
		Records: records,
	}
}

// Rows returns the records keyed by column name.
func (t *Table) Rows() []map[string]string {
	rows := make([]map[string]string, len(t.Records))
	for i, record := range t.Records {
		row := map[string]string{}
		for j, column := range t.Columns {
			row[column] = record[j]
		}

		rows[i] = row
	}

	return rows
}

// IsEmpty returns true if the table has no data records.
func (t *Table) IsEmpty() bool {
	return len(t.Records) == 0
}

func header(row []string) []string {
	columns := make([]string, len(row))
	counter := map[string]int{}

	for i, v := range row {
		name := strings.TrimSpace(v)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		key := strings.ToLower(name)
		counter[key]++
		if counter[key] > 1 {
			name = fmt.Sprintf("%s_%d", key, counter[key])
		}

		columns[i] = name
	}

	return columns
}

func cell(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""

	case string:
		return strings.TrimSpace(s)

	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

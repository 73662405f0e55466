package db

import (
	"strconv"
	"strings"

	"sheetload/internal/table"
)

type columnType int

const (
	columnText columnType = iota
	columnBigint
	columnDouble
)

func (c columnType) sql() string {
	switch c {
	case columnBigint:
		return "BIGINT"

	case columnDouble:
		return "DOUBLE PRECISION"
	}

	return "TEXT"
}

// value converts a cell for binding. Empty cells in numeric columns become
// NULL rather than a zero value.
func (c columnType) value(v string) any {
	if c != columnText && strings.TrimSpace(v) == "" {
		return nil
	}

	return v
}

// inferSchema derives a column type for every column from the observed
// values: all integers make a BIGINT column, all numbers make a DOUBLE
// PRECISION column and anything else is TEXT. Empty cells are ignored, and
// a column with no values at all defaults to TEXT.
func inferSchema(t *table.Table) []columnType {
	schema := make([]columnType, len(t.Columns))

	for j := range t.Columns {
		integer := true
		numeric := true
		seen := false

		for _, record := range t.Records {
			v := strings.TrimSpace(record[j])
			if v == "" {
				continue
			}

			seen = true

			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				integer = false
			}

			if _, err := strconv.ParseFloat(v, 64); err != nil {
				numeric = false
				break
			}
		}

		switch {
		case !seen:
			schema[j] = columnText

		case integer:
			schema[j] = columnBigint

		case numeric:
			schema[j] = columnDouble

		default:
			schema[j] = columnText
		}
	}

	return schema
}

package table

import (
	"reflect"
	"testing"
)

func TestMake(t *testing.T) {
	expected := Table{
		Columns: []string{"id", "name"},
		Records: [][]string{
			{"1", "Alice"},
			{"2", "Bob"},
		},
	}

	var data = [][]interface{}{
		[]interface{}{"id", "name"},
		[]interface{}{"1", "Alice"},
		[]interface{}{"2", "Bob"},
	}

	table := Make(data)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestMakeWithShortRows(t *testing.T) {
	expected := Table{
		Columns: []string{"id", "name", "dept"},
		Records: [][]string{
			{"1", "Alice", "Eng"},
			{"2", "Bob", ""},
			{"3", "", ""},
		},
	}

	var data = [][]interface{}{
		[]interface{}{"id", "name", "dept"},
		[]interface{}{"1", "Alice", "Eng"},
		[]interface{}{"2", "Bob"},
		[]interface{}{"3"},
	}

	table := Make(data)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestMakeWithLongRows(t *testing.T) {
	expected := Table{
		Columns: []string{"id", "name"},
		Records: [][]string{
			{"1", "Alice"},
		},
	}

	var data = [][]interface{}{
		[]interface{}{"id", "name"},
		[]interface{}{"1", "Alice", "stray"},
	}

	table := Make(data)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestMakeWithDuplicateColumns(t *testing.T) {
	expected := []string{"id", "name", "name_2", "column_4"}

	var data = [][]interface{}{
		[]interface{}{"id", "name", "Name", ""},
	}

	table := Make(data)

	if !reflect.DeepEqual(table.Columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, table.Columns)
	}
}

func TestMakeWithCaseOnlyDuplicateColumns(t *testing.T) {
	expected := []string{"ID", "id_2", "id_3"}

	var data = [][]interface{}{
		[]interface{}{"ID", "Id", "id"},
	}

	table := Make(data)

	if !reflect.DeepEqual(table.Columns, expected) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", expected, table.Columns)
	}
}

func TestMakeWithHeaderOnly(t *testing.T) {
	var data = [][]interface{}{
		[]interface{}{"id", "name"},
	}

	table := Make(data)

	if !table.IsEmpty() {
		t.Errorf("Expected empty table, got %v records", len(table.Records))
	}

	if !reflect.DeepEqual(table.Columns, []string{"id", "name"}) {
		t.Errorf("Incorrect columns\n   expected: %v\n   got:      %v\n", []string{"id", "name"}, table.Columns)
	}
}

func TestMakeWithEmptySheet(t *testing.T) {
	table := Make([][]interface{}{})

	if !table.IsEmpty() {
		t.Errorf("Expected empty table, got %v records", len(table.Records))
	}
}

func TestMakeWithNonStringCells(t *testing.T) {
	expected := Table{
		Columns: []string{"id", "rate"},
		Records: [][]string{
			{"1", "0.5"},
		},
	}

	var data = [][]interface{}{
		[]interface{}{"id", "rate"},
		[]interface{}{1, 0.5},
	}

	table := Make(data)

	if !reflect.DeepEqual(*table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, *table)
	}
}

func TestRows(t *testing.T) {
	expected := []map[string]string{
		{"id": "1", "name": "Alice"},
		{"id": "2", "name": "Bob"},
	}

	table := Table{
		Columns: []string{"id", "name"},
		Records: [][]string{
			{"1", "Alice"},
			{"2", "Bob"},
		},
	}

	rows := table.Rows()

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v\n", expected, rows)
	}
}

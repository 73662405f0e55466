// Package db writes a record set to a PostgreSQL table in batched
// multi-row inserts. The destination schema is inferred from the record
// set once, before the first batch is sent.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"sheetload/internal/errors"
	"sheetload/internal/log"
	"sheetload/internal/table"
)

// Policy governs what happens when the destination table already exists.
type Policy string

const (
	Replace Policy = "replace"
	Append  Policy = "append"
	Fail    Policy = "fail"
)

// ParsePolicy converts the PG_IF_EXISTS configuration value to a Policy.
func ParsePolicy(v string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "replace":
		return Replace, nil

	case "append":
		return Append, nil

	case "fail":
		return Fail, nil
	}

	return "", errors.InvalidConfiguration("PG_IF_EXISTS", v)
}

// Load writes all records to the named table, honoring the existence policy
// and sending at most batchSize rows per round trip. An empty record set is
// a no-op and does not open a connection.
func Load(ctx context.Context, t *table.Table, dsn, name string, policy Policy, batchSize int) error {
	if t == nil || t.IsEmpty() {
		log.Infof("record set is empty - skipping load")
		return nil
	}

	if batchSize < 1 {
		return errors.Newf(errors.CodeInvalidNumericConfiguration, "batch size must be positive, got %d", batchSize)
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return errors.Connection(err)
	}

	defer db.Close()

	schema := inferSchema(t)

	if err := prepare(ctx, db, name, t.Columns, schema, policy); err != nil {
		return err
	}

	log.Infof("loading %d rows into table %s (policy %s, batch size %d)", len(t.Records), name, policy, batchSize)

	for start := 0; start < len(t.Records); start += batchSize {
		end := start + batchSize
		if end > len(t.Records) {
			end = len(t.Records)
		}

		stmt, args := insert(name, t.Columns, schema, t.Records[start:end])
		if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
			return errors.Load(err)
		}
	}

	log.Infof("load completed (%d rows)", len(t.Records))

	return nil
}

// prepare creates the destination table according to the existence policy.
func prepare(ctx context.Context, db *sqlx.DB, name string, columns []string, schema []columnType, policy Policy) error {
	ddl := []string{}

	switch policy {
	case Replace:
		ddl = append(ddl,
			fmt.Sprintf("DROP TABLE IF EXISTS %s", pq.QuoteIdentifier(name)),
			createTable(name, columns, schema, false))

	case Append:
		ddl = append(ddl, createTable(name, columns, schema, true))

	case Fail:
		exists := false
		stmt, arg := existsProbe(name)
		if err := db.GetContext(ctx, &exists, stmt, arg); err != nil {
			return errors.Load(err)
		}

		if exists {
			return errors.SchemaConflict(name)
		}

		ddl = append(ddl, createTable(name, columns, schema, false))

	default:
		return errors.InvalidConfiguration("PG_IF_EXISTS", string(policy))
	}

	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Load(err)
		}
	}

	return nil
}

// existsProbe builds the existence check for the 'fail' policy. The name is
// quoted so that the lookup resolves the same identifier createTable would
// create, mixed case included.
func existsProbe(name string) (string, string) {
	return "SELECT to_regclass($1) IS NOT NULL", pq.QuoteIdentifier(name)
}

func createTable(name string, columns []string, schema []columnType, ifNotExists bool) string {
	defs := make([]string, len(columns))
	for i, column := range columns {
		defs[i] = fmt.Sprintf("%s %s", pq.QuoteIdentifier(column), schema[i].sql())
	}

	clause := ""
	if ifNotExists {
		clause = "IF NOT EXISTS "
	}

	return fmt.Sprintf("CREATE TABLE %s%s (%s)", clause, pq.QuoteIdentifier(name), strings.Join(defs, ", "))
}

// insert builds a single multi-row INSERT statement for a batch. Empty
// strings in numeric columns are converted to NULL.
func insert(name string, columns []string, schema []columnType, records [][]string) (string, []any) {
	quoted := make([]string, len(columns))
	for i, column := range columns {
		quoted[i] = pq.QuoteIdentifier(column)
	}

	tuples := make([]string, len(records))
	args := make([]any, 0, len(records)*len(columns))

	n := 1
	for i, record := range records {
		placeholders := make([]string, len(columns))
		for j := range columns {
			placeholders[j] = fmt.Sprintf("$%d", n)
			args = append(args, schema[j].value(record[j]))
			n++
		}

		tuples[i] = fmt.Sprintf("(%s)", strings.Join(placeholders, ","))
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		pq.QuoteIdentifier(name),
		strings.Join(quoted, ", "),
		strings.Join(tuples, ","))

	return stmt, args
}

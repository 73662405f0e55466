/*
Package sheetload extracts tabular data from a Google Sheets worksheet and
loads it into a PostgreSQL table.

sheetload can be used from the command line but is really intended to be run
as a batch job from cron (or with RUN_INTERVAL set, as a long-running loop),
keeping a database table in sync with a worksheet maintained by hand.

sheetload supports the following commands:

  - run, to extract the configured worksheet and load it into the configured table (the default)
  - get, to download the configured worksheet to a local TSV file
  - import, to load a worksheet from a local .xlsx workbook into the configured table
  - version, to display the version information

Configuration is taken from the environment:

	SHEET_ID             spreadsheet identifier
	WORKSHEET            worksheet name within the spreadsheet
	GOOGLE_SA_KEY_JSON   service account credential JSON, inline
	PG_USER              database user
	PG_PASSWORD          database password
	PG_HOST              database host
	PG_PORT              database port
	PG_DB                database name
	PG_TABLE             destination table name
	PG_IF_EXISTS         optional - replace (default), append or fail
	PG_BATCH_SIZE        optional - rows per insert round trip (default 1000)
	PG_SSLMODE           optional - defaults to disable
	LOG_LEVEL            optional - defaults to info
	RUN_INTERVAL         optional - repeat interval for the run command
*/
package sheetload

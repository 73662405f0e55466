// Package sheet extracts a worksheet into an in-memory table, either from
// the Google Sheets API using service account credentials or from a local
// workbook file.
package sheet

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"sheetload/internal/errors"
	"sheetload/internal/log"
	"sheetload/internal/table"
)

// SCOPES are the OAuth2 scopes requested for the service account: read/write
// access to spreadsheets and to the files shared with the account.
var SCOPES = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// Extract authenticates with the supplied service account key, opens the
// named worksheet in the spreadsheet and materializes all of its rows. An
// empty worksheet returns an empty table, not an error.
func Extract(ctx context.Context, id, worksheet string, key []byte) (*table.Table, error) {
	log.Infof("authenticating to Google Sheets with inline service account key")

	creds, err := credentials(key)
	if err != nil {
		return nil, err
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(creds.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create Google Sheets client")
	}

	log.Infof("opening spreadsheet %s (worksheet %s)", id, worksheet)

	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, fmt.Sprintf("spreadsheet %s", id))
	}

	ws, err := getWorksheet(spreadsheet, worksheet)
	if err != nil {
		return nil, err
	}

	area := fmt.Sprintf("'%s'", ws.Properties.Title)

	response, err := google.Spreadsheets.Values.Get(id, area).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, fmt.Sprintf("worksheet %s", worksheet))
	}

	t := table.Make(response.Values)
	if t.IsEmpty() {
		log.Warnf("worksheet %s is empty - nothing to load", worksheet)
	} else {
		log.Infof("fetched %d rows x %d columns from worksheet %s", len(t.Records), len(t.Columns), worksheet)
	}

	return t, nil
}

// credentials parses the inline service account key. A malformed blob fails
// here, before any network call.
func credentials(key []byte) (*jwt.Config, error) {
	creds, err := google.JWTConfigFromJSON(key, SCOPES...)
	if err != nil {
		return nil, errors.CredentialParse(err)
	}

	return creds, nil
}

func getWorksheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	for _, ws := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(ws.Properties.Title), strings.TrimSpace(name)) {
			return ws, nil
		}
	}

	return nil, errors.NotFound(fmt.Sprintf("worksheet %s", name))
}

// classify maps a Sheets API error onto the pipeline error taxonomy.
func classify(err error, what string) error {
	var gerr *googleapi.Error
	if stderrors.As(err, &gerr) {
		switch gerr.Code {
		case 401:
			return errors.Authentication(err)

		case 403, 404:
			return errors.NotFound(what)
		}
	}

	var terr *oauth2.RetrieveError
	if stderrors.As(err, &terr) {
		return errors.Authentication(err)
	}

	return errors.Wrapf(err, "unable to retrieve %s", what)
}

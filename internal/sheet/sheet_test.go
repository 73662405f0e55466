package sheet

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"

	"sheetload/internal/errors"
)

// A malformed credential blob must fail before any network call is made.
func TestExtractWithMalformedCredentials(t *testing.T) {
	_, err := Extract(context.Background(), "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "Class Data", []byte("not json"))

	if err == nil {
		t.Fatalf("Expected error for malformed credentials, got %v", err)
	}

	if !errors.Is(err, errors.CodeCredentialParse) {
		t.Errorf("Incorrect error code\n   expected: %v\n   got:      %v\n", errors.CodeCredentialParse, errors.Code(err))
	}
}

func TestGetWorksheet(t *testing.T) {
	spreadsheet := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "ACL"}},
			{Properties: &sheets.SheetProperties{Title: " Class Data "}},
		},
	}

	ws, err := getWorksheet(&spreadsheet, "class data")
	if err != nil {
		t.Fatalf("Unexpected error returned from getWorksheet (%v)", err)
	}

	if ws.Properties.Title != " Class Data " {
		t.Errorf("Incorrect worksheet - expected:%v, got:%v", " Class Data ", ws.Properties.Title)
	}
}

func TestGetWorksheetWithMissingWorksheet(t *testing.T) {
	spreadsheet := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "ACL"}},
		},
	}

	_, err := getWorksheet(&spreadsheet, "Class Data")

	if err == nil {
		t.Fatalf("Expected error for missing worksheet, got %v", err)
	}

	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("Incorrect error code\n   expected: %v\n   got:      %v\n", errors.CodeNotFound, errors.Code(err))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&googleapi.Error{Code: 401}, errors.CodeAuthentication},
		{&googleapi.Error{Code: 403}, errors.CodeNotFound},
		{&googleapi.Error{Code: 404}, errors.CodeNotFound},
		{&oauth2.RetrieveError{ErrorCode: "invalid_grant"}, errors.CodeAuthentication},
		{fmt.Errorf("connection reset by peer"), errors.CodeInternal},
	}

	for _, test := range tests {
		err := classify(test.err, "worksheet Class Data")

		if errors.Code(err) != test.expected {
			t.Errorf("Incorrect error code for %T\n   expected: %v\n   got:      %v\n", test.err, test.expected, errors.Code(err))
		}
	}
}

func TestClassifyWithWrappedTokenError(t *testing.T) {
	cause := fmt.Errorf("Post \"https://oauth2.googleapis.com/token\": %w", &oauth2.RetrieveError{ErrorCode: "invalid_grant"})

	err := classify(cause, "spreadsheet")

	if !errors.Is(err, errors.CodeAuthentication) {
		t.Errorf("Incorrect error code\n   expected: %v\n   got:      %v\n", errors.CodeAuthentication, errors.Code(err))
	}
}

func TestExtractWithNonServiceAccountCredentials(t *testing.T) {
	_, err := Extract(context.Background(), "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "Class Data", []byte(`{"type":"authorized_user"}`))

	if err == nil {
		t.Fatalf("Expected error for non service account credentials, got %v", err)
	}

	if !errors.Is(err, errors.CodeCredentialParse) {
		t.Errorf("Incorrect error code\n   expected: %v\n   got:      %v\n", errors.CodeCredentialParse, errors.Code(err))
	}
}

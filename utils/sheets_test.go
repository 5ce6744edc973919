package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"referral-intake-server/models"
)

func newTestSheetWriter(t *testing.T, layout models.SheetLayout, h http.HandlerFunc) *SheetWriter {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return NewSheetWriter(svc, "sheet-123", layout)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func testSubmission() models.ReferralSubmission {
	return models.ReferralSubmission{
		ReferrerName:   "Jean Dupont",
		RecipientEmail: "marie@example.com",
		ClientName:     "Paul Martin",
		ClientPhone:    "0600000000",
		ClientEmail:    "paul@example.com",
		ProjectType:    "Vente",
		ProjectAddress: "12 rue de la Paix",
		SubmittedAt:    time.Date(2024, time.May, 17, 15, 4, 0, 0, time.UTC),
	}
}

func TestAppendRow(t *testing.T) {
	var (
		method string
		path   string
		query  map[string][]string
		body   sheets.ValueRange
	)
	w := newTestSheetWriter(t, models.CompactLayout, func(rw http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		query = r.URL.Query()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(rw, http.StatusOK, `{"spreadsheetId":"sheet-123"}`)
	})

	require.NoError(t, w.AppendRow(context.Background(), testSubmission()))

	assert.Equal(t, http.MethodPost, method)
	assert.True(t, strings.HasPrefix(path, "/v4/spreadsheets/sheet-123/values/"), path)
	assert.True(t, strings.HasSuffix(path, "A:J:append"), path)
	assert.Equal(t, []string{"RAW"}, query["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, query["insertDataOption"])

	require.Len(t, body.Values, 1)
	assert.Equal(t, []interface{}{
		"17/05/2024", "Jean Dupont", "marie@example.com", "Paul Martin", "0600000000",
		"paul@example.com", "Vente", "", "", "12 rue de la Paix",
	}, body.Values[0])
}

func TestAppendRowExtendedLayout(t *testing.T) {
	var body sheets.ValueRange
	var path string
	w := newTestSheetWriter(t, models.ExtendedLayout, func(rw http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(rw, http.StatusOK, `{}`)
	})

	require.NoError(t, w.AppendRow(context.Background(), testSubmission()))

	assert.True(t, strings.HasSuffix(path, "A:W:append"), path)
	require.Len(t, body.Values, 1)
	assert.Len(t, body.Values[0], 23)
	assert.Equal(t, "12 rue de la Paix", body.Values[0][8])
}

func TestAppendRowFailure(t *testing.T) {
	w := newTestSheetWriter(t, models.CompactLayout, func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusForbidden, `{"error":{"code":403,"message":"The caller does not have permission"}}`)
	})

	err := w.AppendRow(context.Background(), testSubmission())

	var serr *ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "spreadsheet", serr.Service)

	var apiErr *googleapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
}

func TestSheetLink(t *testing.T) {
	w := &SheetWriter{sheetID: "1FRQ"}
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1FRQ/edit?usp=sharing", w.SheetLink())
}

func TestHeaderRow(t *testing.T) {
	t.Run("existing header", func(t *testing.T) {
		var path string
		w := newTestSheetWriter(t, models.CompactLayout, func(rw http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			writeJSON(rw, http.StatusOK, `{"range":"Feuille 1!A1:J1","values":[["Date","Nom complet du prescripteur"]]}`)
		})

		row, err := w.HeaderRow(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Date", "Nom complet du prescripteur"}, row)
		assert.True(t, strings.HasSuffix(path, "/values/A1:J1"), path)
	})

	t.Run("empty sheet", func(t *testing.T) {
		w := newTestSheetWriter(t, models.CompactLayout, func(rw http.ResponseWriter, r *http.Request) {
			writeJSON(rw, http.StatusOK, `{"range":"Feuille 1!A1:J1"}`)
		})

		row, err := w.HeaderRow(context.Background())
		require.NoError(t, err)
		assert.Empty(t, row)
	})
}

func TestWriteHeader(t *testing.T) {
	var method string
	var body sheets.ValueRange
	w := newTestSheetWriter(t, models.ExtendedLayout, func(rw http.ResponseWriter, r *http.Request) {
		method = r.Method
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(rw, http.StatusOK, `{}`)
	})

	require.NoError(t, w.WriteHeader(context.Background()))

	assert.Equal(t, http.MethodPut, method)
	require.Len(t, body.Values, 1)
	assert.Len(t, body.Values[0], 23)
	assert.Equal(t, "Date", body.Values[0][0])
	assert.Equal(t, "Clôturé", body.Values[0][22])
}

package handler

// export.go implements GET /export: every planned activity across all days as
// a flat table, as JSON by default or CSV with ?format=csv.

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"

	"github.com/magicjourney/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day", "position", "activity_id", "kind", "record_id",
	"name", "land", "category", "done",
}

// GetExport implements GET /export.
// Rows are ordered by day, then by stored position within the day.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, parameterBody(err))
		return
	}
	if format != nil && *format != "csv" && *format != "json" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "invalid_parameter", Message: "format must be csv or json"}})
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "plan not found")
		return
	}

	if format != nil && *format == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(rows))
}

// buildJSONRows converts domain rows to the JSON response type.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToResponse(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV with a header row.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="magic-journey-plan.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	buf.WriteTo(w)
}

// domainRowToResponse maps a domain.ExportRow to the API type.
// Fields that are empty strings become nil pointers (omitempty in JSON).
func domainRowToResponse(r domain.ExportRow) ExportRow {
	return ExportRow{
		Day:        dayToDate(r.Day),
		Position:   r.Position,
		ActivityId: r.ActivityID,
		Kind:       string(r.Kind),
		RecordId:   r.RecordID,
		Name:       r.Name,
		Land:       optString(r.Land),
		Category:   optString(r.Category),
		Done:       r.Done,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.Day.String(),
		strconv.Itoa(r.Position),
		r.ActivityID,
		string(r.Kind),
		r.RecordID,
		r.Name,
		r.Land,
		r.Category,
		strconv.FormatBool(r.Done),
	}
}

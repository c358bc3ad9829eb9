package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"
)

// maxImportSize caps uploaded CSV files at 5 MiB.
const maxImportSize = 5 << 20

// TransferExport streams the donor CSV export as a download.
func (a *App) TransferExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.Transfer.ExportCSV(r.Context(), &buf); err != nil {
		a.Logger.Error().Err(err).Msg("csv export failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to export donors")
		return
	}

	filename := fmt.Sprintf("donors_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

// TransferImport accepts a multipart CSV upload and applies it row by row.
// Row failures are counted and reported in aggregate.
func (a *App) TransferImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "expected multipart form with a csv file")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "missing file field")
		return
	}
	defer file.Close()

	result, err := a.Transfer.ImportCSV(r.Context(), file)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, result)
}

// TransferReport streams the plain-text campaign report as a download.
func (a *App) TransferReport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := a.Transfer.Report(r.Context(), &buf); err != nil {
		a.Logger.Error().Err(err).Msg("report generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to generate report")
		return
	}

	filename := fmt.Sprintf("donation_report_%s.txt", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

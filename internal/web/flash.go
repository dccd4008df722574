package web

import (
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/sidereusnuntius/blogs/internal/csvimport"
)

// Values shown once on the page a POST redirects to. They live in the session until read.
const (
	importReportKey = "import_report"
	noticeKey       = "notice"
)

// maxReportedRows bounds the skipped rows kept in the session cookie.
const maxReportedRows = 20

type skippedRow struct {
	Line   int
	Reason string
}

type importReport struct {
	Undecodable bool
	Created     int
	Skipped     []skippedRow
	// Omitted counts skipped rows that did not fit in Skipped.
	Omitted int
}

func init() {
	gob.Register(importReport{})
}

func newImportReport(result csvimport.Result, err error) importReport {
	report := importReport{
		Undecodable: errors.Is(err, csvimport.ErrDecode),
		Created:     result.Created,
	}
	for i, s := range result.Skipped {
		if i == maxReportedRows {
			report.Omitted = len(result.Skipped) - i
			break
		}
		report.Skipped = append(report.Skipped, skippedRow{Line: s.Line, Reason: s.Err.Error()})
	}
	return report
}

// result rebuilds the import result for display.
func (r importReport) result() csvimport.Result {
	result := csvimport.Result{Created: r.Created}
	for _, s := range r.Skipped {
		result.Skipped = append(result.Skipped, csvimport.RowError{Line: s.Line, Err: errors.New(s.Reason)})
	}
	if r.Omitted > 0 {
		result.Skipped = append(result.Skipped, csvimport.RowError{
			Line: r.Skipped[len(r.Skipped)-1].Line + 1,
			Err:  errors.New("and later rows, not listed"),
		})
	}
	return result
}

func (h *Handler) putImportReport(w http.ResponseWriter, r *http.Request, report importReport) {
	if err := h.SessionManager.Load(r).PutObject(w, importReportKey, report); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to keep import report")
	}
}

// popImportReport returns the report left by the last import, if any, and removes it from the session.
func (h *Handler) popImportReport(w http.ResponseWriter, r *http.Request) (importReport, bool) {
	var report importReport
	session := h.SessionManager.Load(r)
	exists, err := session.Exists(importReportKey)
	if err != nil || !exists {
		return report, false
	}
	if err = session.PopObject(w, importReportKey, &report); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to read import report")
		return report, false
	}
	return report, true
}

func (h *Handler) putNotice(w http.ResponseWriter, r *http.Request, notice string) {
	if err := h.SessionManager.Load(r).PutString(w, noticeKey, notice); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to keep notice")
	}
}

func (h *Handler) popNotice(w http.ResponseWriter, r *http.Request) string {
	notice, err := h.SessionManager.Load(r).PopString(w, noticeKey)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to read notice")
	}
	return notice
}

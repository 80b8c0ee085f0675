package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/velora-commerce/backoffice-manager/internal/dependency"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
	"github.com/velora-commerce/backoffice-manager/internal/report"
)

const noDataMessage = "No data available for the selected period"

type reportsResource struct {
	reports *report.Service
	enc     dependency.ExportEncoder
}

func newReportsResource(reports *report.Service, enc dependency.ExportEncoder) *reportsResource {
	return &reportsResource{reports: reports, enc: enc}
}

type reportQuery struct {
	From        string `valid:"required"`
	To          string `valid:"required"`
	Granularity string `valid:"in(daily|weekly|monthly|day|week|month),optional"`
	Compare     string `valid:"in(true|false),optional"`
}

func parseParams(r *http.Request) (report.Params, error) {
	rt, err := entity.ParseReportType(chi.URLParam(r, "type"))
	if err != nil {
		return report.Params{}, err
	}

	q := reportQuery{
		From:        r.URL.Query().Get("from"),
		To:          r.URL.Query().Get("to"),
		Granularity: r.URL.Query().Get("granularity"),
		Compare:     r.URL.Query().Get("compare"),
	}
	if _, err := v.ValidateStruct(q); err != nil {
		return report.Params{}, err
	}

	from, err := time.Parse("2006-01-02", q.From)
	if err != nil {
		return report.Params{}, fmt.Errorf("invalid from date: %w", err)
	}
	to, err := time.Parse("2006-01-02", q.To)
	if err != nil {
		return report.Params{}, fmt.Errorf("invalid to date: %w", err)
	}
	if to.Before(from) {
		return report.Params{}, fmt.Errorf("date range end %s precedes start %s", q.To, q.From)
	}
	g, err := entity.ParseGranularity(q.Granularity)
	if err != nil {
		return report.Params{}, err
	}

	return report.Params{
		Type:        rt,
		Range:       entity.DateRange{From: from, To: to},
		Granularity: g,
		Compare:     q.Compare == "true",
	}, nil
}

func (rr *reportsResource) getReport(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		_ = render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	rep, err := rr.reports.Refresh(r.Context(), p)
	switch {
	case errors.Is(err, report.ErrStale):
		// A newer selection superseded this one; its result was dropped.
		_ = render.Render(w, r, NewReportResponse(nil, err.Error()))
	case err != nil:
		// Fetch failure: the empty report still renders, with the
		// empty-state message instead of a blank screen.
		_ = render.Render(w, r, NewReportResponse(rep, noDataMessage))
	default:
		_ = render.Render(w, r, NewReportResponse(rep, ""))
	}
}

func (rr *reportsResource) exportReport(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r)
	if err != nil {
		_ = render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	rep, err := rr.reports.Generate(r.Context(), p)
	if err != nil {
		// Absorbed at the report boundary: the export carries the empty
		// result set and the failure stays in the logs.
		slog.Default().ErrorContext(r.Context(), "exporting empty report after fetch failure",
			slog.String("report", string(p.Type)),
			slog.String("err", err.Error()),
		)
	}

	doc, err := report.BuildExportDocument(rep)
	if err != nil {
		_ = render.Render(w, r, ErrInternalServerError(fmt.Errorf("export failed: %w", err)))
		return
	}

	filename := fmt.Sprintf("%s-report-%s-%s.%s",
		p.Type, p.Range.From.Format("2006-01-02"), p.Range.To.Format("2006-01-02"), rr.enc.FileExtension())
	w.Header().Set("Content-Type", rr.enc.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := rr.enc.Encode(w, doc); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't encode export document",
			slog.String("err", err.Error()),
		)
	}
}

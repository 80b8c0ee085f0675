package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/velora-commerce/backoffice-manager/internal/entity"
)

// errors

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrInternalServerError(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

// report

type ReportResponse struct {
	Report *entity.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func NewReportResponse(rep *entity.Report, errText string) *ReportResponse {
	return &ReportResponse{Report: rep, Error: errText}
}

func (rd *ReportResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MsgInternal is shown whenever no customer-facing text was attached to a failure.
const MsgInternal = "Erro interno. Tente novamente."

// requestIDKey mirrors the key the logging middleware stores the request id under.
const requestIDKey = "request_id"

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status    int    `json:"-"`
	Error     Body   `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	return Response{
		Status:    status,
		Error:     Body{Code: CodeFor(status), Message: msg},
		RequestID: c.GetString(requestIDKey),
		Detail:    detail,
	}
}

// AbortWithError keeps err on the context so the request log shows the cause
// while the client only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	if msg == "" {
		msg = MsgInternal
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func CodeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	case http.StatusTooManyRequests:
		return "too_many_requests"
	default:
		if status >= http.StatusInternalServerError {
			return "internal"
		}
		return "error"
	}
}

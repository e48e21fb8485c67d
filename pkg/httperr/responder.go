package httperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vndshop/dashboard-service/pkg/utils"
)

const defaultMessage = "internal server error"

// ErrorPayload — тело ответа при ошибке. Сообщение дублируется
// в errMessage и message, разные клиенты читают разные поля.
// swagger:model ErrorPayload
type ErrorPayload struct {
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	ErrMessage string `json:"errMessage"`
	Message    string `json:"message"`
	Stack      string `json:"stack,omitempty"`
}

// Responder — единственная точка, через которую уходят все ошибки запросов.
// В verbose режиме отдаёт клиенту причину и стек, иначе только сообщение.
type Responder struct {
	logger  *slog.Logger
	verbose bool
}

func NewResponder(logger *slog.Logger, verbose bool) *Responder {
	return &Responder{
		logger:  logger.With(slog.String("component", "responder")),
		verbose: verbose,
	}
}

func (r *Responder) Respond(w http.ResponseWriter, req *http.Request, err error) {
	code := StatusCode(err)

	message := defaultMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	var herr *Error
	if errors.As(err, &herr) && herr.Message != "" {
		message = herr.Message
	}

	r.logger.ErrorContext(req.Context(), "request failed",
		slog.Int("status", code),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)

	payload := ErrorPayload{
		Success:    false,
		ErrMessage: message,
		Message:    message,
	}

	if r.verbose {
		if err != nil {
			payload.Error = err.Error()
		}
		if herr != nil {
			payload.Stack = string(herr.Stack)
		}
	}

	utils.WriteJSON(w, payload, code)
}

// Handle адаптирует хендлер, возвращающий ошибку, к http.HandlerFunc.
func (r *Responder) Handle(h func(w http.ResponseWriter, req *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			r.Respond(w, req, err)
		}
	}
}

// Recoverer переводит паники в обычный ответ с ошибкой.
func (r *Responder) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				r.Respond(w, req, Wrap(fmt.Errorf("%v", rec), http.StatusInternalServerError, defaultMessage))
			}
		}()
		next.ServeHTTP(w, req)
	})
}

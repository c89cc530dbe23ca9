package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ib-77/flow/internal/customers"
	"github.com/ib-77/flow/pkg/flow"
	"github.com/ib-77/flow/pkg/flow/boundary"
	"github.com/ib-77/flow/pkg/flow/solo"
)

// RequestIDHeader carries the id assigned to every HTTP request.
const RequestIDHeader = "X-Request-ID"

// Customers is the handler set both transports serve.
type Customers interface {
	AddCustomer(ctx context.Context, req customers.AddCustomerRequest) flow.Result[flow.None]
	Search(ctx context.Context, req customers.SearchRequest) flow.Result[customers.SearchResponse]
	Approve(ctx context.Context, req customers.ApproveRequest) flow.Result[flow.None]
	RaiseException(ctx context.Context) flow.Result[flow.None]
}

type httpHandler struct {
	svc Customers
	in  *Instruments
}

// NewHTTPHandler routes the JSON API. Every route answers with a Result
// body; a panicking route answers 500.
func NewHTTPHandler(svc Customers, in *Instruments, gatherer prometheus.Gatherer, log logr.Logger) http.Handler {
	h := &httpHandler{svc: svc, in: in}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /customers", h.addCustomer)
	mux.HandleFunc("GET /customers", h.search)
	mux.HandleFunc("GET /customers/raise", h.raise)
	mux.HandleFunc("PUT /customers/{id}/approve", h.approve)
	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return withRequestID(boundary.RecoverHTTP(mux, boundary.WithLogger(log)), log)
}

func withRequestID(next http.Handler, log logr.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		reqLog := log.WithValues("requestID", id, "method", r.Method, "path", r.URL.Path)
		reqLog.V(1).Info("request received")
		next.ServeHTTP(w, r.WithContext(logr.NewContext(r.Context(), reqLog)))
	})
}

func (h *httpHandler) addCustomer(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, "AddCustomer", func(ctx context.Context) flow.Result[flow.None] {
		req := decodeBody[customers.AddCustomerRequest](r)
		return solo.OnSuccessBind(req, func(req customers.AddCustomerRequest) flow.Result[flow.None] {
			return h.svc.AddCustomer(ctx, req)
		})
	})
}

func (h *httpHandler) search(w http.ResponseWriter, r *http.Request) {
	req := customers.SearchRequest{CompanyName: r.URL.Query().Get("companyName")}
	respond(h, w, r, "CustomerSearch", func(ctx context.Context) flow.Result[customers.SearchResponse] {
		return h.svc.Search(ctx, req)
	})
}

func (h *httpHandler) raise(w http.ResponseWriter, r *http.Request) {
	respond(h, w, r, "RaiseServiceException", h.svc.RaiseException)
}

func (h *httpHandler) approve(w http.ResponseWriter, r *http.Request) {
	id := flow.TryToFlow(func() (int, error) {
		return strconv.Atoi(r.PathValue("id"))
	}, func(err error) flow.Result[int] {
		return flow.Failed[int](flow.ValidationFailure("The application id must be a number.",
			flow.WithDetail("id", r.PathValue("id")), flow.WithException(err)))
	})
	respond(h, w, r, "ApproveApplication", func(ctx context.Context) flow.Result[flow.None] {
		return solo.OnSuccessBind(id, func(id int) flow.Result[flow.None] {
			return h.svc.Approve(ctx, customers.ApproveRequest{ID: id})
		})
	})
}

func decodeBody[T any](r *http.Request) flow.Result[T] {
	return flow.TryToFlow(func() (T, error) {
		var v T
		err := json.NewDecoder(r.Body).Decode(&v)
		return v, err
	}, func(err error) flow.Result[T] {
		return flow.Failed[T](flow.JSONFailure("The request body is not valid JSON.", flow.WithException(err)))
	})
}

func respond[T any](h *httpHandler, w http.ResponseWriter, r *http.Request, operation string,
	call func(ctx context.Context) flow.Result[T]) {

	res := Observe(r.Context(), h.in, operation, call)
	if err := boundary.WriteJSON(w, res); err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "write response", "operation", operation)
	}
}

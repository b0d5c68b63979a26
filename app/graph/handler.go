package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
)

// Handler is the GraphQL HTTP boundary. It executes requests against the
// schema and converts operation failures into the client-facing
// {message, status, data} error shape; uncoded faults render as 500.
type Handler struct {
	schema graphql.Schema
	log    *logrus.Logger
}

// NewHandler creates a new Handler
func NewHandler(schema graphql.Schema, log *logrus.Logger) *Handler {
	return &Handler{schema: schema, log: log}
}

type graphRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	switch r.Method {
	case http.MethodGet:
		req.Query = r.URL.Query().Get("query")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	body := map[string]interface{}{"data": result.Data}
	if len(result.Errors) > 0 {
		errs := make([]map[string]interface{}, 0, len(result.Errors))
		for _, ferr := range result.Errors {
			errs = append(errs, h.formatError(ferr))
		}
		body["errors"] = errs
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// formatError keeps the status and field-error data an operation attached;
// anything else stays a plain message with the 500 default.
func (h *Handler) formatError(ferr gqlerrors.FormattedError) map[string]interface{} {
	e := apperr.From(originalError(ferr))
	if e == nil {
		return map[string]interface{}{
			"message": ferr.Message,
			"status":  http.StatusInternalServerError,
		}
	}

	out := map[string]interface{}{
		"message": e.Message,
		"status":  e.StatusCode(),
	}
	if e.Data != nil {
		out["data"] = e.Data
	}
	return out
}

// originalError unwraps the layers graphql-go adds around resolver errors.
func originalError(err error) error {
	for err != nil {
		switch e := err.(type) {
		case gqlerrors.FormattedError:
			err = e.OriginalError()
		case *gqlerrors.Error:
			err = e.OriginalError
		default:
			return err
		}
	}
	return nil
}

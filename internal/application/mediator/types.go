package mediator

import (
	"context"
	"reflect"
	"strings"
)

// Request is a command (changes the session) or a query (reads it)
type Request interface{}

// Response is whatever the request's handler returns
type Response interface{}

// RequestHandler handles one concrete request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a plain function to RequestHandler
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Handle calls f
func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware wraps every Send; call next to continue the chain
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// RequestName is the bare type name of request, e.g. "BuyUpgradeCommand"
func RequestName(request Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	t := reflect.TypeOf(request)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// RequestKind classifies request as "query" or "command" by its name suffix
func RequestKind(request Request) string {
	if strings.HasSuffix(RequestName(request), "Query") {
		return "query"
	}
	return "command"
}

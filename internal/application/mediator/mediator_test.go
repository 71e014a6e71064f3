package mediator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

type pingCommand struct{ Value int }

type pingHandler struct{}

func (pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*pingCommand).Value * 2, nil
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	// Act
	resp, err := m.Send(context.Background(), &pingCommand{Value: 21})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestMediator_RejectsDuplicatesAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	assert.Error(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))
	_, err := m.Send(context.Background(), struct{}{})
	assert.Error(t, err)
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))
	var trace []string
	record := func(name string) mediator.Middleware {
		return func(ctx context.Context, req mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			trace = append(trace, name+">")
			resp, err := next(ctx, req)
			trace = append(trace, "<"+name)
			return resp, err
		}
	}
	m.Use(record("outer"))
	m.Use(record("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingCommand{Value: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer>", "inner>", "<inner", "<outer"}, trace)
}

type quotesQuery struct{}

func TestRequestNameAndKind(t *testing.T) {
	assert.Equal(t, "pingCommand", mediator.RequestName(&pingCommand{}))
	assert.Equal(t, "quotesQuery", mediator.RequestName(quotesQuery{}))
	assert.Equal(t, "UnknownRequest", mediator.RequestName(nil))
	assert.Equal(t, "command", mediator.RequestKind(&pingCommand{}))
	assert.Equal(t, "query", mediator.RequestKind(&quotesQuery{}))
}

func TestLoggingMiddleware_LogsFailuresAtWarn(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := common.WithLogger(context.Background(), logger)
	m := mediator.NewMediator()
	m.Use(mediator.LoggingMiddleware())
	failing := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("hold is empty")
	})
	require.NoError(t, mediator.RegisterHandler[*quotesQuery](m, failing))
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	// Act
	_, errQuery := m.Send(ctx, &quotesQuery{})
	_, errPing := m.Send(ctx, &pingCommand{Value: 2})
	_, errSilent := m.Send(context.Background(), &quotesQuery{})

	// Assert
	assert.EqualError(t, errQuery, "hold is empty")
	assert.NoError(t, errPing)
	assert.Error(t, errSilent)
	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "request=quotesQuery")
	assert.Contains(t, out, "kind=query")
	assert.NotContains(t, out, "pingCommand", "successes are logged at debug")
	assert.Equal(t, 1, strings.Count(out, "request failed"), "no context logger, no line")
}

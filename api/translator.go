package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/decompme/toolerr/errors"
)

// Translator converts errors raised while serving a request into structured
// responses. It is immutable after construction and safe for concurrent use.
type Translator struct {
	fallback DefaultHandler
	logger   *slog.Logger
	classify func(error) error
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultHandler sets the fallback consulted by Handle before translation.
func WithDefaultHandler(h DefaultHandler) Option {
	return func(t *Translator) {
		t.fallback = h
	}
}

// WithLogger sets the sink for tool failure records.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithClassifier sets a function applied to every error before matching,
// for example storage.ClassifyError to recognize driver constraint errors.
func WithClassifier(classify func(error) error) Option {
	return func(t *Translator) {
		t.classify = classify
	}
}

// NewTranslator creates a Translator. By default it falls back to
// DefaultExceptionHandler and discards log records.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		fallback: DefaultExceptionHandler,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
	return t
}

// Handle builds the default response for err and then translates it.
func (t *Translator) Handle(ctx context.Context, err error) *Response {
	var ambient *Response
	if t.fallback != nil && err != nil {
		ambient = t.fallback(err)
	}
	return t.Translate(ctx, err, ambient)
}

// Translate rewrites ambient, the default handler's response (possibly nil), for err.
//
//   - A ToolFailure becomes 400 with code, detail and the non-empty command,
//     stdout and stderr fields. stderr is omitted when it repeats stdout.
//     One log record is emitted.
//   - An AssertionError or IntegrityError becomes 500 with detail.
//   - Anything else keeps ambient.
//
// Every map payload is then tagged with "kind", the error's type name.
// The ambient payload itself is never modified. Translate returns nil only
// when ambient is nil and err is not recognized.
func (t *Translator) Translate(ctx context.Context, err error, ambient *Response) *Response {
	if err == nil {
		return ambient
	}
	if t.classify != nil {
		if classified := t.classify(err); classified != nil {
			err = classified
		}
	}

	response := ambient
	if failure, ok := errors.AsToolFailure(err); ok {
		response = t.toolFailure(ctx, failure)
	} else if class, ok := errors.Classify(err); ok {
		response = &Response{
			Status: class.HTTPStatus(),
			Data:   map[string]any{"detail": err.Error()},
		}
	}

	return tag(response, errors.TypeName(err))
}

func (t *Translator) toolFailure(ctx context.Context, failure *errors.ToolFailure) *Response {
	detail := failure.RenderMessage()
	if detail == "" {
		detail = failure.Message()
	}

	data := map[string]any{
		"code":   failure.ToolName(),
		"detail": detail,
	}
	command, hasCommand := failure.Command()
	if hasCommand && command != "" {
		data["command"] = command
	}
	if stdout := failure.Stdout(); stdout != "" {
		data["stdout"] = stdout
	}
	if stderr := failure.Stderr(); stderr != "" && stderr != failure.Stdout() {
		data["stderr"] = stderr
	}

	t.logToolFailure(ctx, data)

	return &Response{
		Status: http.StatusBadRequest,
		Data:   data,
	}
}

// logToolFailure emits one record per tool failure. A failing handler is
// contained so logging never affects the response.
func (t *Translator) logToolFailure(ctx context.Context, data map[string]any) {
	defer func() {
		_ = recover()
	}()

	attrs := []any{"tool_name", data["code"]}
	for _, key := range []string{"command", "detail", "stdout", "stderr"} {
		if v, ok := data[key]; ok {
			attrs = append(attrs, key, v)
		}
	}
	t.logger.ErrorContext(ctx, "subprocess error", attrs...)
}

// tag returns a copy of r whose map payload carries kind.
// Responses without a map payload are returned as is.
func tag(r *Response, kind string) *Response {
	if r == nil {
		return nil
	}
	data, ok := r.Data.(map[string]any)
	if !ok {
		return r
	}
	tagged := make(map[string]any, len(data)+1)
	for k, v := range data {
		tagged[k] = v
	}
	tagged["kind"] = kind
	return &Response{Status: r.Status, Data: tagged}
}

package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-veval/internal/helpers"
	"github.com/robbyt/go-veval/platform/data"
	"github.com/robbyt/go-veval/value"
)

// Response is the result of one evaluation.
type Response struct {
	value       value.Value
	execTime    time.Duration
	scriptExeID string
	logger      *slog.Logger
}

func newResponse(handler slog.Handler, v value.Value, execTime time.Duration, exeID string) *Response {
	_, logger := helpers.SetupLogger(handler, "veval", "Response")
	return &Response{
		value:       v,
		execTime:    execTime,
		scriptExeID: exeID,
		logger:      logger,
	}
}

func (r *Response) String() string {
	return fmt.Sprintf(
		"Response{Type: %s, Value: %s, ExecTime: %s, ScriptExeID: %s}",
		r.Type(), r.Inspect(), r.GetExecTime(), r.GetScriptExeID())
}

// Value returns the result value.
func (r *Response) Value() value.Value {
	return r.value
}

// Type maps the value's kind onto data.Types.
func (r *Response) Type() data.Types {
	switch r.value.Kind() {
	case value.KindBool:
		return data.BOOL
	case value.KindInt:
		return data.INT
	case value.KindFloat:
		return data.FLOAT
	case value.KindStr:
		return data.STRING
	case value.KindRange:
		return data.RANGE
	case value.KindList:
		return data.LIST
	default:
		return data.NONE
	}
}

// Inspect returns the display form, e.g. [1,2,] for a list.
func (r *Response) Inspect() string {
	return r.value.String()
}

// Interface returns the value as nil, bool, int64, float64, string,
// value.Range or []any.
func (r *Response) Interface() any {
	return r.value.Interface()
}

// MarshalJSON encodes the value, not the response metadata.
func (r *Response) MarshalJSON() ([]byte, error) {
	b, err := r.value.MarshalJSON()
	if err != nil {
		r.logger.Error("failed to encode result", "error", err, "type", r.Type())
	}
	return b, err
}

func (r *Response) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *Response) GetExecTime() string {
	return r.execTime.String()
}

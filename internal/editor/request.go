package editor

import (
	"encoding/json"
	"fmt"
)

// Input is one decoded editor request. Which optional fields are required
// depends on the command; pointer fields distinguish "absent" from the zero
// value.
type Input struct {
	Command     string  `json:"command"`
	Path        string  `json:"path"`
	ViewRange   []int   `json:"view_range,omitempty"`
	MaxDepth    int     `json:"max_depth,omitempty"`
	FileText    *string `json:"file_text,omitempty"`
	OldStr      *string `json:"old_str,omitempty"`
	NewStr      *string `json:"new_str,omitempty"`
	InsertLine  *int    `json:"insert_line,omitempty"`
	DeleteRange []int   `json:"delete_range,omitempty"`
	AllowMulti  bool    `json:"allow_multi,omitempty"`
	UsePattern  bool    `json:"use_pattern,omitempty"`
	UseRegex    bool    `json:"use_regex,omitempty"` // alias for use_pattern
}

// patternMode reports whether regex matching was requested under either
// field name.
func (in *Input) patternMode() bool {
	return in.UsePattern || in.UseRegex
}

// Request is the wire envelope: clients wrap the input object in an "input"
// key, but a bare input object is accepted too.
type Request struct {
	Input Input `json:"input"`
}

// DecodeRequest parses raw request bytes in either envelope form.
func DecodeRequest(data []byte) (*Input, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	if req.Input.Command == "" && req.Input.Path == "" {
		// No "input" key present; try the bare form.
		var in Input
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		return &in, nil
	}
	return &req.Input, nil
}

// Result is the single response produced per request. IsError marks
// semantic failures; the process itself still exits zero.
type Result struct {
	Content string `json:"content"`
	IsError bool   `json:"is_error,omitempty"`
}

func successResult(content string) Result {
	return Result{Content: content}
}

func errorResult(err error) Result {
	return Result{Content: err.Error(), IsError: true}
}

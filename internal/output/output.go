// Package output renders report rows in the four CLI modes: styled human
// text, tab-separated plain lines, a JSON envelope, and NDJSON streams.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type Mode string

const (
	ModeHuman  Mode = "human"
	ModePlain  Mode = "plain"
	ModeJSON   Mode = "json"
	ModeNDJSON Mode = "ndjson"
)

// Meta accompanies JSON payloads. RequestID is the X-Request-Id of the last
// remote call, when one happened.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Count     int    `json:"count,omitempty"`
}

type envelope struct {
	Data any  `json:"data"`
	Meta Meta `json:"meta"`
}

// DetectMode resolves the output mode from the mutually exclusive mode flags
// and, absent any, from whether stdout is a terminal.
func DetectMode(jsonFlag, plainFlag, ndjsonFlag bool, stdoutIsTTY bool) (Mode, error) {
	picked := 0
	for _, f := range []bool{jsonFlag, plainFlag, ndjsonFlag} {
		if f {
			picked++
		}
	}
	if picked > 1 {
		return "", fmt.Errorf("--json, --plain, and --ndjson are mutually exclusive")
	}
	switch {
	case ndjsonFlag:
		return ModeNDJSON, nil
	case jsonFlag:
		return ModeJSON, nil
	case plainFlag, !stdoutIsTTY:
		return ModePlain, nil
	}
	return ModeHuman, nil
}

func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// WriteJSON emits a single indented envelope so scripted callers always see
// the same top-level shape regardless of command.
func WriteJSON(out io.Writer, data any, meta Meta) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope{Data: data, Meta: meta})
}

// WritePlain emits one tab-separated line per row, no header, for cut/awk
// pipelines.
func WritePlain(out io.Writer, rows [][]string) error {
	for _, row := range rows {
		line := strings.Join(row, "\t")
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSON emits one compact JSON object per line, no envelope.
func WriteNDJSON(out io.Writer, items []any) error {
	enc := json.NewEncoder(out)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

package typerand

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidArgument  = "invalid_argument"
	CodeGenerationFailed = "generation_failed"
	CodeParseError       = "parse_error"
)

// Issue represents a single failure entry. Path points into the descriptor
// being built or decoded (for example: /member/2/element).
type Issue struct {
	Path    string // Pointer-style location ("/" for the root).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of failure entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts an Issues value from err when present.
func AsIssues(err error) (Issues, bool) {
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsInvalidArgument reports whether err carries an invalid_argument issue.
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsGenerationError reports whether err carries a generation_failed issue.
func IsGenerationError(err error) bool { return hasCode(err, CodeGenerationFailed) }

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func invalidArgumentf(path, format string, args ...any) Issues {
	return Issues{{Path: path, Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}}
}

func generationFailed(path string, cause error) Issues {
	return Issues{{Path: path, Code: CodeGenerationFailed, Message: "constructor failed", Cause: cause}}
}

// prefixIssues relocates child issues under prefix so errors surfaced from
// nested generation keep their full path.
func prefixIssues(prefix string, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		out := make(Issues, len(iss))
		for i, it := range iss {
			if it.Path == "/" || it.Path == "" {
				it.Path = prefix
			} else {
				it.Path = prefix + it.Path
			}
			out[i] = it
		}
		return out
	}
	return Issues{{Path: prefix, Code: CodeGenerationFailed, Message: "generation failed", Cause: err}}
}

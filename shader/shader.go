package shader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Source holds the two stages of a program as read from a combined shader file.
//
// A combined file separates the stages with marker lines:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
type Source struct {
	Vertex   string
	Fragment string
}

const marker = "#shader"

// Parse splits a combined shader file into its stages.
func Parse(r io.Reader) (Source, error) {
	var (
		src     Source
		current *strings.Builder
		vs, fs  strings.Builder
		seenVS  bool
		seenFS  bool
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, marker) {
			switch stage := strings.TrimSpace(strings.TrimPrefix(trimmed, marker)); stage {
			case "vertex":
				current, seenVS = &vs, true
			case "fragment":
				current, seenFS = &fs, true
			default:
				return src, fmt.Errorf("line %d: unknown shader stage %q", line, stage)
			}
			continue
		}
		if current == nil {
			if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
				return src, fmt.Errorf("line %d: code before the first %s marker", line, marker)
			}
			continue
		}
		current.WriteString(text)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return src, fmt.Errorf("failed to read shader source: %w", err)
	}
	if !seenVS {
		return src, fmt.Errorf("missing vertex section")
	}
	if !seenFS {
		return src, fmt.Errorf("missing fragment section")
	}

	src.Vertex = vs.String()
	src.Fragment = fs.String()
	return src, nil
}

// IsES reports whether a stage is written in GLSL ES and must be translated
// before a desktop core context can compile it.
func IsES(stage string) bool {
	for _, l := range strings.Split(stage, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "//") {
			continue
		}
		if strings.HasPrefix(l, "#version") {
			return strings.HasSuffix(l, " es")
		}
		return false
	}
	return false
}

package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Read returns the last maxLines lines of the file at path. A missing file
// yields no lines and no error; maxLines <= 0 reads everything.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > 2*maxLines {
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// Console reads the tail of a slog text log and rewrites each record into
// the activity console format produced by FormatRecord.
func Console(path string, maxLines int) ([]string, error) {
	raw, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, ConsoleLine(line))
	}
	return out, nil
}

// FormatRecord renders one console line: clock time, level, message and the
// remaining attributes as key=value pairs.
func FormatRecord(ts time.Time, level, msg string, attrs []string) string {
	var b strings.Builder
	b.WriteString(ts.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(fmt.Sprintf("%-5s", strings.ToUpper(level)))
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	return b.String()
}

// ConsoleLine converts a slog text record (time=... level=... msg=...) into
// the console format. Lines that are not slog records pass through.
func ConsoleLine(line string) string {
	fields := splitFields(line)
	var (
		ts    time.Time
		level string
		msg   string
		attrs []string
		seen  bool
	)
	for _, f := range fields {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			attrs = append(attrs, f)
			continue
		}
		switch key {
		case "time":
			if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
				ts = parsed
				seen = true
			}
		case "level":
			level = value
		case "msg":
			msg = unquote(value)
		default:
			attrs = append(attrs, key+"="+value)
		}
	}
	if !seen || level == "" {
		return line
	}
	return FormatRecord(ts, level, msg, attrs)
}

// splitFields splits on spaces outside double quotes.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quoted:
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := s[1 : len(s)-1]
		return strings.ReplaceAll(inner, `\"`, `"`)
	}
	return s
}

package scanner

import (
	"fmt"
	"strings"
)

func (l LexError) String() string {
	return fmt.Sprintf(
		`{ "Error": "%s", "Range": %s }`,
		l.GetError(),
		l.Range,
	)
}

func (p Position) String() string {
	return fmt.Sprintf("{ \"Line\": %d, \"Character\": %d }", p.Line, p.Character)
}

func (r Range) String() string {
	return fmt.Sprintf("{ \"Start\": %s, \"End\": %s }", r.Start, r.End)
}

func (t Token) String() string {
	return fmt.Sprintf(
		"{ \"ID\": \"%s\", \"Range\": %s, \"Value\": %q }",
		t.ID,
		t.Range,
		t.Value,
	)
}

// PrettyFormater converts an array of Stringer elements to a formatted string.
func PrettyFormater[T fmt.Stringer](arr []T) string {
	if len(arr) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")

	for index, el := range arr {
		if index > 0 {
			sb.WriteString(",")
		}

		sb.WriteString(el.String())
	}

	sb.WriteString("]")

	return sb.String()
}

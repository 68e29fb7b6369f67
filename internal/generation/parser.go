package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// codeFenceRegex strips markdown code fences some models wrap their JSON
// answer in, despite being told not to.
var codeFenceRegex = regexp.MustCompile("```json\n?|\n?```")

// ParseResult decodes a raw model response into a Result. It tolerates
// markdown code fences and surrounding whitespace, and normalizes the
// decoded fields: Content is trimmed, a missing hashtags array becomes an
// empty slice, and a missing hook becomes an empty string.
//
// Returns ErrInvalidModelOutput if the cleaned response is not valid JSON
// of the expected shape.
func ParseResult(raw string) (*Result, error) {
	cleaned := codeFenceRegex.ReplaceAllString(strings.TrimSpace(raw), "")

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelOutput, err)
	}

	result.Content = strings.TrimSpace(result.Content)
	if result.Hashtags == nil {
		result.Hashtags = []string{}
	}

	return &result, nil
}

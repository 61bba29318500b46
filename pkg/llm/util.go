package llm

import (
	"strings"
)

// WordWrap wraps text at the specified width.
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		currentLineLength := 0
		for j, word := range words {
			if j > 0 {
				if currentLineLength+len(word)+1 > width {
					result.WriteString("\n")
					currentLineLength = 0
				} else {
					result.WriteString(" ")
					currentLineLength++
				}
			}
			result.WriteString(word)
			currentLineLength += len(word)
		}
	}

	return result.String()
}

// TruncateVideoBlock shortens the lines of the "VIDEOS:" block of a prompt to
// maxLen runes and drops its blank lines. Used when logging prompts, where the
// video listing dominates the output.
func TruncateVideoBlock(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	var result []string
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "VIDEOS:") {
			inBlock = true
			result = append(result, line)
			continue
		}
		if inBlock && strings.HasPrefix(trimmed, "END VIDEOS") {
			inBlock = false
			result = append(result, line)
			continue
		}

		if !inBlock {
			result = append(result, line)
			continue
		}
		if trimmed == "" {
			continue
		}
		runes := []rune(trimmed)
		if len(runes) > maxLen {
			result = append(result, string(runes[:maxLen])+"...")
		} else {
			result = append(result, trimmed)
		}
	}

	return strings.Join(result, "\n")
}

// CleanJSONBlock removes markdown code fences from a JSON string if present.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	start := strings.Index(text, "```json")
	if start != -1 {
		text = text[start+len("```json"):]
		end := strings.LastIndex(text, "```")
		if end != -1 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}

	start = strings.Index(text, "```")
	if start != -1 {
		text = text[start+len("```"):]
		end := strings.LastIndex(text, "```")
		if end != -1 {
			text = text[:end]
		}
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(text)
}

// CleanText strips surrounding quotes and whitespace from a one-line answer.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"“”")
	return strings.TrimSpace(text)
}

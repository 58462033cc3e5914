package aitext

import (
	"fmt"
	"strings"

	"github.com/fwojciec/nicobar"
)

// BuildPrompt returns the instruction sent to the AI backend for an article.
func BuildPrompt(prompt nicobar.ArticlePrompt, dialect nicobar.ResponseDialect) string {
	var sb strings.Builder
	sb.WriteString("You are a professional journalist that writes very nice articles.\n")
	sb.WriteString("I want you to write me an article about:\n\n")
	fmt.Fprintf(&sb, "Task: %s\n", prompt.Task)
	fmt.Fprintf(&sb, "Topic: %s\n", prompt.Topic)
	fmt.Fprintf(&sb, "Style: %s\n", prompt.Style)
	fmt.Fprintf(&sb, "Tone: %s\n", prompt.Tone)
	fmt.Fprintf(&sb, "Audience: %s\n", prompt.Audience)
	fmt.Fprintf(&sb, "Length: %s\n", prompt.Length)
	sb.WriteString("Format: JSON\n")
	sb.WriteString("JSON Schema (Make sure to match this format):\n")
	sb.WriteString(`{
    title: string;
    tags: string[];
    content: string;
    estimatedReadingTimeMinutes: number;
    relatedTopicsTags: string[];
}
`)
	sb.WriteString("Write the content field in Markdown.\n")
	if dialect.StripJSONFence {
		sb.WriteString("Wrap the JSON document in a ```json code block.\n")
	} else {
		sb.WriteString("Answer with the JSON document only.\n")
	}
	return sb.String()
}

package qa

import (
	"fmt"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// BuildPrompt builds the generation prompt for a question and its
// retrieved context.
func BuildPrompt(context, question string, mode voxdoc.Mode) string {
	var sb strings.Builder

	switch mode {
	case voxdoc.ModeNotes:
		sb.WriteString("Based on the following context and user request, create structured notes in markdown format.\n\n")
		fmt.Fprintf(&sb, "Context:\n%s\n\n", context)
		fmt.Fprintf(&sb, "User Request: %s\n\n", question)
		sb.WriteString("Create clear, well-organized notes that address the user's request. Use markdown formatting including:\n")
		sb.WriteString("- Headers (##, ###)\n")
		sb.WriteString("- Bullet points\n")
		sb.WriteString("- Bold/italic for emphasis\n")
		sb.WriteString("- Code blocks if needed\n\n")
		sb.WriteString("Notes:")
	default:
		sb.WriteString("Based on the following context from the document, answer the user's question.\n\n")
		fmt.Fprintf(&sb, "Context:\n%s\n\n", context)
		fmt.Fprintf(&sb, "Question: %s\n\n", question)
		sb.WriteString("Answer concisely and accurately based only on the provided context. ")
		sb.WriteString("If the answer is not in the context, say so.")
	}

	return sb.String()
}

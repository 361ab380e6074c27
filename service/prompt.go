package service

import (
	"fmt"
	"strings"

	"github.com/tieubaoca/reporto-be/types"
)

const historyWindow = 4

const documentPersonaTemplate = `You are a helpful AI medical assistant with access to the user's medical documents. 

IMPORTANT FORMATTING GUIDELINES:
- Keep responses concise and well-organized
- Use clear sections with headers when discussing multiple points
- Use bullet points sparingly and only when listing specific items
- Avoid overly long explanations - be direct and helpful
- For blood test results, present changes in a clean, easy-to-read format

--- DOCUMENT CONTEXT ---
%s
--- END OF CONTEXT ---

Use the document context as your primary source but supplement with general medical knowledge to provide complete, helpful answers.`

const genericPersona = `You are a helpful AI medical assistant. Provide clear, concise, and well-formatted responses. Keep your answers focused and easy to read.`

const titlePromptTemplate = `Generate a short, descriptive title (max 4-5 words) for this conversation based on the first exchange:

User: %s
Assistant: %s

Return only the title, nothing else.`

// BuildChatPrompt assembles the persona header, the trailing conversation
// history window and the current question into one prompt. A nil contextText
// selects the generic persona; an empty but non-nil one still renders the
// document block.
func BuildChatPrompt(question string, contextText *string, history []types.Message) string {
	parts := make([]string, 0, historyWindow+4)

	if contextText != nil {
		parts = append(parts, fmt.Sprintf(documentPersonaTemplate, *contextText))
	} else {
		parts = append(parts, genericPersona)
	}

	if len(history) > 0 {
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		parts = append(parts, "\n--- CONVERSATION HISTORY ---")
		for _, msg := range history {
			role := "Assistant"
			if msg.Role == types.RoleUser {
				role = "User"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", role, msg.Content))
		}
		parts = append(parts, "--- END OF HISTORY ---")
	}

	parts = append(parts, "\nUser's Current Question: "+question)
	return strings.Join(parts, "\n")
}

func buildTitlePrompt(firstUserMessage, firstAIMessage string) string {
	return fmt.Sprintf(titlePromptTemplate, firstUserMessage, firstAIMessage)
}

package assistant

import (
	"encoding/json"
	"fmt"
)

const promptTemplate = `You are a helpful AI assistant. Think step-by-step.
You can use tools: weather and Google search when needed.
Respond with JSON structure like:
{
  "step": "plan" | "action" | "observe" | "output",
  "content": "text",
  "function": "tool_name_if_needed",
  "input": "input_for_tool"
}
Tools:
%s
`

// BuildSystemPrompt renders the tool-aware system prompt, embedding the
// registry's name to description mapping as indented JSON.
func BuildSystemPrompt(descriptions map[string]string) string {
	data, err := json.MarshalIndent(descriptions, "", "    ")
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf(promptTemplate, data)
}

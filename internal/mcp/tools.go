package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var categoryProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"words", "foods", "moods"},
	"description": "Tag category: descriptive words, foods, or moods",
}

func tagListProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": description,
	}
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "list_options",
		Description: "List the tags that can be selected in each category (words, foods, moods).",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "toggle_tag",
		Description: "Select a tag, or deselect it if it is already selected, then return the updated wine recommendations.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"category": categoryProperty,
				"tag": map[string]interface{}{
					"type":        "string",
					"description": "Tag to toggle; must be one of the category's options",
				},
			},
			"required": []string{"category", "tag"},
		},
	},
	{
		Name:        "select_tags",
		Description: "Add tags to the current selection (already-selected tags stay selected) and return the updated recommendations.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"words": tagListProperty("Descriptive words to select"),
				"foods": tagListProperty("Foods to select"),
				"moods": tagListProperty("Moods to select"),
			},
		},
	},
	{
		Name:        "reset_selection",
		Description: "Clear every selected tag in all categories.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_recommendations",
		Description: "Get wines ranked by how many of the selected tags they match. State is 'idle' when nothing is selected, 'no_matches' when no wine matches, 'matched' otherwise.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "list_wines",
		Description: "List every wine in the catalog.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_wine",
		Description: "Get full details for one wine, including its tags.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "integer",
					"description": "Wine ID",
				},
			},
			"required": []string{"id"},
		},
	},
}

package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "winematch://options",
		Name:        "Selectable Tags",
		Description: "Descriptive words, foods and moods that can be selected",
		MimeType:    "text/plain",
	},
	{
		URI:         "winematch://selection",
		Name:        "Current Selection",
		Description: "Selected tags and the wines they currently match",
		MimeType:    "text/plain",
	},
	{
		URI:         "winematch://catalog",
		Name:        "Wine Catalog",
		Description: "Every wine that can be recommended",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

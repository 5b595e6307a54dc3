package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the page image",
	}
}

func linesProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Detected text lines. Each line has pts (four [x, y] corners in consistent winding order), optional text and optional prob (detector confidence 0-1). Lines are identified by their position in this array.",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"pts": map[string]interface{}{
					"type":     "array",
					"minItems": 4,
					"maxItems": 4,
					"items": map[string]interface{}{
						"type":     "array",
						"items":    map[string]interface{}{"type": "number"},
						"minItems": 2,
						"maxItems": 2,
					},
				},
				"text": map[string]interface{}{"type": "string"},
				"prob": map[string]interface{}{"type": "number"},
			},
			"required": []string{"pts"},
		},
	}
}

func refineProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Split regions at outlier gaps after grouping. Defaults to the server configuration.",
	}
}

func detectProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"min_confidence": map[string]interface{}{
			"type":        "number",
			"description": "Drop lines scoring below this (0-1). Defaults to the server configuration.",
		},
		"vertical": map[string]interface{}{
			"type":        "boolean",
			"description": "Look for top-to-bottom text columns instead of rows",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load a page image and return its dimensions and format. The page stays cached for later calls on the same path.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{"path": pathProperty()},
				"required":   []string{"path"},
			},
		},
		{
			Name:        "textline_merge",
			Description: "Group detected text-line quadrilaterals into reading regions (paragraphs, columns, captions). Returns regions in page order, each with its member line indices in reading order, bounds, orientation, font size, tilt and confidence. Every input line appears in exactly one region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines": linesProperty(),
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Page width in the lines' coordinate space",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Page height in the lines' coordinate space",
					},
					"refine": refineProperty(),
				},
				"required": []string{"lines", "width", "height"},
			},
		},
		{
			Name:        "textline_detect",
			Description: "Find text lines in a page image with an edge-density heuristic. Returns axis-aligned line quadrilaterals with confidence scores, ready for textline_merge.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "textline_regions",
			Description: "Detect text lines in a page image and group them into reading regions in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": func() map[string]interface{} {
					p := detectProperties()
					p["refine"] = refineProperty()
					return p
				}(),
				"required": []string{"path"},
			},
		},
		{
			Name:        "textline_ocr",
			Description: "Recognize the text of each reading region with Tesseract, line by line in reading order. Lines are detected when not given. Requires Tesseract to be installed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"lines": linesProperty(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code for horizontal regions (e.g. 'eng', 'jpn')",
					},
					"vertical_language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code for vertical regions (e.g. 'jpn_vert')",
					},
					"refine": refineProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "textline_render",
			Description: "Draw lines and their reading regions over the page image (or a blank page) and return the result as base64-encoded PNG. Each region gets its own colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Page image to draw on. When omitted, width and height select a blank page.",
					},
					"width":  map[string]interface{}{"type": "number"},
					"height": map[string]interface{}{"type": "number"},
					"lines":  linesProperty(),
					"refine": refineProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Output scale factor. Default 1.0",
						"default":     1.0,
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw region numbers",
						"default":     true,
					},
					"order": map[string]interface{}{
						"type":        "boolean",
						"description": "Connect lines in reading order",
						"default":     true,
					},
				},
				"required": []string{"lines"},
			},
		},
	}
}

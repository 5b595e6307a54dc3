// Package server exposes line clustering as MCP (Model Context Protocol)
// tools.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests, one per line
//   - Output: JSON-RPC responses, one per line
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// The same tools are served over HTTP by Handler for clients that cannot
// spawn a subprocess: POST /v1/tools/{name} with the arguments as the body.
//
// # Tools
//
//   - image_load: Load a page image and report its size and format
//   - textline_merge: Group line quadrilaterals into reading regions
//   - textline_detect: Find text lines in a page image
//   - textline_regions: Detect lines and group them in one call
//   - textline_ocr: Recognize the text of each region in reading order
//   - textline_render: Draw regions over the page as a PNG
//
// # Coordinates
//
// Lines are four [x, y] corners in page pixels with the origin at the
// top-left, in the same winding order for every line.
//
// # Errors
//
// Malformed requests get JSON-RPC error -32602. Tool failures get -32000
// with the underlying message in the error data. A result that cannot be
// encoded gets -32603.
//
// # Logging
//
// Logs go to stderr since stdout carries the protocol. Every tool call is
// logged with a request id.
package server

package api

// ReportKind is one entry of the kind listing endpoint.
type ReportKind struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ExportFile mirrors the exporter's output for JSON responses.
type ExportFile struct {
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
	Filename string `json:"filename"`
}

// Error is the uniform error envelope.
type Error struct {
	Error string `json:"error"`
}

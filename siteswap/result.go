package siteswap

// Result holds the successful outcome of rendering one block.
type Result struct {
	URL          string    `json:"url"`
	Query        string    `json:"query"`
	DisplayWidth float64   `json:"displayWidth"`
	Pattern      string    `json:"pattern"`
	Sent         Params    `json:"sent"`
	Elided       []Elision `json:"elided,omitempty"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// ElisionReason explains why a parameter was left out of the request.
type ElisionReason string

const (
	// ElidedDefault marks a value equal to the service default.
	ElidedDefault ElisionReason = "default"
	// ElidedInternal marks a key the service does not understand.
	ElidedInternal ElisionReason = "internal"
)

// Elision is a parameter removed from the request.
type Elision struct {
	Param
	Reason ElisionReason `json:"reason"`
}

// WarningType categorizes render warnings.
type WarningType string

const (
	WarningUnknownParameter WarningType = "unknown_parameter"
	WarningIgnoredParameter WarningType = "ignored_parameter"
	WarningInvalidValue     WarningType = "invalid_value"
	WarningUnresolvedImage  WarningType = "unresolved_image"
)

// Warning represents a non-fatal issue encountered while rendering.
type Warning struct {
	Type    WarningType `json:"type"`
	Key     string      `json:"key,omitempty"`
	Line    int         `json:"line,omitempty"` // set by document renderers
	Message string      `json:"message"`
}

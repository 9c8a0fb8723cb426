package main

// CLIResult is the top-level JSON envelope for all listing commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLIObject is a JSON-friendly object representation.
type CLIObject struct {
	Kind  string `json:"kind"`
	Index uint32 `json:"index"`
	Name  string `json:"name"`
	File  string `json:"file,omitempty"`
	Line  int    `json:"line"`
	Page  string `json:"page"`
}

// CLILookup describes how one expression resolves.
type CLILookup struct {
	Field    string     `json:"field"`
	Text     string     `json:"text"`
	Expanded string     `json:"expanded"`
	Outcome  string     `json:"outcome"`
	Target   *CLIObject `json:"target,omitempty"`
}

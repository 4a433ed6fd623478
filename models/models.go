package models

// WorkConfig describes one logical work to be extracted from a combined
// corpus file: the regex that matches its content on any given page, and the
// filename its output should be written to.
type WorkConfig struct {
	Pattern  string `json:"pattern" yaml:"pattern"`
	Filename string `json:"filename" yaml:"filename"`
}

// Work is a work descriptor during a split run: its configuration plus the
// page fragments accumulated by the splitter, one per page in source order.
type Work struct {
	WorkConfig
	Fragments []string `json:"-" yaml:"-"`
}

// SplitJob is the full configuration for one split run.
type SplitJob struct {
	Source string       `json:"source" yaml:"source"`
	OutDir string       `json:"outdir" yaml:"outdir"`
	Clean  bool         `json:"clean" yaml:"clean"`
	Works  []WorkConfig `json:"works" yaml:"works"`
}

// WorkReport summarizes one output work after a split run.
type WorkReport struct {
	Filename      string `json:"filename"`
	FragmentCount int    `json:"fragment_count"`
	CharCount     int    `json:"char_count"`
}

// SplitReport summarizes a completed split run, including the advisory
// character-count consistency check.
type SplitReport struct {
	Source          string       `json:"source"`
	OutDir          string       `json:"outdir"`
	PageCount       int          `json:"page_count"`
	SourceCharCount int          `json:"source_char_count"`
	OutputCharCount int          `json:"output_char_count"`
	Cleaned         bool         `json:"cleaned"`
	Works           []WorkReport `json:"works"`
}

// RunInfo is a persisted summary of a past split run.
type RunInfo struct {
	RunID           string `json:"run_id"`
	Source          string `json:"source"`
	OutDir          string `json:"outdir"`
	PageCount       int    `json:"page_count"`
	SourceCharCount int    `json:"source_char_count"`
	OutputCharCount int    `json:"output_char_count"`
	Cleaned         bool   `json:"cleaned"`
	CreatedAt       string `json:"created_at"`
}

package api

import "vcshell/internal/presets"

// PresetListResponse wraps the resolved display entries.
type PresetListResponse struct {
	Presets []presets.DisplayEntry `json:"presets"`
}

// PresetDetail describes a single preset definition.
type PresetDetail struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	VideoCodec  string   `json:"videoCodec,omitempty"`
	CRF         uint     `json:"crf"`
	Speed       string   `json:"speed,omitempty"`
	Description string   `json:"description"`
	Args        []string `json:"args"`
}

// RunRequest carries the argument list for one invocation.
type RunRequest struct {
	Args []string `json:"args"`
}

// RunResponse carries the decoded stdout of a successful invocation.
type RunResponse struct {
	Output string `json:"output"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// CheckResult reports a single preflight check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// StatusResponse aggregates bridge readiness for API consumers.
type StatusResponse struct {
	Ready        bool               `json:"ready"`
	PID          int                `json:"pid"`
	PresetsFile  string             `json:"presetsFile"`
	Compressor   string             `json:"compressor"`
	Dependencies []DependencyStatus `json:"dependencies"`
	Checks       []CheckResult      `json:"checks"`
}

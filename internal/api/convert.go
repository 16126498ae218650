package api

import (
	"vcshell/internal/deps"
	"vcshell/internal/preflight"
	"vcshell/internal/presets"
)

// FromDefinition converts a preset definition into its transport form.
func FromDefinition(def presets.Definition) PresetDetail {
	return PresetDetail{
		Name:        def.Name,
		Label:       presets.FormatLabel(def.Name),
		VideoCodec:  def.VideoCodec,
		CRF:         def.CRF,
		Speed:       def.Speed,
		Description: def.Description,
		Args:        presets.BuildFFArgs(def),
	}
}

// FromDependencies converts dependency statuses, preserving order.
func FromDependencies(statuses []deps.Status) []DependencyStatus {
	out := make([]DependencyStatus, len(statuses))
	for i, dep := range statuses {
		out[i] = DependencyStatus{
			Name:        dep.Name,
			Command:     dep.Command,
			Description: dep.Description,
			Optional:    dep.Optional,
			Available:   dep.Available,
			Detail:      dep.Detail,
		}
	}
	return out
}

// FromPreflight converts preflight results, preserving order.
func FromPreflight(results []preflight.Result) []CheckResult {
	out := make([]CheckResult, len(results))
	for i, r := range results {
		out[i] = CheckResult{Name: r.Name, Passed: r.Passed, Detail: r.Detail}
	}
	return out
}

package domain

import "time"

// BuildInfo represents the recorded outcome of a target build.
type BuildInfo struct {
	TargetName string    `json:"target_name,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}

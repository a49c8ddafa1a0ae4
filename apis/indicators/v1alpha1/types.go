/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// HypervolumeArgs holds the arguments used to configure the hypervolume indicator.
type HypervolumeArgs struct {
	metav1.TypeMeta `json:",inline"`

	// RefPoint is the reference point. When omitted it is the per-objective
	// maximum of the Pareto front.
	RefPoint []float64 `json:"refPoint,omitempty"`

	// ParetoFrontFile points to a whitespace separated matrix holding a sample
	// of the Pareto front, one point per line.
	ParetoFrontFile string `json:"paretoFrontFile,omitempty"`

	// Ideal overrides the ideal point derived from the Pareto front
	Ideal []float64 `json:"ideal,omitempty"`

	// Nadir overrides the nadir point derived from the Pareto front
	Nadir []float64 `json:"nadir,omitempty"`

	// NDS filters the evaluated points to their non-dominated subset
	NDS *bool `json:"nds,omitempty"`

	// NormRefPoint normalizes the reference point like the evaluated points
	NormRefPoint *bool `json:"normRefPoint,omitempty"`

	// Command, when set, delegates the computation to an external executable
	Command *HypervolumeCommand `json:"command,omitempty"`
}

// HypervolumeCommand configures the external hypervolume executable.
type HypervolumeCommand struct {
	// Path to the compiled executable
	Path string `json:"path"`

	// Timeout bounds a single invocation
	Timeout *metav1.Duration `json:"timeout,omitempty"`
}

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// ReferenceDirectionsArgs holds the arguments used to generate reference directions.
type ReferenceDirectionsArgs struct {
	metav1.TypeMeta `json:",inline"`

	NumObjectives int32 `json:"numObjectives"`
	NumDirections int32 `json:"numDirections"`

	// MaxSections bounds the lattice resolution search
	MaxSections *int32 `json:"maxSections,omitempty"`

	// FillUp appends random directions when the lattice comes up short
	FillUp *bool `json:"fillUp,omitempty"`

	// Seed makes the random fill-up reproducible. A random seed is used when omitted.
	Seed *uint64 `json:"seed,omitempty"`
}

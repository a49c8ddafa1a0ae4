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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

const (
	HypervolumeArgsKind         = "HypervolumeArgs"
	ReferenceDirectionsArgsKind = "ReferenceDirectionsArgs"
)

// LoadHypervolumeArgs decodes, defaults and validates HypervolumeArgs from YAML or JSON.
func LoadHypervolumeArgs(data []byte) (*HypervolumeArgs, error) {
	args := &HypervolumeArgs{}
	if err := decode(data, args, HypervolumeArgsKind); err != nil {
		return nil, err
	}
	SetDefaults_HypervolumeArgs(args)
	if err := ValidateHypervolumeArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

// LoadReferenceDirectionsArgs decodes, defaults and validates ReferenceDirectionsArgs from YAML or JSON.
func LoadReferenceDirectionsArgs(data []byte) (*ReferenceDirectionsArgs, error) {
	args := &ReferenceDirectionsArgs{}
	if err := decode(data, args, ReferenceDirectionsArgsKind); err != nil {
		return nil, err
	}
	SetDefaults_ReferenceDirectionsArgs(args)
	if err := ValidateReferenceDirectionsArgs(args); err != nil {
		return nil, err
	}
	return args, nil
}

// LoadFile reads the file at path and passes its content to load.
func LoadFile[T any](path string, load func([]byte) (T, error)) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, err
	}
	args, err := load(data)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("loading %s: %w", path, err)
	}
	return args, nil
}

type kinded interface {
	apiVersionAndKind() (string, string)
}

func decode(data []byte, obj kinded, kind string) error {
	if err := yaml.UnmarshalStrict(data, obj); err != nil {
		return err
	}
	apiVersion, gotKind := obj.apiVersionAndKind()
	if gotKind != "" && gotKind != kind {
		return fmt.Errorf("want kind %s, got %s", kind, gotKind)
	}
	if apiVersion != "" && apiVersion != SchemeGroupVersion.String() {
		return fmt.Errorf("want apiVersion %s, got %s", SchemeGroupVersion.String(), apiVersion)
	}
	return nil
}

func (in *HypervolumeArgs) apiVersionAndKind() (string, string) {
	return in.APIVersion, in.Kind
}

func (in *ReferenceDirectionsArgs) apiVersionAndKind() (string, string) {
	return in.APIVersion, in.Kind
}

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
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

var (
	defaultNDS            = true
	defaultNormRefPoint   = true
	defaultMaxSections    = int32(100)
	defaultFillUp         = true
	defaultCommandTimeout = metav1.Duration{Duration: time.Minute}
)

// SetDefaults_HypervolumeArgs sets the default parameters for the hypervolume indicator.
func SetDefaults_HypervolumeArgs(obj *HypervolumeArgs) {
	if obj.NDS == nil {
		obj.NDS = ptr.To(defaultNDS)
	}
	if obj.NormRefPoint == nil {
		obj.NormRefPoint = ptr.To(defaultNormRefPoint)
	}
	if obj.Command != nil && obj.Command.Timeout == nil {
		obj.Command.Timeout = ptr.To(defaultCommandTimeout)
	}
}

// SetDefaults_ReferenceDirectionsArgs sets the default parameters for reference direction generation.
func SetDefaults_ReferenceDirectionsArgs(obj *ReferenceDirectionsArgs) {
	if obj.MaxSections == nil {
		obj.MaxSections = ptr.To(defaultMaxSections)
	}
	if obj.FillUp == nil {
		obj.FillUp = ptr.To(defaultFillUp)
	}
}

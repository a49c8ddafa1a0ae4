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
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ValidateHypervolumeArgs validates that HypervolumeArgs are correct.
func ValidateHypervolumeArgs(args *HypervolumeArgs) error {
	var allErrs field.ErrorList

	if len(args.RefPoint) == 0 && args.ParetoFrontFile == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("refPoint"), "a reference point or a Pareto front file is needed"))
	}
	if n := len(args.RefPoint); n > 0 {
		if len(args.Ideal) > 0 && len(args.Ideal) != n {
			allErrs = append(allErrs, field.Invalid(field.NewPath("ideal"), args.Ideal, "must have as many objectives as refPoint"))
		}
		if len(args.Nadir) > 0 && len(args.Nadir) != n {
			allErrs = append(allErrs, field.Invalid(field.NewPath("nadir"), args.Nadir, "must have as many objectives as refPoint"))
		}
	}
	if args.Command != nil {
		cmdPath := field.NewPath("command")
		if args.Command.Path == "" {
			allErrs = append(allErrs, field.Required(cmdPath.Child("path"), ""))
		}
		if args.Command.Timeout != nil && args.Command.Timeout.Duration <= 0 {
			allErrs = append(allErrs, field.Invalid(cmdPath.Child("timeout"), args.Command.Timeout.Duration.String(), "must be positive"))
		}
	}

	return allErrs.ToAggregate()
}

// ValidateReferenceDirectionsArgs validates that ReferenceDirectionsArgs are correct.
func ValidateReferenceDirectionsArgs(args *ReferenceDirectionsArgs) error {
	var allErrs field.ErrorList

	if args.NumObjectives < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("numObjectives"), args.NumObjectives, "no decomposition possible with fewer than 2 objectives"))
	}
	if args.NumDirections < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("numDirections"), args.NumDirections, "must be positive"))
	}
	if args.MaxSections != nil && *args.MaxSections < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("maxSections"), *args.MaxSections, "must be positive"))
	}

	return allErrs.ToAggregate()
}

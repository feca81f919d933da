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
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	// GroupName is the group of the NSGA-II configuration types.
	GroupName = "config.nsga2.io"
	// Kind is the kind of NSGAIIArgs documents.
	Kind = "NSGAIIArgs"
)

// SchemeGroupVersion is the group version NSGAIIArgs documents are written in.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// NSGAIIArgs holds the arguments used to configure a NSGA-II run.
// +k8s:deepcopy-gen=true
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type NSGAIIArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the name of a registered benchmark problem, e.g. SCH or ZDT1.
	Problem string `json:"problem,omitempty"`
	// Dimensions is the number of decision variables.
	Dimensions int `json:"dimensions,omitempty"`
	// Bounds, when set, replaces the bounds of every decision variable of the
	// problem. Only SCH accepts it, the ZDT problems are defined on [0, 1].
	Bounds *Bounds `json:"bounds,omitempty"`

	PopulationSize       *int     `json:"populationSize,omitempty"`
	MaxGenerations       *int     `json:"maxGenerations,omitempty"`
	CrossoverProbability *float64 `json:"crossoverProbability,omitempty"`
	BitsPerParam         int      `json:"bitsPerParam,omitempty"`
	Seed                 *uint64  `json:"seed,omitempty"`

	// Dominance is either Strict or Weak.
	Dominance        string `json:"dominance,omitempty"`
	BoundaryInfinity bool   `json:"boundaryInfinity,omitempty"`
	CacheEvaluations bool   `json:"cacheEvaluations,omitempty"`
}

// Bounds of one decision variable.
// +k8s:deepcopy-gen=true
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

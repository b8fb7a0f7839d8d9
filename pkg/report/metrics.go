// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Operation metrics
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "versiontheca_operations_total",
			Help: "Total number of version operations by operation, dialect and outcome",
		},
		[]string{"operation", "dialect", "outcome"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "versiontheca_operation_duration_seconds",
			Help:    "Duration of version operations in seconds",
			Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
		},
		[]string{"operation", "dialect"},
	)

	versionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "versiontheca_versions_processed_total",
			Help: "Total number of version strings processed",
		},
		[]string{"operation", "dialect"},
	)
)

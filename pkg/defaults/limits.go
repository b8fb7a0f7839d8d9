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

package defaults

// Service limits.
const (
	// ServerPort is the default listening port.
	ServerPort = 8080

	// RateLimit is the sustained number of requests per second.
	RateLimit = 100

	// RateLimitBurst is the number of requests allowed above RateLimit.
	RateLimitBurst = 200

	// MaxBulkRequests caps the number of versions in one sort or
	// canonicalize request.
	MaxBulkRequests = 1000

	// MaxRequestBodyBytes caps the size of a request body.
	MaxRequestBodyBytes = 1 << 20
)

// Input limits.
const (
	// MaxFileBytes caps the size of a batch version file.
	MaxFileBytes = 10 << 20

	// SortConcurrency is the number of goroutines parsing a batch.
	SortConcurrency = 8
)

// VersionType is the dialect used when a request or command names none.
const VersionType = "debian"

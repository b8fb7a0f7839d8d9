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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"HandlerTimeout", HandlerTimeout, 1 * time.Second, 30 * time.Second},
		{"BulkHandlerTimeout", BulkHandlerTimeout, 10 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 10 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},

		// CLI timeouts
		{"CLIFileTimeout", CLIFileTimeout, 10 * time.Second, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if HandlerTimeout >= ServerWriteTimeout {
		t.Errorf("HandlerTimeout (%v) should be less than ServerWriteTimeout (%v)",
			HandlerTimeout, ServerWriteTimeout)
	}
	if BulkHandlerTimeout > ServerWriteTimeout {
		t.Errorf("BulkHandlerTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			BulkHandlerTimeout, ServerWriteTimeout)
	}
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestLimits(t *testing.T) {
	if RateLimitBurst < RateLimit {
		t.Errorf("RateLimitBurst (%d) should be at least RateLimit (%d)", RateLimitBurst, RateLimit)
	}
	if MaxBulkRequests <= 0 || SortConcurrency <= 0 {
		t.Error("bulk limits must be positive")
	}
	if MaxRequestBodyBytes > MaxFileBytes {
		t.Errorf("MaxRequestBodyBytes (%d) should not exceed MaxFileBytes (%d)", MaxRequestBodyBytes, MaxFileBytes)
	}
}

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

// Package serializer writes versiontheca reports and reads batch version files.
//
// # Supported Formats
//
// JSON and YAML are supported in both directions. Table output is write-only
// and prints one row per leaf field, keyed by its dotted path:
//
//	FIELD          VALUE
//	-----          -----
//	versions.[0]   1.0
//	versions.[1]   1.10
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// # Reading
//
// A batch file is either a bare list or an object with a versions list, in
// a local file or behind an http(s) URL:
//
//	versions, err := serializer.ReadVersions(ctx, "https://example.com/versions.yaml")
//
// # HTTP
//
// RespondJSON buffers the encoding before writing the status so that a
// failed encode never produces a partial response.
package serializer

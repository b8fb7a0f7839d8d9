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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// VersionList is the content of a batch version file: either a bare list of
// strings or an object with a "versions" list.
type VersionList []string

type versionDocument struct {
	Versions []string `json:"versions" yaml:"versions"`
}

// UnmarshalJSON accepts both document shapes.
func (l *VersionList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var doc versionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("expected a list of versions or an object with a versions list: %w", err)
	}
	*l = doc.Versions
	return nil
}

// UnmarshalYAML accepts both document shapes.
func (l *VersionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
	case yaml.MappingNode:
		var doc versionDocument
		if err := node.Decode(&doc); err != nil {
			return err
		}
		*l = doc.Versions
	default:
		return fmt.Errorf("expected a list of versions or an object with a versions list, got line %d", node.Line)
	}
	return nil
}

// ReadVersions loads a batch version file from a path or URL.
func ReadVersions(ctx context.Context, filePath string) ([]string, error) {
	l, err := FromFile[VersionList](ctx, filePath)
	if err != nil {
		return nil, err
	}
	return *l, nil
}

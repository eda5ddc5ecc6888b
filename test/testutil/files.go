// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfigFile writes a config file with the given contents into dir
// and returns its path.
func WriteConfigFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return path
}

// WriteHomeConfig creates .trello/config.yaml under the given home
// directory, the fallback location the CLI searches after the current
// directory.
func WriteHomeConfig(t *testing.T, home, contents string) string {
	t.Helper()

	dir := filepath.Join(home, ".trello")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	return WriteConfigFile(t, dir, "config.yaml", contents)
}

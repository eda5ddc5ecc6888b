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
	"strings"
	"testing"
)

// AssertRecordLines validates that stdout consists of exactly the given
// records, one per line, in order. Called with no records it asserts
// empty output.
func AssertRecordLines(t *testing.T, stdout string, want ...string) {
	t.Helper()

	var got []string
	if stdout != "" {
		got = strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d output lines, got %d:\n%s", len(want), len(got), stdout)
	}

	for i, line := range got {
		if line != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i+1, want[i], line)
		}
	}
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, got: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string to NOT contain %q, got: %s", needle, haystack)
	}
}

// AssertEqual compares two values and fails if they're not equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("Got %v, want %v", got, want)
	}
}

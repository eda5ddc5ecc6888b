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

package output

// RecordWriter defines the interface for writing result records. This
// abstraction allows different output formats to be implemented without
// changing the command logic, and lets tests capture records in memory.
type RecordWriter interface {
	// WriteRecord writes a single record to the output.
	// The record should be immediately flushed to avoid memory accumulation.
	WriteRecord(fields ...string) error
}

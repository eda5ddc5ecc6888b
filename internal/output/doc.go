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

// Package output provides utilities for writing line-oriented records to
// stdout. Each record is a sequence of fields joined by single spaces and
// terminated by a newline, which keeps the format trivially consumable by
// cut, awk, and shell loops.
//
// The primary type is Writer, which provides thread-safe writing of records
// to any io.Writer. Records are flushed as they are written; nothing is
// accumulated in memory.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	for _, b := range boards {
//	    if err := w.WriteRecord(b.ID, b.Name); err != nil {
//	        return err
//	    }
//	}
package output

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

package trello

import (
	"fmt"

	clierrors "github.com/sirseerhq/trello-cli/internal/errors"
)

// APIError describes a non-200 answer from the Trello API. The raw
// response body is preserved verbatim so callers see exactly what the
// API said, including auth failures and malformed-id complaints.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("Trello API returned status code %d. response body: %s", e.StatusCode, e.Body)
}

// Is reports whether target is the API request sentinel, so callers can
// classify any APIError with errors.Is(err, errors.ErrAPIRequest).
func (e *APIError) Is(target error) bool {
	return target == clierrors.ErrAPIRequest
}

// Copyright 2015 Google Inc.
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

package yang

import (
	"fmt"
	"strings"
)

// errdiffSubstring compares got against wantSubstr, where wantSubstr is
// either "" (no error expected) or a substring that must appear in got's
// error message. It returns a non-empty description of the mismatch, or ""
// if got matches the expectation.
func errdiffSubstring(got error, wantSubstr string) string {
	if got == nil {
		if wantSubstr == "" {
			return ""
		}
		return fmt.Sprintf("got no error, want error containing %q", wantSubstr)
	}
	if wantSubstr == "" {
		return fmt.Sprintf("got error %q, want no error", got)
	}
	if !strings.Contains(got.Error(), wantSubstr) {
		return fmt.Sprintf("got error %q, want error containing %q", got, wantSubstr)
	}
	return ""
}

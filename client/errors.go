// Copyright 2026 the hawkbit-client authors
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package client

import "fmt"

// DecodeError reports a response body that did not decode into the
// resource a protocol operation required: malformed JSON, a non-success
// fetch status, or a structurally broken document. The operation that
// produced it returned no partial model.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed server response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed server response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LinkNotFoundError reports a download request for a link relation the
// artifact does not carry. It is returned before any network access.
type LinkNotFoundError struct {
	Relation string
}

func (e *LinkNotFoundError) Error() string {
	return fmt.Sprintf("artifact has no %q link", e.Relation)
}

// DownloadError reports a non-success HTTP status on an artifact
// download; the transport resources were already released when it is
// returned.
type DownloadError struct {
	Code int
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("artifact download failed with status %d", e.Code)
}

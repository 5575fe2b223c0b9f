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

package model

// DownloadLink is the link relation a server attaches to an artifact's
// primary download location.
const DownloadLink = "download"

// Artifact is one downloadable file inside a deployment chunk. Values are
// immutable after construction; they are produced by decoding a chunk's
// artifact list and discarded once the deployment has been handled.
type Artifact struct {
	filename string
	size     uint64
	hashes   map[string]string
	links    map[string]string
}

func NewArtifact(filename string, size uint64, hashes, links map[string]string) Artifact {
	a := Artifact{
		filename: filename,
		size:     size,
		hashes:   make(map[string]string, len(hashes)),
		links:    make(map[string]string, len(links)),
	}
	for k, v := range hashes {
		a.hashes[k] = v
	}
	for k, v := range links {
		a.links[k] = v
	}
	return a
}

func (a Artifact) Filename() string {
	return a.filename
}

// Size is the advertised byte size, 0 when the server did not send one.
func (a Artifact) Size() uint64 {
	return a.size
}

// Hashes maps hash algorithm names to hex digests. The returned map must
// not be modified.
func (a Artifact) Hashes() map[string]string {
	return a.hashes
}

// Links maps link relation names to URLs. The returned map must not be
// modified.
func (a Artifact) Links() map[string]string {
	return a.links
}

// Link resolves a relation name to its URL. The second return value is
// false when the artifact carries no such relation.
func (a Artifact) Link(relation string) (string, bool) {
	href, ok := a.links[relation]
	return href, ok
}

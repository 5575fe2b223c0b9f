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

// Chunk is one software component of a deployment, carrying the artifacts
// to install for it. Artifact order matches the server's list.
type Chunk struct {
	part      string
	version   string
	name      string
	artifacts []Artifact
}

func NewChunk(part, version, name string, artifacts []Artifact) Chunk {
	c := Chunk{
		part:      part,
		version:   version,
		name:      name,
		artifacts: make([]Artifact, len(artifacts)),
	}
	copy(c.artifacts, artifacts)
	return c
}

func (c Chunk) Part() string {
	return c.part
}

func (c Chunk) Version() string {
	return c.version
}

func (c Chunk) Name() string {
	return c.name
}

// Artifacts returns the chunk's artifacts in server order. The returned
// slice must not be modified.
func (c Chunk) Artifacts() []Artifact {
	return c.artifacts
}

// Deployment is a pending software update the server asked the device to
// apply. Its id correlates all feedback sent for the action.
type Deployment struct {
	id       string
	download string
	update   string
	chunks   []Chunk
}

func NewDeployment(id, download, update string, chunks []Chunk) Deployment {
	d := Deployment{
		id:       id,
		download: download,
		update:   update,
		chunks:   make([]Chunk, len(chunks)),
	}
	copy(d.chunks, chunks)
	return d
}

// ID is the server-issued action identifier.
func (d Deployment) ID() string {
	return d.id
}

// Download is the server's handling hint for the download phase, e.g.
// "forced" or "attempt".
func (d Deployment) Download() string {
	return d.download
}

// Update is the server's handling hint for the update phase.
func (d Deployment) Update() string {
	return d.update
}

// Chunks returns the deployment's chunks in server order. The returned
// slice must not be modified.
func (d Deployment) Chunks() []Chunk {
	return d.chunks
}

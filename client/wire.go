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

import (
	"fmt"

	"github.com/edgemetric/hawkbit-client/model"
)

// Wire shapes of the DDI resources. Field names are part of the server
// contract; see the hawkBit DDI root controller API.

type pollResource struct {
	Links map[string]halLink `json:"_links"`
}

type halLink struct {
	Href string `json:"href"`
}

// link returns the href of a relation, "" when the relation is absent. An
// empty href and an absent relation are equivalent at the poll layer.
func (p *pollResource) link(relation string) string {
	return p.Links[relation].Href
}

type deploymentResource struct {
	ID         string         `json:"id"`
	Deployment deploymentSpec `json:"deployment"`
}

type deploymentSpec struct {
	Download string          `json:"download"`
	Update   string          `json:"update"`
	Chunks   []chunkResource `json:"chunks"`
}

type chunkResource struct {
	Part      string             `json:"part"`
	Version   string             `json:"version"`
	Name      string             `json:"name"`
	Artifacts []artifactResource `json:"artifacts"`
}

type artifactResource struct {
	Filename string                  `json:"filename"`
	Size     uint64                  `json:"size"`
	Hashes   map[string]interface{}  `json:"hashes"`
	Links    map[string]artifactLink `json:"_links"`
}

// artifactLink distinguishes a missing href from an empty one: artifact
// link entries must carry an href, unlike poll links.
type artifactLink struct {
	Href *string `json:"href"`
}

type cancelResource struct {
	CancelAction cancelAction `json:"cancelAction"`
}

type cancelAction struct {
	StopID string `json:"stopId"`
}

func (r *deploymentResource) toModel() (model.Deployment, error) {
	chunks := make([]model.Chunk, 0, len(r.Deployment.Chunks))
	for _, c := range r.Deployment.Chunks {
		artifacts := make([]model.Artifact, 0, len(c.Artifacts))
		for _, a := range c.Artifacts {
			artifact, err := a.toModel()
			if err != nil {
				return model.Deployment{}, err
			}
			artifacts = append(artifacts, artifact)
		}
		chunks = append(chunks, model.NewChunk(c.Part, c.Version, c.Name, artifacts))
	}
	return model.NewDeployment(r.ID, r.Deployment.Download, r.Deployment.Update, chunks), nil
}

func (a *artifactResource) toModel() (model.Artifact, error) {
	// Non-string hash entries are dropped, string ones kept.
	hashes := make(map[string]string, len(a.Hashes))
	for name, value := range a.Hashes {
		if digest, ok := value.(string); ok {
			hashes[name] = digest
		}
	}

	links := make(map[string]string, len(a.Links))
	for relation, link := range a.Links {
		if link.Href == nil {
			return model.Artifact{}, &DecodeError{
				Reason: fmt.Sprintf("artifact link %q has no href", relation),
			}
		}
		links[relation] = *link.Href
	}

	return model.NewArtifact(a.Filename, a.Size, hashes, links), nil
}

package texture

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Hints maps image URIs from a scene description to the winning role
// among all material texture slots that reference them. URIs may be
// path-qualified; assets are matched against them by basename only.
type Hints map[string]Role

// gltfDocument mirrors the subset of the glTF 2.0 JSON schema the hint
// extractor reads. Every field the format makes optional is a pointer,
// so absence is distinguishable from a zero value and is always treated
// as "no hint".
type gltfDocument struct {
	Images    []gltfImage    `json:"images"`
	Textures  []gltfTexture  `json:"textures"`
	Materials []gltfMaterial `json:"materials"`
}

type gltfImage struct {
	URI string `json:"uri"`
}

type gltfTexture struct {
	Source *int `json:"source"`
}

type gltfMaterial struct {
	PBRMetallicRoughness *gltfPBR        `json:"pbrMetallicRoughness"`
	NormalTexture        *gltfTextureRef `json:"normalTexture"`
	OcclusionTexture     *gltfTextureRef `json:"occlusionTexture"`
	EmissiveTexture      *gltfTextureRef `json:"emissiveTexture"`
}

type gltfPBR struct {
	BaseColorTexture         *gltfTextureRef `json:"baseColorTexture"`
	MetallicRoughnessTexture *gltfTextureRef `json:"metallicRoughnessTexture"`
}

type gltfTextureRef struct {
	Index *int `json:"index"`
}

// ParseHints extracts per-image role hints from a glTF scene
// description. A missing file or a path without a .gltf extension
// yields empty hints and no error; malformed JSON is a configuration
// error and propagates.
func ParseHints(path string) (Hints, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	if strings.ToLower(filepath.Ext(path)) != ".gltf" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read scene description: %w", err)
	}
	var doc gltfDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("texture: parse scene description %s: %w", path, err)
	}
	return extractHints(&doc), nil
}

// extractHints builds the URI-to-role mapping from a parsed document.
func extractHints(doc *gltfDocument) Hints {
	// Texture index -> image URI. Entries with an absent or
	// out-of-range source are skipped.
	texURI := make(map[int]string, len(doc.Textures))
	for i, tex := range doc.Textures {
		if tex.Source == nil {
			continue
		}
		src := *tex.Source
		if src < 0 || src >= len(doc.Images) {
			continue
		}
		if uri := doc.Images[src].URI; uri != "" {
			texURI[i] = uri
		}
	}

	hints := Hints{}
	propose := func(ref *gltfTextureRef, role Role) {
		if ref == nil || ref.Index == nil {
			return
		}
		uri, ok := texURI[*ref.Index]
		if !ok {
			return
		}
		hints.mark(uri, role)
	}

	for _, mat := range doc.Materials {
		if pbr := mat.PBRMetallicRoughness; pbr != nil {
			propose(pbr.BaseColorTexture, RoleAlbedo)
			propose(pbr.MetallicRoughnessTexture, RoleMetallicRoughness)
		}
		propose(mat.NormalTexture, RoleNormal)
		propose(mat.OcclusionTexture, RoleOcclusion)
		propose(mat.EmissiveTexture, RoleEmissive)
	}
	return hints
}

// mark records a role proposal for uri. A proposal only overwrites an
// existing entry when its priority is strictly greater, which makes the
// merge idempotent and independent of material iteration order.
func (h Hints) mark(uri string, role Role) {
	if uri == "" {
		return
	}
	if old, ok := h[uri]; ok && rolePriority[role] <= rolePriority[old] {
		return
	}
	h[uri] = role
}

// Lookup scans the hint URIs for one whose basename equals filename,
// case-insensitively. The scan preserves the source semantics: hints
// are keyed by possibly path-qualified URIs while assets match by
// basename only.
func (h Hints) Lookup(filename string) (Role, bool) {
	name := strings.ToLower(filename)
	for uri, role := range h {
		// URIs use forward slashes regardless of host OS.
		if strings.ToLower(path.Base(uri)) == name {
			return role, true
		}
	}
	return 0, false
}

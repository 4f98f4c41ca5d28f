// Copyright (c) 2026 The slidec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package module

import (
	"archive/zip"
	"fmt"
	"io"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// componentFileName is the fixed component entry name spec.md §6 names:
// "a zip file with a slides_arrow.wasm entry (name fixed by current
// implementation)".
const componentFileName = "slides_arrow.wasm"

// manifestFileName is the module.yaml manifest spec.md §4.6 requires
// alongside the component binary.
const manifestFileName = "module.yaml"

// Manifest is module.yaml's schema.
type Manifest struct {
	Name       string `yaml:"name"`
	ABIVersion string `yaml:"abi_version"`
}

// OpenArchive reads path as a zip archive and extracts its manifest and
// component binary.
func OpenArchive(path string) (Manifest, []byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return Manifest{}, nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var manifest Manifest
	var wasmBytes []byte
	var haveManifest, haveComponent bool

	for _, f := range r.File {
		switch f.Name {
		case manifestFileName:
			data, err := readZipFile(f)
			if err != nil {
				return Manifest{}, nil, fmt.Errorf("read %s: %w", manifestFileName, err)
			}
			if err := yaml.Unmarshal(data, &manifest); err != nil {
				return Manifest{}, nil, fmt.Errorf("parse %s: %w", manifestFileName, err)
			}
			haveManifest = true
		case componentFileName:
			data, err := readZipFile(f)
			if err != nil {
				return Manifest{}, nil, fmt.Errorf("read %s: %w", componentFileName, err)
			}
			wasmBytes = data
			haveComponent = true
		}
	}

	if !haveManifest {
		return Manifest{}, nil, fmt.Errorf("archive missing %s", manifestFileName)
	}
	if !haveComponent {
		return Manifest{}, nil, fmt.Errorf("archive missing %s", componentFileName)
	}
	return manifest, wasmBytes, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// SupportedABI is the inclusive [Min, Max] range of module ABI versions
// the host accepts, validated with golang.org/x/mod/semver the way
// spec.md §4.6 specifies: "validates it with semver.IsValid /
// semver.Compare against the host's supported ABI range before
// instantiating".
type SupportedABI struct {
	Min, Max string
}

// DefaultSupportedABI is the range this build of the host understands.
func DefaultSupportedABI() SupportedABI {
	return SupportedABI{Min: "v1.0.0", Max: "v1.99.99"}
}

// Validate reports an error if version is not a valid semver string or
// falls outside abi's supported range.
func (abi SupportedABI) Validate(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid abi_version %q", version)
	}
	if semver.Compare(version, abi.Min) < 0 || semver.Compare(version, abi.Max) > 0 {
		return fmt.Errorf("abi_version %s outside supported range [%s, %s]", version, abi.Min, abi.Max)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// BuildInfo is the build-time metadata of a binary, injected with -ldflags.
// Empty values are reported as "N/A".
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo returns BuildInfo with every empty value replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// Lines renders the metadata the way both binaries print it on startup.
func (b BuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", b.Version),
		fmt.Sprintf("Build date: %s", b.Date),
		fmt.Sprintf("Build commit: %s", b.Commit),
	}
}

func orUnknown(value string) string {
	if value == "" {
		return buildInfoUnknown
	}
	return value
}

package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/faxm0dem/sift"
	"github.com/faxm0dem/sift/internal/cli"
)

// loadSnapshot reads an identity/grants snapshot from a YAML or JSON file.
func loadSnapshot(path string) (*sift.Snapshot, error) {
	if path == "" {
		return nil, cli.SnapshotError("no snapshot file", fmt.Errorf("pass --snapshot or set snapshot in sift.yaml"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cli.SnapshotError("reading snapshot", err)
	}
	var snap sift.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, cli.SnapshotError("parsing snapshot", err)
	}
	return &snap, nil
}

// compileSnapshot turns a snapshot into a filter using the configured
// nested-folders flag.
func compileSnapshot(snap *sift.Snapshot, nested bool) (*sift.Filter, error) {
	level, err := sift.ParseLevel(snap.Level)
	if err != nil {
		return nil, cli.SnapshotError("parsing snapshot", err)
	}
	kind, err := sift.ParseQueryType(snap.Type)
	if err != nil {
		return nil, cli.SnapshotError("parsing snapshot", err)
	}

	flags := sift.StaticFlags{sift.FlagNestedFolders: nested}
	return sift.New(&snap.Identity, level, kind, sift.StandardRoleResolver{}, flags), nil
}

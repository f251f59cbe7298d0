package worker

import (
	apiv1 "github.com/loomworks/loom/internal/api/v1"
)

// Versioning field derivation. Servers either key workers off a legacy
// binary checksum string or, when build-id based versioning is enabled, off
// a structured build identifier. The two must never both carry meaningful
// values, so every request-assembly site goes through these derivations
// instead of branching on the capability itself.

// serverCapabilities snapshots the transport's cached capability
// descriptor. A missing descriptor reads as all capabilities disabled.
func (c *Client) serverCapabilities() apiv1.Capabilities {
	if caps := c.service.Capabilities(); caps != nil {
		return *caps
	}
	return apiv1.Capabilities{}
}

// binaryChecksum is the legacy versioning identifier: the worker build id
// when build-id based versioning is disabled, empty otherwise.
func (c *Client) binaryChecksum() string {
	if c.serverCapabilities().BuildIDBasedVersioning {
		return ""
	}
	return c.workerBuildID
}

// workerVersionCapabilities is the poll-time versioning block, present only
// when the server supports build-id based versioning.
func (c *Client) workerVersionCapabilities() *apiv1.WorkerVersionCapabilities {
	if !c.serverCapabilities().BuildIDBasedVersioning {
		return nil
	}
	return &apiv1.WorkerVersionCapabilities{
		BuildID:       c.workerBuildID,
		UseVersioning: c.useVersioning,
	}
}

// workerVersionStamp is the completion-time versioning block, present only
// when the server supports build-id based versioning. BundleID is reserved
// and left empty.
func (c *Client) workerVersionStamp() *apiv1.WorkerVersionStamp {
	if !c.serverCapabilities().BuildIDBasedVersioning {
		return nil
	}
	return &apiv1.WorkerVersionStamp{
		BuildID:       c.workerBuildID,
		BundleID:      "",
		UseVersioning: c.useVersioning,
	}
}

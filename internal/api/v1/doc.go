// Package apiv1 holds the v1 wire contract of the Loom orchestration
// service as seen by workers: the records exchanged on every worker-facing
// RPC, plus the enums and common blocks they embed.
//
// The records mirror the service's canonical protobuf schema field for
// field. Payload bodies and failure objects are opaque at this layer; they
// are carried through unmodified.
package apiv1

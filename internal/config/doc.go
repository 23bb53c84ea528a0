// Package config provides configuration loading, merging, and validation
// facilities for the contactsync daemon.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetDaemonConfig] returns the validated view used at startup, with
// defaults applied. Server capability profiles live in a separate YAML file
// read by [LoadCapabilityProfiles].
package config

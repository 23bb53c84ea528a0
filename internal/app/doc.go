// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the contactsync daemon from its configuration and
// runs it until a stop signal arrives.
//
// NewApp opens the local store, connects to the bridge, wires the sync
// engine and the control API. Run serves the control API and releases
// every component on return.
package app

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client talks to the control API of a running contactsync daemon.
//
// Every call returns the result document sent by the daemon together with
// an error. Failed operations still carry their result, so callers can
// report counters and per-contact errors next to the failure.
package client

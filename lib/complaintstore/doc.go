// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package complaintstore holds the session's authoritative local
// snapshot of complaint records and derives filtered projections of it.
//
// The [Store] is the single source of truth between reloads: loaded
// once from the remote service, mutated in place when an edit commits,
// never pruned (rejection is a status, not a removal). It is owned by
// exactly one writer, the console's update loop, so it carries no
// locking; everything else reads point-in-time copies.
//
// A [FilterSet] is a conjunction of independently optional predicates.
// Applying it yields a stable, order-preserving subset of the store:
//
//	[remote fetch] → Store.Load
//	                  Store.All → FilterSet.Apply → [paginate] → [render]
package complaintstore

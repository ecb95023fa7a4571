// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

// maxAliasHops caps alias-chain following so cyclic alias pairs terminate.
const maxAliasHops = 10

// ResolveAliasTarget flattens an alias chain to its final non-alias base
// name. The alias table of fromFile is consulted first, then every other
// scanned file in sorted path order. Returns ok=false if name is not an
// alias anywhere. A chain that does not settle within maxAliasHops returns
// the last name reached rather than erroring.
func (r *Resolver) ResolveAliasTarget(name, fromFile string) (string, bool) {
	base, ok := r.lookupAlias(name, fromFile)
	if !ok {
		return "", false
	}
	for hops := 1; hops < maxAliasHops; hops++ {
		next, ok := r.lookupAlias(base, fromFile)
		if !ok {
			return base, true
		}
		base = next
	}
	return base, true
}

func (r *Resolver) lookupAlias(name, fromFile string) (string, bool) {
	if scope := r.idx.Scope(fromFile); scope != nil {
		if base, ok := scope.TypeAliases[name]; ok {
			return base, true
		}
	}
	for _, file := range r.idx.Files() {
		if file == fromFile {
			continue
		}
		if base, ok := r.idx.Scope(file).TypeAliases[name]; ok {
			return base, true
		}
	}
	return "", false
}

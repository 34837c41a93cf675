// Package enum defines enumerated choice sets for model and form layers.
// Each member pairs a symbolic name with a stored value, a human-readable
// label, and an optional group tag, and the enumeration derives the listings
// form widgets and column constraints consume: names, labels, values, flat
// (value, label) pairs, and grouped option lists. Construction happens once
// via New; every accessor afterwards is a read-only view over the member
// table. The implementation lives in internal/enum and is re-exported here.
package enum

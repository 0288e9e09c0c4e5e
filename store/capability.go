package store

// Capability interfaces for values held inside a Store. Dispatch happens
// through these markers rather than structural inspection, so a value opts
// in to nesting behavior by implementing the interface.

// Composable is implemented by values that own a nested Store and want it
// inlined in recursive Entries snapshots.
type Composable interface {
	ComposedStore() *Store
}

// Mergeable is implemented by values that accept delegated configuration
// when From encounters a mapping under their key.
type Mergeable interface {
	MergeConfig(src map[string]any)
}

// Clearable is implemented by values that must release their own state when
// the owning Store is cleared.
type Clearable interface {
	ClearAll()
}

package domain

// SnapshotStore persists and restores the ordering state.
// Load returns (nil, nil) when nothing has been saved yet.
type SnapshotStore interface {
	Load() (*Snapshot, error)
	Save(s *Snapshot) error
}

// ConfigLoader reads the application configuration from a file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

package types

// Config holds the resolved storage locations handed to the components.
// DataDir is the root under which reports, users, and the reference
// database live; ReferenceDB overrides the reference database path when
// non-empty.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	ReferenceDB string `json:"reference_db" yaml:"reference_db"`
}

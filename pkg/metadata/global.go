package metadata

// Ambient registries. Attributes registered here are copied into every
// component's Assembly and Global stores during its init pass, so
// registration must happen before the tree is built.

var (
	assemblyStore = NewStore(LevelAssembly)
	globalStore   = NewStore(LevelGlobal)
)

// AssemblyStore returns the assembly-wide attribute registry.
func AssemblyStore() *Store { return assemblyStore }

// GlobalStore returns the process-wide attribute registry.
func GlobalStore() *Store { return globalStore }

// ResetAmbient clears both ambient registries. Intended for tests.
func ResetAmbient() {
	assemblyStore = NewStore(LevelAssembly)
	globalStore = NewStore(LevelGlobal)
}

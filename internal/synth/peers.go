package synth

import (
	"slices"
	"sync"

	"mock-generator/internal/common"
	"mock-generator/internal/model"
)

// Peer is a declaration exposing its own mock entry points.
type Peer struct {
	// Key is the registry key, "pkgpath.Name".
	Key     string
	PkgPath string
	PkgName string
	// Single and Batch are the entry point function names.
	Single string
	Batch  string
	// Enum is set for enumerations.
	Enum bool
}

// Peers resolves Named descriptors to declarations that can be mocked.
type Peers interface {
	// Lookup finds the peer a descriptor names, as seen from code in fromPkg.
	Lookup(desc model.TypeDescriptor, fromPkg string) (Peer, bool)
}

// EntryPoints returns the single and batch entry point names of a type:
// MockOrder/MockOrderBatch for exported types, mockOrder/mockOrderBatch otherwise.
func EntryPoints(typeName string) (single, batch string) {
	prefix := "mock"
	if common.IsExported(typeName) {
		prefix = "Mock"
	}

	single = prefix + common.Capitalize(typeName)

	return single, single + "Batch"
}

// Registry is the Peers implementation populated from the declarations of a run.
// It is safe for concurrent lookups once populated.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Peer
	// pkgs maps package names to the import paths registered under them.
	pkgs map[string][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]Peer),
		pkgs:  make(map[string][]string),
	}
}

// Register adds a declaration. Declarations that are neither records nor
// enums are ignored.
func (r *Registry) Register(decl *model.Declaration) {
	if decl.Kind == model.DeclOther {
		return
	}

	single, batch := EntryPoints(decl.Name)

	name := decl.PkgName
	if name == "" {
		name = common.PkgAlias(decl.PkgPath)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[decl.Key()] = Peer{
		Key:     decl.Key(),
		PkgPath: decl.PkgPath,
		PkgName: name,
		Single:  single,
		Batch:   batch,
		Enum:    decl.Kind == model.DeclEnum,
	}

	if !slices.Contains(r.pkgs[name], decl.PkgPath) {
		r.pkgs[name] = append(r.pkgs[name], decl.PkgPath)
	}
}

// Remove drops a declaration, e.g. one that failed validation.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byKey, key)
}

// Len returns the number of registered peers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byKey)
}

// Lookup implements Peers.
func (r *Registry) Lookup(desc model.TypeDescriptor, fromPkg string) (Peer, bool) {
	if desc.Kind != model.KindNamed || desc.IsChan() || len(desc.Args) > 0 {
		return Peer{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pkgPath := range r.candidates(desc, fromPkg) {
		peer, ok := r.byKey[model.TypeKey(pkgPath, desc.LocalName())]
		if !ok {
			continue
		}

		// unexported entry points are unreachable from other packages
		if peer.PkgPath != fromPkg && !common.IsExported(peer.Single) {
			return Peer{}, false
		}

		return peer, true
	}

	return Peer{}, false
}

func (r *Registry) candidates(desc model.TypeDescriptor, fromPkg string) []string {
	switch {
	case desc.PkgPath != "":
		return []string{desc.PkgPath}
	case desc.Qualifier() == "":
		return []string{fromPkg}
	default:
		return r.pkgs[desc.Qualifier()]
	}
}

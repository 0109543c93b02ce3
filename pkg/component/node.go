package component

import (
	"log/slog"

	"github.com/strut-dev/strut/pkg/metadata"
	"github.com/strut-dev/strut/pkg/metrics"
	"github.com/strut-dev/strut/pkg/scope"
)

// Provider names for the built-in derived state.
const (
	providerPresence   = "presence"
	providerVisibility = "visibility"
	providerContent    = "content"
)

// Component is anything wrapping a Node. Typed components embed
// *Node, which satisfies the interface for free.
type Component interface {
	Node() *Node
}

// Config configures a new Node.
type Config struct {
	// Name is the component's declared name, e.g. "Password".
	Name string

	// TypeLineage is the component's type chain, most derived type
	// first, e.g. ["PasswordInput", "Input", "Control"].
	TypeLineage []string

	// Locator resolves the component to its live resource.
	Locator scope.Locator

	// Content optionally overrides how textual content is read from
	// the live resource.
	Content scope.ContentSource

	// Declared holds attributes from the component's declaration
	// site.
	Declared []metadata.Attribute

	// Intrinsic holds attributes built into the component's type.
	Intrinsic []metadata.Attribute

	// Logger receives debug records. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics optionally records scope lookup outcomes.
	Metrics *metrics.Collector
}

// Node is one element of the component tree. It owns its children,
// its metadata, its trigger set, and its provider cache; the parent
// and root links are plain back-references.
type Node struct {
	name    string
	lineage []string

	parent   *Node
	root     *Node
	children []*Node
	owner    Component

	meta      *metadata.ComponentMetadata
	declared  []metadata.Attribute
	intrinsic []metadata.Attribute

	locator scope.Locator
	content scope.ContentSource

	triggers  TriggerSet
	providers map[string]any

	log     *slog.Logger
	metrics *metrics.Collector

	initialized bool
	cleaned     bool
}

// New creates a detached Node. Attach it with AddChild and run the
// init pass before first use.
func New(cfg Config) *Node {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	n := &Node{
		name:      cfg.Name,
		lineage:   cfg.TypeLineage,
		locator:   cfg.Locator,
		content:   cfg.Content,
		declared:  cfg.Declared,
		intrinsic: cfg.Intrinsic,
		log:       log,
		metrics:   cfg.Metrics,
	}
	n.root = n
	return n
}

// Node implements the Component interface.
func (n *Node) Node() *Node { return n }

// Name returns the component's declared name.
func (n *Node) Name() string { return n.name }

// Type returns the component's most derived type name.
func (n *Node) Type() string {
	if len(n.lineage) == 0 {
		return ""
	}
	return n.lineage[0]
}

// TypeLineage returns the component's type chain, most derived first.
func (n *Node) TypeLineage() []string { return n.lineage }

// Parent returns the parent node, or nil for the tree root.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the tree root, which is the node itself when detached.
func (n *Node) Root() *Node { return n.root }

// Children returns the node's direct children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Owner returns the typed component wrapping this node, or the node
// itself if none was set.
func (n *Node) Owner() Component {
	if n.owner != nil {
		return n.owner
	}
	return n
}

// SetOwner records the typed component wrapping this node, making it
// visible to ancestor walks.
func (n *Node) SetOwner(c Component) { n.owner = c }

// Triggers returns the node's trigger set.
func (n *Node) Triggers() *TriggerSet { return &n.triggers }

// Locator returns the node's scope locator.
func (n *Node) Locator() scope.Locator { return n.locator }

// Metadata returns the node's metadata. It is nil until the init
// pass has run.
func (n *Node) Metadata() *metadata.ComponentMetadata { return n.meta }

// AddChild attaches child under this node. The child adopts this
// node's root, logger, and metrics unless it carries its own.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	child.root = n.root
	if child.metrics == nil {
		child.metrics = n.metrics
	}
	n.children = append(n.children, child)
}

// Path returns the fully qualified component path, root first.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.displayName()
	}
	return n.parent.Path() + " > " + n.displayName()
}

func (n *Node) displayName() string {
	if n.name != "" {
		return n.name
	}
	if t := n.Type(); t != "" {
		return t
	}
	return "<unnamed>"
}

// Init runs the init pass: it builds and populates the node's
// metadata, fires Init triggers, and recurses into children. The pass
// is idempotent per node, so re-running it after attaching new
// children initializes only those.
func (n *Node) Init() error {
	if !n.initialized {
		n.initialized = true
		n.meta = metadata.New(n.metadataContext())
		n.populateMetadata()
		if err := n.triggers.Fire(n, EventInit); err != nil {
			return err
		}
		n.log.Debug("component initialized", "component", n.Path())
	}
	for _, c := range n.children {
		if err := c.Init(); err != nil {
			return err
		}
	}
	return nil
}

// metadataContext derives the target-ranking context from the node's
// position in the tree.
func (n *Node) metadataContext() metadata.Context {
	var ancestors []string
	for p := n.parent; p != nil; p = p.parent {
		ancestors = append(ancestors, p.Type())
	}
	return metadata.Context{
		TypeLineage: n.lineage,
		Name:        n.name,
		Ancestors:   ancestors,
	}
}

// populateMetadata fills the five stores: the node's own declaration,
// the parent's declaration (which applies here only through targets),
// the ambient assembly and global registries, and the type's
// intrinsic attributes.
func (n *Node) populateMetadata() {
	n.meta.Add(metadata.LevelDeclared, n.declared...)
	if n.parent != nil {
		n.meta.Add(metadata.LevelParentComponent, n.parent.declared...)
	}
	n.meta.Add(metadata.LevelAssembly, metadata.AssemblyStore().All()...)
	n.meta.Add(metadata.LevelGlobal, metadata.GlobalStore().All()...)
	n.meta.Add(metadata.LevelComponent, n.intrinsic...)
}

// Scope locates the node's live resource, wrapped in the access
// protocol: BeforeAccess triggers, locate, presence check, AfterAccess
// triggers. A trigger error or a required-but-absent resource aborts
// the access; AfterAccess does not fire after an abort.
func (n *Node) Scope(opts scope.Options) (scope.Handle, error) {
	if err := n.triggers.Fire(n, EventBeforeAccess); err != nil {
		return nil, err
	}

	var h scope.Handle
	if n.locator != nil {
		var err error
		h, err = n.locator.Find(opts)
		if err != nil {
			n.metrics.ScopeLookup(metrics.OutcomeError)
			return nil, err
		}
	}

	if h == nil {
		n.metrics.ScopeLookup(metrics.OutcomeMissing)
		if !opts.Safely {
			return nil, &scope.NotFoundError{Path: n.Path()}
		}
	} else {
		n.metrics.ScopeLookup(metrics.OutcomeFound)
	}

	if err := n.triggers.Fire(n, EventAfterAccess); err != nil {
		return nil, err
	}
	return h, nil
}

// IsPresent reports whether the live resource currently exists.
// The result is computed once through a safe single-attempt search
// and cached under the presence provider.
func (n *Node) IsPresent() (bool, error) {
	return ProviderFor(n, providerPresence, n.computePresence).Value()
}

func (n *Node) computePresence() (bool, error) {
	h, err := n.Scope(scope.SafelyOnce())
	if err != nil {
		if scope.IsStale(err) {
			return false, nil
		}
		return false, err
	}
	return h != nil, nil
}

// IsVisible reports whether the live resource exists and is
// displayed. Cached under the visibility provider.
func (n *Node) IsVisible() (bool, error) {
	return ProviderFor(n, providerVisibility, n.computeVisibility).Value()
}

func (n *Node) computeVisibility() (bool, error) {
	h, err := n.Scope(scope.SafelyOnce())
	if err != nil {
		if scope.IsStale(err) {
			return false, nil
		}
		return false, err
	}
	if h == nil {
		return false, nil
	}
	visible, err := h.Visible()
	if scope.IsStale(err) {
		return false, nil
	}
	return visible, err
}

// Content returns the component's textual content, preferring the
// configured ContentSource over the resource's default text. Cached
// under the content provider. An absent resource is a NotFoundError.
func (n *Node) Content() (string, error) {
	return ProviderFor(n, providerContent, n.computeContent).Value()
}

func (n *Node) computeContent() (string, error) {
	h, err := n.Scope(scope.SafelyOnce())
	if err != nil {
		return "", err
	}
	if h == nil {
		return "", &scope.NotFoundError{Path: n.Path()}
	}
	if n.content != nil {
		return n.content(h)
	}
	return h.Text()
}

// CleanUp tears the subtree down: Cleanup triggers fire, children are
// cleaned depth-first and detached, and the provider cache is
// released. Calling CleanUp again on an already-clean node is a
// no-op.
func (n *Node) CleanUp() {
	if n.cleaned {
		return
	}
	n.cleaned = true
	if err := n.triggers.Fire(n, EventCleanup); err != nil {
		n.log.Debug("cleanup trigger failed", "component", n.Path(), "error", err)
	}
	for _, c := range n.children {
		c.CleanUp()
		c.parent = nil
	}
	n.children = nil
	n.providers = nil
}

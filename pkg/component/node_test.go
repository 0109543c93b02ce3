package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/strut-dev/strut/pkg/metadata"
	"github.com/strut-dev/strut/pkg/scope"
	"github.com/strut-dev/strut/pkg/scope/scopetest"
)

func newTestNode(loc scope.Locator) *Node {
	return New(Config{
		Name:        "Password",
		TypeLineage: []string{"PasswordInput", "Input", "Control"},
		Locator:     loc,
	})
}

func TestScopeAccessProtocol(t *testing.T) {
	loc := &scopetest.Locator{Present: true}
	n := newTestNode(loc)

	var order []string
	n.Triggers().On(EventBeforeAccess, func(*Node, Event) error {
		order = append(order, "before")
		return nil
	})
	n.Triggers().On(EventAfterAccess, func(*Node, Event) error {
		order = append(order, "after")
		return nil
	})

	h, err := n.Scope(scope.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h == nil {
		t.Fatal("expected a handle")
	}
	if got := strings.Join(order, ","); got != "before,after" {
		t.Errorf("expected before,after trigger order, got %s", got)
	}
}

func TestScopeAccessNotFound(t *testing.T) {
	loc := &scopetest.Locator{Present: false}
	root := New(Config{Name: "LoginPage", TypeLineage: []string{"LoginPage", "Page"}})
	n := newTestNode(loc)
	root.AddChild(n)

	afterFired := false
	n.Triggers().On(EventAfterAccess, func(*Node, Event) error {
		afterFired = true
		return nil
	})

	_, err := n.Scope(scope.Options{})
	var nf *scope.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Path != "LoginPage > Password" {
		t.Errorf("expected full component path, got %q", nf.Path)
	}
	if afterFired {
		t.Error("expected AfterAccess to be skipped after a failed access")
	}
}

func TestScopeAccessSafelyMissing(t *testing.T) {
	loc := &scopetest.Locator{Present: false}
	n := newTestNode(loc)

	afterFired := false
	n.Triggers().On(EventAfterAccess, func(*Node, Event) error {
		afterFired = true
		return nil
	})

	h, err := n.Scope(scope.Options{Safely: true})
	if err != nil {
		t.Fatalf("expected safe absence to return no error, got %v", err)
	}
	if h != nil {
		t.Error("expected nil handle for an absent resource")
	}
	if !afterFired {
		t.Error("expected AfterAccess to fire on a safe miss")
	}
}

func TestScopeAccessTriggerErrorShortCircuits(t *testing.T) {
	loc := &scopetest.Locator{Present: true}
	n := newTestNode(loc)

	boom := errors.New("boom")
	n.Triggers().On(EventBeforeAccess, func(*Node, Event) error { return boom })

	_, err := n.Scope(scope.Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected trigger error, got %v", err)
	}
	if loc.FindCalls != 0 {
		t.Errorf("expected no locate after a failing BeforeAccess trigger, got %d", loc.FindCalls)
	}
}

func TestPath(t *testing.T) {
	page := New(Config{Name: "LoginPage", TypeLineage: []string{"LoginPage", "Page"}})
	form := New(Config{TypeLineage: []string{"LoginForm", "Form"}})
	button := New(Config{Name: "Submit", TypeLineage: []string{"Button", "Control"}})
	page.AddChild(form)
	form.AddChild(button)

	if got := button.Path(); got != "LoginPage > LoginForm > Submit" {
		t.Errorf("unexpected path %q", got)
	}
	if button.Root() != page {
		t.Error("expected root back-reference to the page")
	}
}

func TestInitPopulatesMetadata(t *testing.T) {
	t.Cleanup(metadata.ResetAmbient)
	metadata.ResetAmbient()
	metadata.GlobalStore().Add(metadata.FormatAttribute{Value: "global"})
	metadata.AssemblyStore().Add(metadata.FormatAttribute{Value: "assembly"})

	parent := New(Config{
		Name:        "LoginForm",
		TypeLineage: []string{"LoginForm", "Form"},
		Declared: []metadata.Attribute{
			// Targeted at children, applies to them through the
			// ParentComponent level.
			metadata.FormatAttribute{
				Targeting: metadata.Targeting{TargetSpec: metadata.TargetSpec{Types: []string{"Input"}}},
				Value:     "from parent",
			},
		},
	})
	child := New(Config{
		Name:        "Password",
		TypeLineage: []string{"PasswordInput", "Input", "Control"},
		Declared:    []metadata.Attribute{metadata.FormatAttribute{Value: "declared"}},
		Intrinsic:   []metadata.Attribute{metadata.FormatAttribute{Value: "intrinsic"}},
	})
	parent.AddChild(child)

	if err := parent.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	got := child.Metadata().All(metadata.KindFormat, metadata.Filter{})
	var values []string
	for _, a := range got {
		values = append(values, a.(metadata.FormatAttribute).Value)
	}
	want := []string{"declared", "from parent", "assembly", "global", "intrinsic"}
	if strings.Join(values, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, values)
	}

	ctx := child.Metadata().Context()
	if len(ctx.Ancestors) != 1 || ctx.Ancestors[0] != "LoginForm" {
		t.Errorf("expected ancestor chain [LoginForm], got %v", ctx.Ancestors)
	}
}

func TestInitIsIdempotentAndCoversLateChildren(t *testing.T) {
	root := New(Config{Name: "Page", TypeLineage: []string{"Page"}})

	initCount := 0
	root.Triggers().On(EventInit, func(*Node, Event) error {
		initCount++
		return nil
	})

	if err := root.Init(); err != nil {
		t.Fatal(err)
	}
	if err := root.Init(); err != nil {
		t.Fatal(err)
	}
	if initCount != 1 {
		t.Errorf("expected a single Init firing, got %d", initCount)
	}

	late := New(Config{Name: "Late", TypeLineage: []string{"Control"}})
	root.AddChild(late)
	if err := root.Init(); err != nil {
		t.Fatal(err)
	}
	if late.Metadata() == nil {
		t.Error("expected the re-run init pass to initialize the late child")
	}
}

func TestCleanUp(t *testing.T) {
	root := New(Config{Name: "Page", TypeLineage: []string{"Page"}})
	var grandchildren []*Node
	for i := 0; i < 3; i++ {
		child := New(Config{Name: "Child", TypeLineage: []string{"Control"}})
		root.AddChild(child)
		gc := New(Config{Name: "Grandchild", TypeLineage: []string{"Control"}})
		child.AddChild(gc)
		grandchildren = append(grandchildren, gc)
	}

	cleanups := 0
	root.Triggers().On(EventCleanup, func(*Node, Event) error {
		cleanups++
		return nil
	})

	root.CleanUp()
	if len(root.Children()) != 0 {
		t.Errorf("expected empty child list, got %d", len(root.Children()))
	}
	for i, gc := range grandchildren {
		if gc.Parent() != nil {
			t.Errorf("grandchild %d still attached", i)
		}
	}

	// Second call is a no-op and must not fire triggers again.
	root.CleanUp()
	if cleanups != 1 {
		t.Errorf("expected one Cleanup firing, got %d", cleanups)
	}
}

func TestCleanUpReleasesProviderCache(t *testing.T) {
	loc := &scopetest.Locator{Present: true}
	n := newTestNode(loc)

	if _, err := n.IsPresent(); err != nil {
		t.Fatal(err)
	}
	if loc.FindCalls != 1 {
		t.Fatalf("expected one locate, got %d", loc.FindCalls)
	}

	n.CleanUp()
	if n.providers != nil {
		t.Error("expected provider cache released on cleanup")
	}
}

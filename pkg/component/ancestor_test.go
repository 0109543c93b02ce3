package component

import "testing"

type testPage struct {
	node *Node
}

func (p *testPage) Node() *Node { return p.node }

type testForm struct {
	node *Node
}

func (f *testForm) Node() *Node { return f.node }

type testButton struct {
	node *Node
}

func (b *testButton) Node() *Node { return b.node }

type testUnrelated struct {
	node *Node
}

func (u *testUnrelated) Node() *Node { return u.node }

func buildTypedTree() (*testPage, *testForm, *testButton) {
	page := &testPage{New(Config{Name: "LoginPage", TypeLineage: []string{"LoginPage", "Page"}})}
	page.Node().SetOwner(page)
	form := &testForm{New(Config{Name: "LoginForm", TypeLineage: []string{"LoginForm", "Form"}})}
	form.Node().SetOwner(form)
	button := &testButton{New(Config{Name: "Submit", TypeLineage: []string{"Button", "Control"}})}
	button.Node().SetOwner(button)

	page.Node().AddChild(form.Node())
	form.Node().AddChild(button.Node())
	return page, form, button
}

func TestAncestorFindsNearestMatch(t *testing.T) {
	page, form, button := buildTypedTree()

	gotForm, ok := Ancestor[*testForm](button)
	if !ok || gotForm != form {
		t.Errorf("expected the enclosing form, got %v (ok=%v)", gotForm, ok)
	}

	gotPage, ok := Ancestor[*testPage](button)
	if !ok || gotPage != page {
		t.Errorf("expected the page root, got %v (ok=%v)", gotPage, ok)
	}
}

func TestAncestorExcludesSelf(t *testing.T) {
	_, _, button := buildTypedTree()

	if _, ok := Ancestor[*testButton](button); ok {
		t.Error("expected Ancestor to skip the starting component")
	}
}

func TestAncestorOrSelfOnRootReturnsRoot(t *testing.T) {
	page, _, _ := buildTypedTree()

	got, ok := AncestorOrSelf[*testPage](page)
	if !ok || got != page {
		t.Errorf("expected the page itself, got %v (ok=%v)", got, ok)
	}
}

func TestAncestorNoMatch(t *testing.T) {
	_, _, button := buildTypedTree()

	if _, ok := Ancestor[*testUnrelated](button); ok {
		t.Error("expected no match when the tree holds no such type")
	}
}

func TestAncestorUntypedNodesFallBackToNodeOwner(t *testing.T) {
	root := New(Config{Name: "Root", TypeLineage: []string{"Page"}})
	child := New(Config{Name: "Child", TypeLineage: []string{"Control"}})
	root.AddChild(child)

	got, ok := Ancestor[*Node](child)
	if !ok || got != root {
		t.Errorf("expected the raw root node, got %v (ok=%v)", got, ok)
	}
}

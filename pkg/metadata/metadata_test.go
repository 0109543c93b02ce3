package metadata

import (
	"reflect"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestPushPrecedence(t *testing.T) {
	m := newTestMetadata()
	m.Add(LevelDeclared, FormatAttribute{Value: "declared-1"}, FormatAttribute{Value: "declared-2"})

	m.Push(FormatAttribute{Value: "push-1a"}, FormatAttribute{Value: "push-1b"})
	m.Push(FormatAttribute{Value: "push-2"})

	got := formatValues(m.All(KindFormat, Filter{}))
	// Pushed attributes precede declared ones; earlier pushes precede
	// later ones; relative order within one push call is kept.
	want := []string{"push-1a", "push-1b", "push-2", "declared-1", "declared-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if a, ok := m.Get(KindFormat, Filter{}); !ok || a.(FormatAttribute).Value != "push-1a" {
		t.Errorf("expected first push to win Get, got %+v", a)
	}
}

func TestCultureFallback(t *testing.T) {
	m := newTestMetadata()
	if got := m.Culture(); got != DefaultCulture {
		t.Errorf("expected DefaultCulture %s, got %s", DefaultCulture, got)
	}
}

func TestCultureResolution(t *testing.T) {
	m := newTestMetadata()
	m.Add(LevelGlobal, CultureAttribute{Tag: language.German})
	m.Add(LevelDeclared, CultureAttribute{Tag: language.French})

	if got := m.Culture(); got != language.French {
		t.Errorf("expected declared culture fr, got %s", got)
	}
}

func TestFormatResolution(t *testing.T) {
	m := newTestMetadata()

	if _, ok := m.Format(); ok {
		t.Error("expected no format on empty metadata")
	}

	m.Add(LevelAssembly, FormatAttribute{Value: "2006-01-02"})
	format, ok := m.Format()
	if !ok || format != "2006-01-02" {
		t.Errorf("expected assembly format, got %q (ok=%v)", format, ok)
	}
}

func TestWaitSettingsResolution(t *testing.T) {
	m := newTestMetadata()
	m.Add(LevelGlobal, WaitSettingsAttribute{
		Targeting: Targeting{TargetSpec: TargetSpec{Types: []string{"Input"}}},
		Timeout:   2 * time.Second,
	})

	a, ok := m.Get(KindWaitSettings, Filter{})
	if !ok {
		t.Fatal("expected wait settings to resolve for an Input")
	}
	if d := a.(WaitSettingsAttribute).Timeout; d != 2*time.Second {
		t.Errorf("expected 2s timeout, got %s", d)
	}
}

func TestAmbientRegistries(t *testing.T) {
	t.Cleanup(ResetAmbient)
	ResetAmbient()

	GlobalStore().Add(FormatAttribute{Value: "global"})
	AssemblyStore().Add(FormatAttribute{Value: "assembly"})

	if n := GlobalStore().Len(); n != 1 {
		t.Errorf("expected 1 global attribute, got %d", n)
	}
	if got := AssemblyStore().All()[0].(FormatAttribute).Value; got != "assembly" {
		t.Errorf("expected assembly attribute, got %q", got)
	}

	ResetAmbient()
	if n := GlobalStore().Len() + AssemblyStore().Len(); n != 0 {
		t.Errorf("expected reset registries, got %d attributes", n)
	}
}

func TestLevelString(t *testing.T) {
	want := []string{"Declared", "ParentComponent", "Assembly", "Global", "Component"}
	for i, l := range Levels() {
		if l.String() != want[i] {
			t.Errorf("level %d: expected %q, got %q", i, want[i], l.String())
		}
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/strut-dev/strut/pkg/component"
	"github.com/strut-dev/strut/pkg/metadata"
)

// treeFile is the YAML schema for a component tree definition.
type treeFile struct {
	Global   []attrDef `yaml:"global"`
	Assembly []attrDef `yaml:"assembly"`
	Tree     nodeDef   `yaml:"tree"`
}

// nodeDef describes one component node.
type nodeDef struct {
	Type       string    `yaml:"type"`
	Lineage    []string  `yaml:"lineage"`
	Name       string    `yaml:"name"`
	Attributes []attrDef `yaml:"attributes"`
	Intrinsic  []attrDef `yaml:"intrinsic"`
	Children   []nodeDef `yaml:"children"`
}

// attrDef describes one attribute. Kind selects which fields apply.
// Durations are strings in time.ParseDuration form, e.g. "30s".
type attrDef struct {
	Kind      string     `yaml:"kind"`
	Value     string     `yaml:"value"`
	Timeout   string     `yaml:"timeout"`
	Interval  string     `yaml:"interval"`
	AppliesTo []string   `yaml:"applies_to"`
	Target    *targetDef `yaml:"target"`
}

// targetDef describes a target specification.
type targetDef struct {
	Types        []string `yaml:"types"`
	ExcludeTypes []string `yaml:"exclude_types"`
	ParentTypes  []string `yaml:"parent_types"`
	Names        []string `yaml:"names"`
}

// loadTreeFile parses a tree definition from disk.
func loadTreeFile(path string) (*treeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf treeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if tf.Tree.Type == "" {
		return nil, fmt.Errorf("parsing %s: tree.type is required", path)
	}
	return &tf, nil
}

// build registers the ambient attributes and constructs the component
// tree. The returned root is ready for an init pass.
func (tf *treeFile) build() (*component.Node, error) {
	metadata.ResetAmbient()

	for _, d := range tf.Assembly {
		a, err := d.attribute()
		if err != nil {
			return nil, err
		}
		metadata.AssemblyStore().Add(a)
	}
	for _, d := range tf.Global {
		a, err := d.attribute()
		if err != nil {
			return nil, err
		}
		metadata.GlobalStore().Add(a)
	}

	return tf.Tree.build()
}

func (nd nodeDef) build() (*component.Node, error) {
	lineage := nd.Lineage
	if len(lineage) == 0 {
		lineage = []string{nd.Type}
	}

	declared, err := attributes(nd.Attributes)
	if err != nil {
		return nil, err
	}
	intrinsic, err := attributes(nd.Intrinsic)
	if err != nil {
		return nil, err
	}

	n := component.New(component.Config{
		Name:        nd.Name,
		TypeLineage: lineage,
		Declared:    declared,
		Intrinsic:   intrinsic,
	})

	for _, cd := range nd.Children {
		child, err := cd.build()
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func attributes(defs []attrDef) ([]metadata.Attribute, error) {
	var out []metadata.Attribute
	for _, d := range defs {
		a, err := d.attribute()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// attribute converts one definition into a concrete attribute.
func (d attrDef) attribute() (metadata.Attribute, error) {
	targeting := metadata.Targeting{}
	if d.Target != nil {
		targeting.TargetSpec = metadata.TargetSpec{
			Types:        d.Target.Types,
			ExcludeTypes: d.Target.ExcludeTypes,
			ParentTypes:  d.Target.ParentTypes,
			Names:        d.Target.Names,
		}
	}

	switch d.Kind {
	case metadata.KindCulture:
		tag, err := language.Parse(d.Value)
		if err != nil {
			return nil, fmt.Errorf("culture attribute: %w", err)
		}
		return metadata.CultureAttribute{Targeting: targeting, Tag: tag}, nil

	case metadata.KindFormat:
		return metadata.FormatAttribute{Targeting: targeting, Value: d.Value}, nil

	case metadata.KindWaitSettings:
		timeout, err := parseDuration(d.Timeout)
		if err != nil {
			return nil, fmt.Errorf("wait-settings timeout: %w", err)
		}
		interval, err := parseDuration(d.Interval)
		if err != nil {
			return nil, fmt.Errorf("wait-settings interval: %w", err)
		}
		return metadata.WaitSettingsAttribute{
			Targeting: targeting,
			Timeout:   timeout,
			Interval:  interval,
		}, nil

	case metadata.KindSettings:
		return metadata.SettingsAttribute{
			Targeting: targeting,
			AppliesTo: d.AppliesTo,
		}, nil

	default:
		return nil, fmt.Errorf("unknown attribute kind %q", d.Kind)
	}
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

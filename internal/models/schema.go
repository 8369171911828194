package models

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// recordSchema is the JSON schema inferred for one record type, kept both
// as the tree (for locating failures) and resolved (for validating).
type recordSchema struct {
	root     *jsonschema.Schema
	resolved *jsonschema.Resolved
}

// recordSchemas maps a reflect.Type to a func() (*recordSchema, error)
// that builds the schema on first use.
var recordSchemas sync.Map

func schemaFor(t reflect.Type) (*recordSchema, error) {
	build, _ := recordSchemas.LoadOrStore(t, sync.OnceValues(func() (*recordSchema, error) {
		return buildSchema(t)
	}))
	return build.(func() (*recordSchema, error))()
}

func buildSchema(t reflect.Type) (*recordSchema, error) {
	types, err := typeSchemas()
	if err != nil {
		return nil, err
	}
	root, err := inferSchema(t, types)
	if err != nil {
		return nil, err
	}
	resolved, err := root.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("models: resolve schema for %s: %w", t, err)
	}
	return &recordSchema{root: root, resolved: resolved}, nil
}

// linkKeys are the keys of a name-only reference.
var linkKeys = []string{"name", "_id"}

// typeSchemas overrides inference for types whose JSON shape differs from
// their Go shape.
var typeSchemas = sync.OnceValues(func() (map[reflect.Type]*jsonschema.Schema, error) {
	types := map[reflect.Type]*jsonschema.Schema{
		reflect.TypeFor[Date]():                 {Types: []string{"integer", "string"}},
		reflect.TypeFor[MiscType]():             {Type: "string"},
		reflect.TypeFor[StyleRef]():             namedObject(),
		reflect.TypeFor[EquipmentRef]():         namedObject(),
		reflect.TypeFor[BatchStatus]():          enumSchema(BatchStatuses),
		reflect.TypeFor[HopUse]():               enumSchema(hopUses),
		reflect.TypeFor[YeastForm]():            enumSchema(yeastForms),
		reflect.TypeFor[MiscUse]():              enumSchema(miscUses),
		reflect.TypeFor[MiscKind]():             enumSchema(miscKinds),
		reflect.TypeFor[RecipeType]():           enumSchema(recipeTypes),
		reflect.TypeFor[MashStepType]():         enumSchema(mashStepTypes),
		reflect.TypeFor[FermentationStepType](): enumSchema(fermentationStepTypes),
		reflect.TypeFor[CarbonationType]():      enumSchema(carbonationTypes),
		reflect.TypeFor[FgFormula]():            enumSchema(fgFormulas),
		reflect.TypeFor[IbuFormula]():           enumSchema(ibuFormulas),
	}

	// A recipe link with more than a name and id is a recipe snapshot and
	// must satisfy the full recipe schema.
	recipe, err := inferSchema(reflect.TypeFor[RecipeDetail](), types)
	if err != nil {
		return nil, err
	}
	names := make([]any, len(linkKeys))
	for i, k := range linkKeys {
		names[i] = k
	}
	link := namedObject()
	link.If = &jsonschema.Schema{PropertyNames: &jsonschema.Schema{Enum: names}}
	link.Else = recipe
	types[reflect.TypeFor[RecipeLink]()] = link

	return types, nil
})

func inferSchema(t reflect.Type, types map[reflect.Type]*jsonschema.Schema) (*jsonschema.Schema, error) {
	s, err := jsonschema.ForType(t, &jsonschema.ForOptions{TypeSchemas: types})
	if err != nil {
		return nil, fmt.Errorf("models: infer schema for %s: %w", t, err)
	}
	relax(s)
	return s, nil
}

func namedObject() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Required:   []string{"name"},
		Properties: map[string]*jsonschema.Schema{"name": {Type: "string"}},
	}
}

func enumSchema[T ~string](values []T) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Enum: make([]any, len(values))}
	for i, v := range values {
		s.Enum[i] = string(v)
	}
	return s
}

// relax opens inferred objects to undeclared keys, since the upstream adds
// keys freely, and lets optional properties be null.
func relax(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	if isFalse(s.AdditionalProperties) {
		s.AdditionalProperties = nil
	}
	for name, p := range s.Properties {
		if !slices.Contains(s.Required, name) {
			nullable(p)
		}
		relax(p)
	}
	relax(s.Items)
	relax(s.AdditionalProperties)
	relax(s.If)
	relax(s.Then)
	relax(s.Else)
}

func isFalse(s *jsonschema.Schema) bool {
	return s != nil && s.Not != nil && reflect.ValueOf(*s.Not).IsZero()
}

// nullable admits null. Slices are replaced, never appended to, since
// clones share them.
func nullable(s *jsonschema.Schema) {
	switch {
	case s.Type != "":
		s.Types = []string{"null", s.Type}
		s.Type = ""
	case len(s.Types) > 0 && !slices.Contains(s.Types, "null"):
		s.Types = slices.Concat([]string{"null"}, s.Types)
	}
	if len(s.Enum) > 0 && !slices.Contains(s.Enum, nil) {
		s.Enum = slices.Concat(s.Enum, []any{nil})
	}
}

// validate checks a generically decoded payload and reports the first
// offending value by its path in upstream key names.
func (r *recordSchema) validate(raw any) error {
	if err := r.resolved.Validate(raw); err == nil {
		return nil
	}
	return locate(r.root, raw, "")
}

// resolvedSubschemas caches the resolution of subschemas visited by locate.
var resolvedSubschemas sync.Map

func check(s *jsonschema.Schema, inst any) error {
	rs, ok := resolvedSubschemas.Load(s)
	if !ok {
		r, err := s.Resolve(nil)
		if err != nil {
			return err
		}
		rs, _ = resolvedSubschemas.LoadOrStore(s, r)
	}
	return rs.(*jsonschema.Resolved).Validate(inst)
}

// locate descends into the first failing property or element of inst,
// which is known not to satisfy s.
func locate(s *jsonschema.Schema, inst any, path string) *ValidationError {
	switch v := inst.(type) {
	case map[string]any:
		for _, key := range s.Required {
			if val, ok := v[key]; !ok || val == nil {
				return &ValidationError{Field: join(path, key), Reason: "required field missing"}
			}
		}
		for _, key := range slices.Sorted(maps.Keys(s.Properties)) {
			val, ok := v[key]
			if !ok {
				continue
			}
			if sub := s.Properties[key]; check(sub, val) != nil {
				return locate(sub, val, join(path, key))
			}
		}
	case []any:
		if s.Items != nil {
			for i, el := range v {
				if check(s.Items, el) != nil {
					return locate(s.Items, el, fmt.Sprintf("%s[%d]", path, i))
				}
			}
		}
	}

	if s.If != nil {
		branch := s.Else
		if check(s.If, inst) == nil {
			branch = s.Then
		}
		if branch != nil && check(branch, inst) != nil {
			return locate(branch, inst, path)
		}
	}

	return &ValidationError{Field: path, Reason: reason(s, inst)}
}

func reason(s *jsonschema.Schema, inst any) string {
	err := check(s, inst)
	if err == nil {
		return "invalid value"
	}
	msg := strings.TrimPrefix(err.Error(), "validating root: ")
	switch {
	case strings.HasPrefix(msg, "type: "):
		types := s.Types
		if s.Type != "" {
			types = []string{s.Type}
		}
		types = slices.DeleteFunc(slices.Clone(types), func(t string) bool { return t == "null" })
		return "expected " + strings.Join(types, " or ")
	case strings.HasPrefix(msg, "enum: "):
		return fmt.Sprintf("unrecognized value %v", inst)
	}
	return msg
}

func join(path, key string) string {
	switch {
	case path == "":
		return key
	case key == "":
		return path
	}
	return path + "." + key
}

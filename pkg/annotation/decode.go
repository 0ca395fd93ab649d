// Package annotation decodes the google.api resource annotations attached to
// proto messages, fields and files.
//
// Annotations are detected by extension field number, wherever they are
// found: as parsed extensions, as unknown fields of the options message, or
// as uninterpreted options whose name resolves to the extension.
package annotation

import (
	"fmt"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/reporter"
	"github.com/aep-dev/aep-resourcename-go/pkg/resourcename"
	"google.golang.org/genproto/googleapis/api/annotations"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Resource is one decoded google.api.resource or
// google.api.resource_definition annotation.
type Resource struct {
	Type     string
	Patterns []resourcename.Pattern
	Singular string
	Plural   string
	// History holds the history values in declaration order, e.g.
	// "FUTURE_MULTI_PATTERN".
	History   []string
	NameField string
}

// Kind returns the part of the type after the last '/', e.g. "Book" for
// "library.example.com/Book".
func (r *Resource) Kind() string {
	return r.Type[strings.LastIndex(r.Type, "/")+1:]
}

// HasHistory reports whether h is one of the declared history values.
func (r *Resource) HasHistory(h annotations.ResourceDescriptor_History) bool {
	for _, v := range r.History {
		if v == h.String() {
			return true
		}
	}
	return false
}

// Reference is one decoded google.api.resource_reference annotation.
// Exactly one of Type and ChildType is set.
type Reference struct {
	Type      string
	ChildType string
}

// the payload as read from any of the sources, before validation.
type rawResource struct {
	typ       string
	patterns  []string
	singular  string
	plural    string
	history   []string
	nameField string
	// duplicate is the first singular field set twice.
	duplicate string
}

func (r *rawResource) set(key, value string) {
	switch key {
	case "type":
		r.assign(key, &r.typ, value)
	case "pattern":
		r.patterns = append(r.patterns, value)
	case "singular":
		r.assign(key, &r.singular, value)
	case "plural":
		r.assign(key, &r.plural, value)
	case "history":
		r.history = append(r.history, value)
	case "name_field":
		r.assign(key, &r.nameField, value)
	}
}

func (r *rawResource) assign(key string, field *string, value string) {
	if *field != "" && r.duplicate == "" {
		r.duplicate = key
	}
	*field = value
}

// merge adds a decoded payload. Payloads of one option merge like proto
// messages do, so only a field given two different values is a duplicate.
func (r *rawResource) merge(rd *annotations.ResourceDescriptor) {
	for _, f := range []struct {
		key   string
		field *string
		value string
	}{
		{"type", &r.typ, rd.GetType()},
		{"singular", &r.singular, rd.GetSingular()},
		{"plural", &r.plural, rd.GetPlural()},
		{"name_field", &r.nameField, rd.GetNameField()},
	} {
		if f.value != "" && f.value != *f.field {
			r.assign(f.key, f.field, f.value)
		}
	}
	r.patterns = append(r.patterns, rd.GetPattern()...)
	if rd.GetHistory() != annotations.ResourceDescriptor_HISTORY_UNSPECIFIED {
		r.history = append(r.history, rd.GetHistory().String())
	}
}

func (r *rawResource) resource() (*Resource, error) {
	if r.typ == "" {
		return nil, fmt.Errorf("%w: type", reporter.ErrMissingRequiredField)
	}
	if r.duplicate != "" {
		return nil, fmt.Errorf("resource %q: %w: %s", r.typ, reporter.ErrDuplicateField, r.duplicate)
	}
	if err := CheckType(r.typ); err != nil {
		return nil, err
	}
	if len(r.patterns) == 0 {
		return nil, fmt.Errorf("%w for %q", reporter.ErrNoPatternDeclared, r.typ)
	}
	res := &Resource{
		Type:      r.typ,
		Singular:  r.singular,
		Plural:    r.plural,
		History:   r.history,
		NameField: r.nameField,
	}
	for _, raw := range r.patterns {
		p := resourcename.Compile(raw)
		if err := CheckPattern(p); err != nil {
			return nil, fmt.Errorf("resource %q: %w", r.typ, err)
		}
		res.Patterns = append(res.Patterns, p)
	}
	return res, nil
}

// CheckType enforces the "{service}/{Kind}" form of a resource type: one
// slash, a non-empty service name and a kind that starts with an upper case
// letter and holds only letters and digits.
func CheckType(typ string) error {
	service, kind, ok := strings.Cut(typ, "/")
	if !ok || service == "" || kind == "" || strings.Contains(kind, "/") {
		return fmt.Errorf("%w %q: want {service}/{Kind}", reporter.ErrInvalidResourceType, typ)
	}
	for i, c := range kind {
		switch {
		case c >= 'A' && c <= 'Z':
		case i > 0 && (c >= 'a' && c <= 'z' || c >= '0' && c <= '9'):
		default:
			return fmt.Errorf("%w %q: kind must be UpperCamelCase", reporter.ErrInvalidResourceType, typ)
		}
	}
	return nil
}

// CheckPattern enforces the structural rules every resource pattern must
// satisfy: at least one variable, no variable used twice, no two variables
// without a literal between them and no braces left in literal text.
func CheckPattern(p resourcename.Pattern) error {
	if p.VariableCount() == 0 {
		return fmt.Errorf("%w %q: no variables", reporter.ErrInvalidResourcePattern, p)
	}
	seen := map[string]bool{}
	prevVariable := false
	for _, c := range p.Components() {
		if !c.IsVariable() {
			if strings.ContainsAny(c.Value(), "{}") {
				return fmt.Errorf("%w %q: unbalanced or malformed braces in %q", reporter.ErrInvalidResourcePattern, p, c.Value())
			}
			prevVariable = false
			continue
		}
		if seen[c.Value()] {
			return fmt.Errorf("%w %q: variable %q repeated", reporter.ErrInvalidResourcePattern, p, c.Value())
		}
		if prevVariable {
			return fmt.Errorf("%w %q: variable %q directly follows another variable", reporter.ErrInvalidResourcePattern, p, c.Value())
		}
		seen[c.Value()] = true
		prevVariable = true
	}
	return nil
}

var (
	resourceNumber           = annotations.E_Resource.TypeDescriptor().Number()
	resourceDefinitionNumber = annotations.E_ResourceDefinition.TypeDescriptor().Number()
	resourceReferenceNumber  = annotations.E_ResourceReference.TypeDescriptor().Number()
)

// DecodeResource returns the google.api.resource annotation of a message, or
// nil if there is none.
func DecodeResource(opts *descriptorpb.MessageOptions) (*Resource, error) {
	if opts == nil {
		return nil, nil
	}
	payloads, err := extensionPayloads(opts, resourceNumber)
	if err != nil {
		return nil, err
	}
	var raw rawResource
	found := false
	for _, b := range payloads {
		rd := &annotations.ResourceDescriptor{}
		if err := proto.Unmarshal(b, rd); err != nil {
			return nil, fmt.Errorf("decoding google.api.resource: %w", err)
		}
		raw.merge(rd)
		found = true
	}
	for _, uo := range opts.GetUninterpretedOption() {
		sub, ok := matchUninterpreted(uo, resourceNumber, "google.protobuf.MessageOptions")
		if !ok {
			continue
		}
		applyUninterpreted(uo, sub, raw.set)
		found = true
	}
	if !found {
		return nil, nil
	}
	return raw.resource()
}

// DecodeResourceDefinitions returns the google.api.resource_definition
// annotations of a file in declaration order.
func DecodeResourceDefinitions(opts *descriptorpb.FileOptions) ([]*Resource, error) {
	if opts == nil {
		return nil, nil
	}
	payloads, err := extensionPayloads(opts, resourceDefinitionNumber)
	if err != nil {
		return nil, err
	}
	var resources []*Resource
	for _, b := range payloads {
		rd := &annotations.ResourceDescriptor{}
		if err := proto.Unmarshal(b, rd); err != nil {
			return nil, fmt.Errorf("decoding google.api.resource_definition: %w", err)
		}
		var raw rawResource
		raw.merge(rd)
		r, err := raw.resource()
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	for _, uo := range opts.GetUninterpretedOption() {
		sub, ok := matchUninterpreted(uo, resourceDefinitionNumber, "google.protobuf.FileOptions")
		if !ok {
			continue
		}
		var raw rawResource
		applyUninterpreted(uo, sub, raw.set)
		r, err := raw.resource()
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, nil
}

// DecodeReference returns the google.api.resource_reference annotation of a
// field, or nil if there is none or it names neither a type nor a child type.
// When both are given the type wins.
func DecodeReference(opts *descriptorpb.FieldOptions) (*Reference, error) {
	if opts == nil {
		return nil, nil
	}
	payloads, err := extensionPayloads(opts, resourceReferenceNumber)
	if err != nil {
		return nil, err
	}
	ref := &Reference{}
	for _, b := range payloads {
		rr := &annotations.ResourceReference{}
		if err := proto.Unmarshal(b, rr); err != nil {
			return nil, fmt.Errorf("decoding google.api.resource_reference: %w", err)
		}
		if rr.GetType() != "" {
			ref.Type = rr.GetType()
		}
		if rr.GetChildType() != "" {
			ref.ChildType = rr.GetChildType()
		}
	}
	for _, uo := range opts.GetUninterpretedOption() {
		sub, ok := matchUninterpreted(uo, resourceReferenceNumber, "google.protobuf.FieldOptions")
		if !ok {
			continue
		}
		applyUninterpreted(uo, sub, func(key, value string) {
			switch key {
			case "type":
				ref.Type = value
			case "child_type":
				ref.ChildType = value
			}
		})
	}
	switch {
	case ref.Type != "":
		ref.ChildType = ""
		return ref, nil
	case ref.ChildType != "":
		return ref, nil
	}
	return nil, nil
}

// extensionPayloads returns the encoded values of every occurrence of field
// number num in m, whether the field was parsed as a known extension or kept
// as unknown bytes.
func extensionPayloads(m proto.Message, num protowire.Number) ([][]byte, error) {
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	var payloads [][]byte
	for len(b) > 0 {
		n, typ, l := protowire.ConsumeTag(b)
		if l < 0 {
			return nil, fmt.Errorf("reading options: %w", protowire.ParseError(l))
		}
		b = b[l:]
		if n == num && typ == protowire.BytesType {
			v, l := protowire.ConsumeBytes(b)
			if l < 0 {
				return nil, fmt.Errorf("reading options field %d: %w", num, protowire.ParseError(l))
			}
			payloads = append(payloads, v)
			b = b[l:]
			continue
		}
		l = protowire.ConsumeFieldValue(n, typ, b)
		if l < 0 {
			return nil, fmt.Errorf("reading options field %d: %w", n, protowire.ParseError(l))
		}
		b = b[l:]
	}
	return payloads, nil
}

// matchUninterpreted reports whether the first name part of uo resolves to
// the extension numbered num on the options message named extendee. It
// returns the sub-field named by the next name part, if any, as in
// `(google.api.resource_reference).type = "..."`.
func matchUninterpreted(uo *descriptorpb.UninterpretedOption, num protowire.Number, extendee protoreflect.FullName) (string, bool) {
	parts := uo.GetName()
	if len(parts) == 0 || !parts[0].GetIsExtension() {
		return "", false
	}
	name := protoreflect.FullName(strings.TrimPrefix(parts[0].GetNamePart(), "."))
	xt, err := protoregistry.GlobalTypes.FindExtensionByName(name)
	if err != nil {
		return "", false
	}
	xd := xt.TypeDescriptor()
	if xd.Number() != num || xd.ContainingMessage().FullName() != extendee {
		return "", false
	}
	if len(parts) > 1 {
		return parts[1].GetNamePart(), true
	}
	return "", true
}

func applyUninterpreted(uo *descriptorpb.UninterpretedOption, sub string, set func(key, value string)) {
	if sub == "" {
		for _, p := range scanPairs(uo.GetAggregateValue()) {
			set(p.key, p.value)
		}
		return
	}
	switch {
	case uo.StringValue != nil:
		set(sub, string(uo.GetStringValue()))
	case uo.IdentifierValue != nil:
		set(sub, uo.GetIdentifierValue())
	case uo.AggregateValue != nil:
		for _, p := range scanPairs(uo.GetAggregateValue()) {
			set(sub+"."+p.key, p.value)
		}
	}
}

//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestDocumentBuilder builds decoded package.json bodies.
type ManifestDocumentBuilder struct {
	*testkit.BaseBuilder
	next        any
	omitNext    bool
	omitSection bool
}

// NewManifestDocumentBuilder creates a manifest depending on Next.js 15.
func NewManifestDocumentBuilder() *ManifestDocumentBuilder {
	return &ManifestDocumentBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		next:        "15.5.6",
	}
}

// WithNext sets the raw value of dependencies.next.
func (b *ManifestDocumentBuilder) WithNext(next any) *ManifestDocumentBuilder {
	b.next = next
	return b
}

// WithoutNext drops dependencies.next.
func (b *ManifestDocumentBuilder) WithoutNext() *ManifestDocumentBuilder {
	b.omitNext = true
	return b
}

// WithoutDependencies drops the dependencies object.
func (b *ManifestDocumentBuilder) WithoutDependencies() *ManifestDocumentBuilder {
	b.omitSection = true
	return b
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *ManifestDocumentBuilder) Build() interface{} {
	return b.BuildDocument()
}

// BuildDocument creates the document with a concrete return type.
func (b *ManifestDocumentBuilder) BuildDocument() map[string]any {
	document := map[string]any{"name": "create-cloudflare-next"}
	if b.omitSection {
		return document
	}
	dependencies := map[string]any{"react": "19.2.0"}
	if !b.omitNext {
		dependencies["next"] = b.next
	}
	document["dependencies"] = dependencies
	return document
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestDocumentBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.next = "15.5.6"
	b.omitNext = false
	b.omitSection = false
	return b
}

// Clone creates a deep copy of the ManifestDocumentBuilder.
func (b *ManifestDocumentBuilder) Clone() testkit.Builder {
	clone := *b
	clone.BaseBuilder = b.BaseBuilder.Clone().(*testkit.BaseBuilder)
	return &clone
}

// IssueDocumentBuilder builds decoded GitHub issue bodies.
type IssueDocumentBuilder struct {
	*testkit.BaseBuilder
	fields map[string]any
}

// NewIssueDocumentBuilder creates an open issue with creation and update dates.
func NewIssueDocumentBuilder() *IssueDocumentBuilder {
	b := &IssueDocumentBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *IssueDocumentBuilder) defaults() {
	b.fields = map[string]any{
		"number":     float64(1),
		"state":      "open",
		"created_at": "2025-11-04T10:00:00Z",
		"updated_at": "2025-11-20T10:00:00Z",
		"closed_at":  nil,
	}
}

// WithField sets any raw field, including invalid values.
func (b *IssueDocumentBuilder) WithField(key string, value any) *IssueDocumentBuilder {
	b.fields[key] = value
	return b
}

// WithUpdatedAt sets updated_at.
func (b *IssueDocumentBuilder) WithUpdatedAt(value string) *IssueDocumentBuilder {
	return b.WithField("updated_at", value)
}

// WithClosedAt sets closed_at and marks the issue closed.
func (b *IssueDocumentBuilder) WithClosedAt(value string) *IssueDocumentBuilder {
	b.fields["state"] = "closed"
	return b.WithField("closed_at", value)
}

// WithoutField removes key entirely.
func (b *IssueDocumentBuilder) WithoutField(key string) *IssueDocumentBuilder {
	delete(b.fields, key)
	return b
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *IssueDocumentBuilder) Build() interface{} {
	return b.BuildDocument()
}

// BuildDocument creates the document with a concrete return type.
func (b *IssueDocumentBuilder) BuildDocument() map[string]any {
	document := make(map[string]any, len(b.fields))
	for key, value := range b.fields {
		document[key] = value
	}
	return document
}

// Reset clears the builder state, allowing it to be reused.
func (b *IssueDocumentBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the IssueDocumentBuilder.
func (b *IssueDocumentBuilder) Clone() testkit.Builder {
	return &IssueDocumentBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		fields:      b.BuildDocument(),
	}
}

// Package artifact reads the leading `---` frontmatter block of generated
// spec documents: the declared mode, and the whole block as YAML metadata
// for reports.
package artifact

// Package catalog implements the resource access layer in front of the
// upstream catalog. It normalizes paging and search into a single page shape,
// enriches list references into full records with a bounded fan-out, and
// translates upstream failures into typed errors.
package catalog

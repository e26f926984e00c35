// Package contact provides the business logic for cleaning raw contact
// exports: per-field normalization, data-quality validation, email-keyed
// deduplication, and report generation. This package has no HTTP
// dependencies and is used by both the batch binary and the upload server.
package contact

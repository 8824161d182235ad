// Package records defines the structured record types produced by decoding
// formatted log output, along with the default field mappings that pair each
// record field with its log placeholder.
package records

// Package types defines the domain records, the settings value object, and
// standard errors shared between the drillbridge CLI front-end and the
// connect orchestration layer.
package types

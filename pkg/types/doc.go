// Package types defines the Record, Schema, and view-state types shared by
// the gridview list-view controller, together with the backend envelope
// shapes and standard errors.
package types

// Package gridview holds module-level metadata.
package gridview

// Version is the gridview release version.
const Version = "0.1.0"

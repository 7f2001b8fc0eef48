// Package format names the document formats yabe reads and writes.
//
// # Related Packages
//
//   - github.com/signadot/yabe/parse - Parse text to IR
//   - github.com/signadot/yabe/encode - Encode IR to text
package format

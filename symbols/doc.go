// Package symbols manages selections over the fixed universe of
// renderable terminal symbols.
//
// This package contains:
//   - Tag bitmasks and the selector tag-name vocabulary
//   - The global, ordered symbol universe
//   - SymbolMap, a refcounted selection with a lazily rebuilt sorted view
//   - The selector-expression parser ("+block,border-dot,stipple")
package symbols

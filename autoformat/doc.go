// Package autoformat turns list-like typing into bulleted, dashed and
// numbered lists.
//
// The host offers every proposed edit to an Engine before applying it. The
// engine either allows the edit unchanged, or rewrites the document itself
// and reports where the cursor goes; the host never applies both.
//
//	"*" + space   -> "•  "
//	"-" + space   -> "–  "
//	"7." + space  -> "7. "
//	newline on "3. milk" -> "\n4. "
//	newline on an empty "4. " -> marker line removed
package autoformat

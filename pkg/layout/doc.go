// Package layout composes styled, wrapped text into console panels.
//
// A billboard is a titled, bordered panel whose border lines all have the
// same visible width:
//
//	╭-- test ---------------+
//	| This is a really good
//	| section
//	╰-----------------------+
//
// The body is wrapped with pkg/text so rows never run past the border, and
// the title is styled through pkg/style, so a Renderer built over
// style.Plain() produces uncolored panels. Headings and horizontal rules
// are the two smaller decorations used around panels.
//
// Every function here is pure; printing is left to the caller.
package layout

// Package authoring builds webblocks interactively. A Session holds the
// editing buffer, Dialog walks an author through it with a PromptDriver and
// Command inserts the resulting snippet into a document at a cursor offset.
package authoring

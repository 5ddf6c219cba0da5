// Package prepare joins the annotated Spanish dictionary with a word → IPA
// lookup and produces the pronunciation rows that get transcribed.
// Pure data plumbing: file paths in, batch rows out.
package prepare

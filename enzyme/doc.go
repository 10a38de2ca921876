// Package enzyme implements the Typogenetics instruction set and translator.
//
// A strand is read two bases at a time. Each duplet maps, through a fixed
// table, to either punctuation or an amino (operation) with a turn. The
// translator groups the aminos between punctuation into enzymes, and derives
// each enzyme's binding preference from the sum of its turns.
package enzyme

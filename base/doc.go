// Package base implements the four-symbol alphabet of Typogenetics strands.
//
// A Base is one of A, C, G or T, or BASE_NONE for an empty slot in a dual
// strand. Complement pairs A with T and C with G. A and G are purines, C and
// T are pyrimidines.
package base

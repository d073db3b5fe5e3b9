/*
Package ntt is a generic engine for computing Number Theoretic Transforms over
abstract finite commutative rings. It provides the ring-capability contract the
algorithms are parametrized over, dense polynomial and convolution arithmetic,
and the transform family itself: small fixed-size butterflies, radix-2 and
general composite Cooley-Tukey composers, the prime-factor algorithm with CRT
re-indexing, Bluestein's chirp transform, Rader's prime-length algorithm and
the negacyclic pair, together with concrete ring instances to run them on.
*/
package ntt

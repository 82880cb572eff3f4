package util

import (
	"crypto/md5"

	"lukechampine.com/uint128"
)

// MD5HashUint128 interprets the md5 digest of val as a big endian 128 bit integer
func MD5HashUint128(val string) uint128.Uint128 {
	b := md5.Sum([]byte(val))
	return uint128.FromBytesBE(b[:])
}

// Fold64 xors the two halves of u into a single 64 bit value
func Fold64(u uint128.Uint128) uint64 {
	return u.Hi ^ u.Lo
}
